package scenario

// MaxOperatingCeilingM is the CL650's certified ceiling (41,000 ft) in
// metres, the unit the current config iteration uses. The earliest config
// expressed this in feet; a feet deployment should build its own RangeTable
// rather than edit this constant.
const MaxOperatingCeilingM = 12500

// ParamRange is an inclusive integer parameter range for a trigger kind.
type ParamRange struct {
	Lo int
	Hi int
}

// RangeTable maps each trigger kind to its parameter range. Kinds absent
// from the table take no parameter (ACTIVE, the gear-state kinds). The table
// is injected into the sampler so different airframes or units can swap in
// their own without touching the engine.
type RangeTable map[TriggerKind]ParamRange

// BuildRangeTable returns the CL650 parameter ranges. Speeds are knots,
// V-speed deviations knots relative, altitudes metres, times minutes
// (timeouts) or seconds (liftoff). The timeout band is mtbfHours scaled by
// 3x either side of the mean, truncated to whole minutes.
func BuildRangeTable(mtbfHours float64) RangeTable {
	return RangeTable{
		KindIAS:           {Lo: 1, Hi: 330},
		KindTAS:           {Lo: 1, Hi: 330},
		KindGS:            {Lo: 1, Hi: 520},
		KindV1:            {Lo: -30, Hi: 30},
		KindVR:            {Lo: -30, Hi: 30},
		KindV2:            {Lo: -30, Hi: 30},
		KindVT:            {Lo: -30, Hi: 30},
		KindAMSL:          {Lo: -100, Hi: MaxOperatingCeilingM},
		KindAGL:           {Lo: 10, Hi: 2500},
		KindExactTimeout:  {Lo: int(mtbfHours / 3 * 60), Hi: int(mtbfHours * 3 * 60)},
		KindApproxTimeout: {Lo: int(mtbfHours / 3 * 60), Hi: int(mtbfHours * 3 * 60)},
		KindLiftoff:       {Lo: 1, Hi: 90},
	}
}

// Range returns the parameter range for kind, and whether one exists.
func (t RangeTable) Range(kind TriggerKind) (ParamRange, bool) {
	r, ok := t[kind]
	return r, ok
}
