package scenario

import (
	"github.com/sirupsen/logrus"
)

// Trigger is one resolved (failure, kind, parameter) triple. A nil Param
// means the trigger takes no numeric parameter.
type Trigger struct {
	FailurePath string
	Kind        TriggerKind
	Param       *int
}

// TriggerSampler decides, per cataloged failure, whether it activates and
// with what trigger. It is a pure function of (catalog, config, RNG): two
// samplers built from the same inputs generate identical scenarios.
type TriggerSampler struct {
	cfg    *Config
	index  *OverrideIndex
	dist   *KindDistribution
	ranges RangeTable
	rng    *PartitionedRNG
}

// NewTriggerSampler wires the sampler. The kind distribution is built here
// so a degenerate distribution fails before any sampling starts.
func NewTriggerSampler(cfg *Config, idx *OverrideIndex, ranges RangeTable, rng *PartitionedRNG) (*TriggerSampler, error) {
	dist, err := NewKindDistribution(idx)
	if err != nil {
		return nil, err
	}
	return &TriggerSampler{
		cfg:    cfg,
		index:  idx,
		dist:   dist,
		ranges: ranges,
		rng:    rng,
	}, nil
}

// Distribution exposes the kind distribution for verbose echo.
func (s *TriggerSampler) Distribution() *KindDistribution { return s.dist }

// ShouldTrigger draws the activation decision for one failure.
// The effective probability is baseChance scaled by the override's
// multiplier (1.0 when absent).
func (s *TriggerSampler) ShouldTrigger(override *FailureOverride, baseChance float64) bool {
	mult := 1.0
	if override != nil && override.Mult != nil {
		mult = *override.Mult
	}
	return s.rng.ForStream(StreamActivation).Float64() < baseChance*mult
}

// SampleTrigger picks the trigger kind and parameter for an activating
// failure. A forced kind short-circuits all randomness: the override's
// parameter is used verbatim, absent or not, even when the kind normally
// carries a range.
func (s *TriggerSampler) SampleTrigger(failurePath string, override *FailureOverride) Trigger {
	if override != nil && override.Kind != nil {
		return Trigger{FailurePath: failurePath, Kind: *override.Kind, Param: override.Param}
	}

	kind := s.dist.Sample(s.rng.ForStream(StreamTrigger))
	r, ok := s.ranges.Range(kind)
	if !ok {
		return Trigger{FailurePath: failurePath, Kind: kind}
	}
	// Inclusive at both ends.
	param := r.Lo + s.rng.ForStream(StreamParameter).Intn(r.Hi-r.Lo+1)
	return Trigger{FailurePath: failurePath, Kind: kind, Param: &param}
}

// Generate runs one full pass over the catalog and returns the activating
// failures in catalog order. An empty catalog is a broken upstream read,
// not a valid "nothing can fail" state, and is refused.
func (s *TriggerSampler) Generate(catalog []string) ([]Trigger, error) {
	if len(catalog) == 0 {
		return nil, &EmptyCatalogError{}
	}

	baseChance := s.cfg.ExpectedFailures / float64(len(catalog))
	logrus.Debugf("sampling %d failures, base activation chance %.6f", len(catalog), baseChance)

	var triggers []Trigger
	for _, failure := range catalog {
		override := s.index.Resolve(failure)
		if !s.ShouldTrigger(override, baseChance) {
			continue
		}
		trigger := s.SampleTrigger(failure, override)
		if trigger.Param != nil {
			logrus.Debugf("triggered %s: %s param=%d", failure, trigger.Kind, *trigger.Param)
		} else {
			logrus.Debugf("triggered %s: %s", failure, trigger.Kind)
		}
		triggers = append(triggers, trigger)
	}
	logrus.Infof("selected %d of %d failures", len(triggers), len(catalog))
	return triggers, nil
}
