package scenario

import (
	"fmt"
	"strings"
)

// TriggerKind is the condition that arms a failure in the simulator.
// The numeric codes are the simulator's wire values and must never change.
type TriggerKind int

const (
	KindNotFailed     TriggerKind = 0
	KindActive        TriggerKind = 1
	KindIAS           TriggerKind = 2
	KindTAS           TriggerKind = 3
	KindGS            TriggerKind = 4
	KindV1            TriggerKind = 5
	KindVR            TriggerKind = 6
	KindV2            TriggerKind = 7
	KindVT            TriggerKind = 8
	KindAMSL          TriggerKind = 9
	KindAGL           TriggerKind = 10
	KindWaypoint      TriggerKind = 11
	KindExactTimeout  TriggerKind = 12
	KindApproxTimeout TriggerKind = 13
	KindLiftoff       TriggerKind = 14
	KindGearUp        TriggerKind = 15
	KindGearDown      TriggerKind = 16
	KindGearCycled    TriggerKind = 17
	KindCtrlF         TriggerKind = 18
)

// kindNames maps each TriggerKind to its configuration-facing display name,
// in numeric code order.
var kindNames = []struct {
	kind TriggerKind
	name string
}{
	{KindNotFailed, "not-failed"},
	{KindActive, "active"},
	{KindIAS, "ias"},
	{KindTAS, "tas"},
	{KindGS, "gs"},
	{KindV1, "v1"},
	{KindVR, "vr"},
	{KindV2, "v2"},
	{KindVT, "vt"},
	{KindAMSL, "amsl"},
	{KindAGL, "agl"},
	{KindWaypoint, "waypoint"},
	{KindExactTimeout, "exact-timeout"},
	{KindApproxTimeout, "approx-timeout"},
	{KindLiftoff, "liftoff"},
	{KindGearUp, "gear-up"},
	{KindGearDown, "gear-down"},
	{KindGearCycled, "gear-cycled"},
	{KindCtrlF, "ctrl-f"},
}

// String returns the display name for k, or "unknown(<code>)" for values
// outside the enum.
func (k TriggerKind) String() string {
	for _, kn := range kindNames {
		if kn.kind == k {
			return kn.name
		}
	}
	return fmt.Sprintf("unknown(%d)", int(k))
}

// Code returns the simulator's numeric wire value for k.
func (k TriggerKind) Code() int { return int(k) }

// ValidKindNames returns all 19 display names in numeric code order.
func ValidKindNames() []string {
	names := make([]string, len(kindNames))
	for i, kn := range kindNames {
		names[i] = kn.name
	}
	return names
}

// ParseTriggerKind resolves a display name to its TriggerKind.
// Unknown names produce a ConfigError enumerating every valid name.
func ParseTriggerKind(name string) (TriggerKind, error) {
	for _, kn := range kindNames {
		if kn.name == name {
			return kn.kind, nil
		}
	}
	return KindNotFailed, &ConfigError{
		Reason: fmt.Sprintf("unknown trigger kind %q; valid: %s", name, strings.Join(ValidKindNames(), ", ")),
	}
}

// EligibleKinds returns the kinds a random draw may select, in the fixed
// order used to index distribution vectors. NOT_FAILED, WAYPOINT and CTRL_F
// are excluded: the first is the sentinel, the other two need data a
// generator cannot invent (a waypoint ident, a pilot keypress).
func EligibleKinds() []TriggerKind {
	return []TriggerKind{
		KindActive,
		KindIAS,
		KindTAS,
		KindGS,
		KindV1,
		KindVR,
		KindV2,
		KindVT,
		KindAMSL,
		KindAGL,
		KindExactTimeout,
		KindApproxTimeout,
		KindLiftoff,
		KindGearUp,
		KindGearDown,
		KindGearCycled,
	}
}

// NumEligibleKinds is the length of EligibleKinds.
const NumEligibleKinds = 16
