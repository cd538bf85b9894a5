package scenario

import (
	"sort"
	"strings"
)

// OverrideIndex answers two lookups for the sampler: which FailureOverride
// (if any) governs a failure path, and what selection-weight multiplier a
// trigger kind carries. Built once from config, read-only afterwards.
type OverrideIndex struct {
	overrides []FailureOverride // sorted by prefix, descending lexicographic
	mults     map[TriggerKind]float64
	strategy  string
}

// NewOverrideIndex builds the index from a validated Config.
func NewOverrideIndex(cfg *Config) (*OverrideIndex, error) {
	overrides, err := cfg.FailureOverrides()
	if err != nil {
		return nil, err
	}
	mults, err := cfg.KindMultipliers()
	if err != nil {
		return nil, err
	}
	sort.Slice(overrides, func(i, j int) bool {
		return overrides[i].Prefix > overrides[j].Prefix
	})
	return &OverrideIndex{
		overrides: overrides,
		mults:     mults,
		strategy:  cfg.MatchStrategy(),
	}, nil
}

// Resolve returns the override governing failurePath, or nil.
//
// Matching is plain string prefix: an override at /systems/eng/left governs
// every path starting with that text. Under the default first-match
// strategy the descending-lexicographic list is scanned front to back and
// the first hit wins. Prefixes that match the same path form a chain, so
// that scan happens to reach the most specific entry first; the
// longest-prefix strategy makes specificity an explicit guarantee instead
// of a property of the sort order.
func (idx *OverrideIndex) Resolve(failurePath string) *FailureOverride {
	switch idx.strategy {
	case MatchLongestPrefix:
		var best *FailureOverride
		for i := range idx.overrides {
			ov := &idx.overrides[i]
			if !strings.HasPrefix(failurePath, ov.Prefix) {
				continue
			}
			if best == nil || len(ov.Prefix) > len(best.Prefix) {
				best = ov
			}
		}
		return best
	default:
		for i := range idx.overrides {
			if strings.HasPrefix(failurePath, idx.overrides[i].Prefix) {
				return &idx.overrides[i]
			}
		}
		return nil
	}
}

// KindMultiplier returns the configured selection-weight multiplier for
// kind, or 1.0 when none is set.
func (idx *OverrideIndex) KindMultiplier(kind TriggerKind) float64 {
	if m, ok := idx.mults[kind]; ok {
		return m
	}
	return 1.0
}

// Overrides returns the sorted override list, for verbose echo and the
// artifact header.
func (idx *OverrideIndex) Overrides() []FailureOverride {
	return idx.overrides
}

// Strategy returns the active matching strategy name.
func (idx *OverrideIndex) Strategy() string { return idx.strategy }
