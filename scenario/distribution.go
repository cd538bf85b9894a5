package scenario

import (
	"fmt"
	"math/rand"
	"sort"
)

// KindDistribution is a categorical distribution over the 16 eligible
// trigger kinds, sampled by inverse CDF with binary search.
type KindDistribution struct {
	weights []float64 // normalized probability vector, EligibleKinds order

	// Zero-weight kinds are dropped from the sampling arrays so a
	// multiplied-to-zero kind is genuinely unreachable.
	sampleKinds []TriggerKind
	cdf         []float64
}

// NewKindDistribution builds the distribution: every eligible kind starts
// at uniform weight 1.0, scaled by its configured multiplier, then the
// vector is normalized. A non-positive total (every kind multiplied to
// zero) is a degenerate distribution and rejected up front.
func NewKindDistribution(idx *OverrideIndex) (*KindDistribution, error) {
	kinds := EligibleKinds()
	raw := make([]float64, len(kinds))
	total := 0.0
	for i, kind := range kinds {
		raw[i] = 1.0 * idx.KindMultiplier(kind)
		total += raw[i]
	}
	if total <= 0 {
		return nil, &ConfigError{
			Reason: fmt.Sprintf("state probability overrides leave no selectable trigger kind (weight sum %v)", total),
		}
	}

	d := &KindDistribution{weights: make([]float64, len(kinds))}
	cumulative := 0.0
	for i, kind := range kinds {
		p := raw[i] / total
		d.weights[i] = p
		if p <= 0 {
			continue
		}
		cumulative += p
		d.sampleKinds = append(d.sampleKinds, kind)
		d.cdf = append(d.cdf, cumulative)
	}
	// Guard the tail against floating-point drift.
	d.cdf[len(d.cdf)-1] = 1.0

	return d, nil
}

// Sample draws one trigger kind according to the distribution.
func (d *KindDistribution) Sample(rng *rand.Rand) TriggerKind {
	if len(d.sampleKinds) == 1 {
		return d.sampleKinds[0]
	}
	u := rng.Float64()
	i := sort.SearchFloat64s(d.cdf, u)
	if i >= len(d.sampleKinds) {
		i = len(d.sampleKinds) - 1
	}
	return d.sampleKinds[i]
}

// Weights returns the normalized probability vector in EligibleKinds order.
func (d *KindDistribution) Weights() []float64 {
	out := make([]float64, len(d.weights))
	copy(out, d.weights)
	return out
}
