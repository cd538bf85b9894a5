package scenario

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindDistribution_UniformByDefault(t *testing.T) {
	idx := indexFromYAML(t, "")
	dist, err := NewKindDistribution(idx)
	require.NoError(t, err)

	weights := dist.Weights()
	require.Len(t, weights, NumEligibleKinds)
	sum := 0.0
	for _, w := range weights {
		assert.GreaterOrEqual(t, w, 0.0)
		assert.InDelta(t, 1.0/16.0, w, 1e-12)
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestKindDistribution_MultipliersReweight(t *testing.T) {
	// agl at 3x, gear-cycled at 0: weight sum is 15 + 3 = 18.
	idx := indexFromYAML(t, `
state_probability_overrides:
  agl: 3.0
  gear-cycled: 0
`)
	dist, err := NewKindDistribution(idx)
	require.NoError(t, err)

	weights := dist.Weights()
	sum := 0.0
	for i, kind := range EligibleKinds() {
		switch kind {
		case KindAGL:
			assert.InDelta(t, 3.0/18.0, weights[i], 1e-12)
		case KindGearCycled:
			assert.Equal(t, 0.0, weights[i])
		default:
			assert.InDelta(t, 1.0/18.0, weights[i], 1e-12)
		}
		sum += weights[i]
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestKindDistribution_ZeroSumIsDegenerate(t *testing.T) {
	// Every eligible kind multiplied to zero leaves nothing to draw.
	doc := "state_probability_overrides:\n"
	for _, kind := range EligibleKinds() {
		doc += "  " + kind.String() + ": 0\n"
	}
	idx := indexFromYAML(t, doc)

	_, err := NewKindDistribution(idx)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError for zero-sum distribution, got %v", err)
	}
}

func TestKindDistribution_ZeroWeightKindNeverDrawn(t *testing.T) {
	idx := indexFromYAML(t, `
state_probability_overrides:
  gear-up: 0
  gear-down: 0
  gear-cycled: 0
`)
	dist, err := NewKindDistribution(idx)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50000; i++ {
		kind := dist.Sample(rng)
		if kind == KindGearUp || kind == KindGearDown || kind == KindGearCycled {
			t.Fatalf("draw %d produced zero-weight kind %s", i, kind)
		}
	}
}

func TestKindDistribution_EmpiricalFrequencies(t *testing.T) {
	// 50000 uniform draws over 16 kinds: each frequency should land near
	// 1/16 well within 5 sigma of the binomial noise.
	idx := indexFromYAML(t, "")
	dist, err := NewKindDistribution(idx)
	require.NoError(t, err)

	const n = 50000
	rng := rand.New(rand.NewSource(42))
	counts := make(map[TriggerKind]int)
	for i := 0; i < n; i++ {
		counts[dist.Sample(rng)]++
	}

	p := 1.0 / 16.0
	sigma := math.Sqrt(n * p * (1 - p))
	for _, kind := range EligibleKinds() {
		diff := math.Abs(float64(counts[kind]) - n*p)
		if diff > 5*sigma {
			t.Errorf("%s drawn %d times, want %.0f +/- %.0f", kind, counts[kind], n*p, 5*sigma)
		}
	}
}
