package scenario

import (
	"hash/fnv"
	"math/rand"
)

// === GenerationKey ===

// GenerationKey uniquely identifies a reproducible generation run.
// Two runs with the same GenerationKey, configuration and catalog MUST
// produce bit-for-bit identical scenarios.
type GenerationKey int64

// NewGenerationKey creates a GenerationKey from a seed value.
func NewGenerationKey(seed int64) GenerationKey {
	return GenerationKey(seed)
}

// === Stream Constants ===

const (
	// StreamActivation feeds the per-failure Bernoulli activation draws.
	// Uses the master seed directly so a bare seed still pins which
	// failures fire even if the trigger streams evolve.
	StreamActivation = "activation"

	// StreamTrigger feeds the categorical trigger-kind draws.
	StreamTrigger = "trigger"

	// StreamParameter feeds the uniform parameter-range draws.
	StreamParameter = "parameter"
)

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG streams per concern.
//
// Derivation formula:
//   - For StreamActivation: uses the master seed directly
//   - For all other streams: masterSeed XOR fnv1a64(streamName)
//
// Isolating the streams keeps the activation decisions for a given seed
// stable when an override changes how many trigger/parameter draws happen.
//
// Thread-safety: NOT thread-safe. Must be called from a single goroutine.
type PartitionedRNG struct {
	key     GenerationKey
	streams map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a GenerationKey.
func NewPartitionedRNG(key GenerationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:     key,
		streams: make(map[string]*rand.Rand),
	}
}

// ForStream returns a deterministically-seeded RNG for the named stream.
// The same stream name always returns the same *rand.Rand instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForStream(name string) *rand.Rand {
	if rng, ok := p.streams[name]; ok {
		return rng
	}

	var derivedSeed int64
	if name == StreamActivation {
		derivedSeed = int64(p.key)
	} else {
		derivedSeed = int64(p.key) ^ fnv1a64(name)
	}

	rng := rand.New(rand.NewSource(derivedSeed))
	p.streams[name] = rng
	return rng
}

// Key returns the GenerationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() GenerationKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
