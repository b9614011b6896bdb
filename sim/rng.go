package sim

import (
	"hash/fnv"
	"math/rand"
)

// RunKey uniquely identifies a reproducible generation run.
// Two runs with the same RunKey and identical domains MUST produce
// bit-for-bit identical output.
type RunKey int64

// NewRunKey creates a RunKey from a seed value.
func NewRunKey(seed int64) RunKey {
	return RunKey(seed)
}

// PartitionedRNG provides deterministic, isolated RNG streams by name.
// The runner gives every template batch its own stream, so draws consumed
// by one batch never shift the identifiers another batch samples.
//
// Derivation formula: masterSeed XOR fnv1a64(streamName).
//
// Thread-safety: NOT thread-safe. Call from a single goroutine, or hand
// each goroutine its own stream before starting them.
type PartitionedRNG struct {
	key     RunKey
	streams map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a RunKey.
func NewPartitionedRNG(key RunKey) *PartitionedRNG {
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
	derivedSeed := int64(p.key) ^ fnv1a64(name)
	rng := rand.New(rand.NewSource(derivedSeed))
	p.streams[name] = rng
	return rng
}

// Key returns the RunKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() RunKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
