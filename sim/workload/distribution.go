package workload

import (
	"math"
	"math/rand"
)

// Samplers draw template parameters from the configured domains. Each takes
// the *rand.Rand to draw from, so callers control seeding and stream
// isolation; no sampler touches global randomness.

// UniformSampler draws integer identifiers uniformly from [0, n).
type UniformSampler struct {
	n int
}

// NewUniformSampler creates a sampler over the half-open range [0, n).
// n must be positive (enforced by Domains.Validate).
func NewUniformSampler(n int) *UniformSampler {
	return &UniformSampler{n: n}
}

func (s *UniformSampler) Sample(rng *rand.Rand) int {
	return rng.Intn(s.n)
}

// SampleBatch draws k identifiers with replacement.
func (s *UniformSampler) SampleBatch(rng *rand.Rand, k int) []int {
	out := make([]int, k)
	for i := range out {
		out[i] = rng.Intn(s.n)
	}
	return out
}

// AmountSampler draws monetary amounts from Normal(mean, stdDev), rounded to
// cents. Values are not clamped: the left tail can go negative when stdDev is
// large relative to mean. See the OrderPaymentDomain docs before changing
// this.
type AmountSampler struct {
	mean, stdDev float64
}

// NewAmountSampler creates a cents-rounded normal amount sampler.
func NewAmountSampler(mean, stdDev float64) *AmountSampler {
	return &AmountSampler{mean: mean, stdDev: stdDev}
}

func (s *AmountSampler) Sample(rng *rand.Rand) float64 {
	return roundToCents(rng.NormFloat64()*s.stdDev + s.mean)
}

// CoinSampler draws a Bernoulli outcome that is true with probability p.
type CoinSampler struct {
	p float64
}

// NewCoinSampler creates a coin with P(true) = p. p must be in [0, 1]
// (enforced by Domains.Validate).
func NewCoinSampler(p float64) *CoinSampler {
	return &CoinSampler{p: p}
}

func (s *CoinSampler) Sample(rng *rand.Rand) bool {
	return rng.Float64() < s.p
}

// roundToCents rounds v to two decimal places.
func roundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}
