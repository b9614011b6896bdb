package workload

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/stat"

	"github.com/txn-sim/txn-sim/sim/internal/testutil"
)

func TestUniformSampler_InRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := NewUniformSampler(100)
	for i := 0; i < 10000; i++ {
		v := s.Sample(rng)
		if v < 0 || v >= 100 {
			t.Errorf("sample %d: %d outside [0, 100)", i, v)
			break
		}
	}
}

func TestUniformSampler_MeanMatchesRange(t *testing.T) {
	// Mean of uniform ints over [0, 100) is 49.5.
	rng := rand.New(rand.NewSource(42))
	s := NewUniformSampler(100)
	n := 10000
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(s.Sample(rng))
	}
	testutil.AssertFloat64Equal(t, "uniform mean", 49.5, stat.Mean(xs, nil), 0.05)
}

func TestUniformSampler_SampleBatch_DrawsWithReplacement(t *testing.T) {
	// GIVEN a two-value id space
	rng := rand.New(rand.NewSource(42))
	s := NewUniformSampler(2)

	// WHEN a long batch is drawn
	batch := s.SampleBatch(rng, 100)

	// THEN both values repeat (sampling is with replacement)
	if len(batch) != 100 {
		t.Fatalf("batch length = %d, want 100", len(batch))
	}
	seen := make(map[int]int)
	for _, v := range batch {
		if v < 0 || v >= 2 {
			t.Fatalf("batch value %d outside [0, 2)", v)
		}
		seen[v]++
	}
	if seen[0] == 0 || seen[1] == 0 {
		t.Errorf("100 draws from [0, 2) hit only one value: %v", seen)
	}
}

func TestAmountSampler_MeanAndStdDevMatchParams(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := NewAmountSampler(200, 50)
	n := 10000
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = s.Sample(rng)
	}
	testutil.AssertFloat64Equal(t, "amount mean", 200, stat.Mean(xs, nil), 0.05)
	testutil.AssertFloat64Equal(t, "amount std dev", 50, stat.StdDev(xs, nil), 0.05)
}

func TestAmountSampler_RoundsToCents(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := NewAmountSampler(200, 50)
	for i := 0; i < 1000; i++ {
		v := s.Sample(rng)
		cents := v * 100
		if math.Abs(cents-math.Round(cents)) > 1e-9 {
			t.Errorf("sample %d: %v is not rounded to cents", i, v)
			break
		}
	}
}

func TestAmountSampler_DoesNotClampNegatives(t *testing.T) {
	// GIVEN a distribution with half its mass below zero
	rng := rand.New(rand.NewSource(42))
	s := NewAmountSampler(0, 50)

	// THEN negative draws survive sampling unchanged
	sawNegative := false
	for i := 0; i < 1000; i++ {
		if s.Sample(rng) < 0 {
			sawNegative = true
			break
		}
	}
	if !sawNegative {
		t.Error("no negative amount in 1000 draws from Normal(0, 50); sampler must not clamp")
	}
}

func TestCoinSampler_FairCoinNearHalf(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := NewCoinSampler(0.5)
	n := 10000
	heads := 0
	for i := 0; i < n; i++ {
		if s.Sample(rng) {
			heads++
		}
	}
	frac := float64(heads) / float64(n)
	if math.Abs(frac-0.5) > 0.05 {
		t.Errorf("P(true) = %.3f, want ≈ 0.5", frac)
	}
}

func TestCoinSampler_DegenerateProbabilities(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	always := NewCoinSampler(1.0)
	never := NewCoinSampler(0.0)
	for i := 0; i < 100; i++ {
		if !always.Sample(rng) {
			t.Fatal("p=1 coin came up false")
		}
		if never.Sample(rng) {
			t.Fatal("p=0 coin came up true")
		}
	}
}
