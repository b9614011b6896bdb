// Package testutil provides shared test infrastructure for the trace
// synthesizer. It consolidates golden dataset types and assertion helpers
// used across sim/ and sim/workload/ test packages.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase pins the exact trace lines one template produces under a
// fixed key-domain configuration. The dataset uses degenerate domains
// (single-key id spaces, zero amount spread, allocate probability 0 or 1)
// so the expected lines do not depend on the random stream.
type GoldenTestCase struct {
	Name     string `json:"name"`
	Template string `json:"template"`
	Count    int    `json:"count"`
	Seed     int64  `json:"seed"`

	Carts         int     `json:"carts"`
	Orders        int     `json:"orders"`
	Items         int     `json:"items"`
	Customers     int     `json:"customers"`
	Ratings       int     `json:"ratings"`
	PaymentOrders int     `json:"payment_orders"`
	Payments      int     `json:"payments"`
	AmountMean    float64 `json:"amount_mean"`
	AmountStdDev  float64 `json:"amount_std_dev"`
	Codes         int     `json:"codes"`
	IDTypes       int     `json:"id_types"`
	AllocateProb  float64 `json:"allocate_prob"`
	SKUs          int     `json:"skus"`
	BatchSize     int     `json:"batch_size"`

	// Lines holds the expected trace lines in order, one per generated
	// trace; its length equals Count.
	Lines []string `json:"lines"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
