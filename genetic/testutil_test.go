// Package genetic_test provides lightweight testing helpers shared across
// *_test.go files in this package. The helpers are intentionally minimal,
// stdlib-only, and avoid duplicating functionality that already lives in
// focused test files (which use testify directly).
package genetic_test

import (
	"errors"
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/Bromponie/evotour/genetic"
	"github.com/Bromponie/evotour/instance"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// epsTiny is the strict tolerance for exact-optimum assertions.
	epsTiny = 1e-9

	// seedDet is the canonical deterministic seed; 0 selects the engine's
	// fixed default stream.
	seedDet = int64(0)

	// seedAlt seeds cross-seed property sweeps.
	seedAlt = int64(1337)

	// sweepRuns is how many iterations property loops sweep.
	sweepRuns = 25
)

// -----------------------------------------------------------------------------
// Fixtures
// -----------------------------------------------------------------------------

// unitSquare returns the canonical 4-point fixture: unit-square corners in
// perimeter order. The optimal cycle is [0 1 2 3] with length 4.
func unitSquare(t *testing.T) *instance.Euclidean {
	t.Helper()
	inst, err := instance.New([]instance.Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
	})
	if err != nil {
		t.Fatalf("unitSquare: %v", err)
	}

	return inst
}

// coincident returns an instance of n identical points; every cycle on it
// has length zero.
func coincident(t *testing.T, n int) *instance.Euclidean {
	t.Helper()
	inst, err := instance.New(make([]instance.Point, n))
	if err != nil {
		t.Fatalf("coincident: %v", err)
	}

	return inst
}

// ringTable builds the distance table of an n-node cycle graph:
// dist[i][j] = min(|i-j|, n-|i-j|). The optimal cycle length equals n.
func ringTable(n int) [][]float64 {
	dist := make([][]float64, n)

	var (
		i int
		j int
		d float64
	)
	for i = 0; i < n; i++ {
		dist[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			d = math.Abs(float64(i - j))
			dist[i][j] = math.Min(d, float64(n)-d)
		}
	}

	return dist
}

// ringMatrix wraps ringTable in an instance.Matrix.
func ringMatrix(t *testing.T, n int) *instance.Matrix {
	t.Helper()
	m, err := instance.NewMatrix(ringTable(n))
	if err != nil {
		t.Fatalf("ringMatrix: %v", err)
	}

	return m
}

// randomInstance builds an n-point Euclidean instance in a 10×10 square
// under the supplied stream (nil selects instance.Random's default).
func randomInstance(t *testing.T, n int, rng *rand.Rand) *instance.Euclidean {
	t.Helper()
	inst, err := instance.Random(n, 10, rng)
	if err != nil {
		t.Fatalf("randomInstance: %v", err)
	}

	return inst
}

// failMetric reports n points and fails every Distance call with a fixed
// error. It exercises error propagation through the scoring path.
type failMetric struct {
	n   int
	err error
}

var _ genetic.Metric = failMetric{}

func (f failMetric) N() int { return f.n }

func (f failMetric) Distance(i, j int) (float64, error) { return 0, f.err }

// -----------------------------------------------------------------------------
// Generic helpers (repeaters, assertions, numeric closeness)
// -----------------------------------------------------------------------------

// Repeat runs fn n times. Useful for determinism/stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// mustErrIs asserts that err matches target using errors.Is.
// Intended for strict sentinels (ErrInvalidTour, ErrZeroLengthTour, ...).
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v, got %v", target, err)
	}
}

// mustEqualInts asserts exact equality of two integer slices (length & values).
func mustEqualInts(t *testing.T, got, want []int) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Fatalf("mismatch:\n got:  %v\n want: %v", got, want)
	}
}

// mustBePermutation asserts that tour is a permutation of [0, n).
func mustBePermutation(t *testing.T, tour genetic.Tour, n int) {
	t.Helper()
	if err := genetic.ValidateTour(tour, n); err != nil {
		t.Fatalf("not a permutation of [0,%d): %v (%v)", n, tour, err)
	}
}

// mustFloatClose asserts |got-want| <= abs.
func mustFloatClose(t *testing.T, got, want, abs float64) {
	t.Helper()
	if math.Abs(got-want) > abs {
		t.Fatalf("float mismatch: got=%.12f want=%.12f (abs=%.1e)", got, want, abs)
	}
}
