// Package genetic — population construction and per-generation statistics.
//
// This file owns everything the driver knows about a generation as a whole:
// building it, scoring it, and summarizing it for observers.
package genetic

import (
	"math/rand"

	"gonum.org/v1/gonum/stat"
)

// NewPopulation returns size independent uniform random tours over [0, n).
//
// Contract:
//   - size >= 1, otherwise ErrBadPopulationSize.
//   - n >= 0, otherwise ErrBadPointCount.
//   - Members may repeat (independent draws); each member owns its storage.
//   - rng == nil selects the default deterministic stream.
//
// Complexity: O(size·n) time and space.
func NewPopulation(n, size int, rng *rand.Rand) (Population, error) {
	if size < 1 {
		return nil, ErrBadPopulationSize
	}
	if n < 0 {
		return nil, ErrBadPointCount
	}

	var (
		pop = make(Population, size)
		t   Tour
		err error
		i   int
	)
	for i = 0; i < size; i++ {
		t, err = RandomTour(n, rng)
		if err != nil {
			return nil, err
		}
		pop[i] = t
	}

	return pop, nil
}

// evaluate computes the cyclic length of every member into a fresh slice,
// failing fast on the first degenerate member: on an instance of two or
// more points a zero-length tour means all points coincide, so fitness is
// undefined for the whole run (ErrZeroLengthTour).
//
// Complexity: O(size·n).
func evaluate(m Metric, pop Population) ([]float64, error) {
	var (
		lengths = make([]float64, len(pop))
		l       float64
		err     error
		i       int
	)
	for i = 0; i < len(pop); i++ {
		l, err = TourLength(m, pop[i])
		if err != nil {
			return nil, err
		}
		if l == 0 && len(pop[i]) > 1 {
			return nil, ErrZeroLengthTour
		}
		lengths[i] = l
	}

	return lengths, nil
}

// meanLength reports the arithmetic mean of the evaluated lengths via
// gonum's stat. Empty input reports 0.
//
// Complexity: O(size).
func meanLength(lengths []float64) float64 {
	if len(lengths) == 0 {
		return 0
	}

	return stat.Mean(lengths, nil)
}

// argMin returns the index of the smallest value; the earliest index wins
// ties. Callers guarantee a non-empty slice.
//
// Complexity: O(size).
func argMin(vals []float64) int {
	var (
		best int
		i    int
	)
	for i = 1; i < len(vals); i++ {
		if vals[i] < vals[best] {
			best = i
		}
	}

	return best
}
