// Package genetic — tour utilities.
//
// This file contains compact, allocation-conscious helpers that operate
// purely on tour structure (index sequences), without a Metric:
//   - RandomTour: uniform random permutation of [0, n).
//   - CopyTour: independent copy of a tour slice.
//   - ValidateTour: enforce the permutation invariant.
//   - Canonical: rotation/orientation normal form for cycle comparison.
//
// Design:
//   - No logging, no panics on user input — only sentinel errors from types.go.
//   - O(n) time for every helper; inputs are never mutated.
package genetic

import "math/rand"

// RandomTour returns a uniform random permutation of [0, n) generated
// deterministically from rng. If rng==nil, the default deterministic stream
// is used. n == 0 yields an empty tour; n < 0 yields ErrBadPointCount.
//
// Complexity: O(n) time, O(n) space.
func RandomTour(n int, rng *rand.Rand) (Tour, error) {
	if n < 0 {
		return nil, ErrBadPointCount
	}
	t := make(Tour, n)

	var i int
	for i = 0; i < n; i++ {
		t[i] = i
	}
	shuffleIntsInPlace(t, rng)

	return t, nil
}

// CopyTour returns an independent copy of the input tour. Nil stays nil.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(t Tour) Tour {
	if t == nil {
		return nil
	}
	out := make(Tour, len(t))
	copy(out, t)

	return out
}

// ValidateTour checks that t is a permutation of [0, n) of length n.
// It does not allocate besides a single O(n) boolean marker slice.
//
// Returns ErrInvalidTour on any violation (wrong length, out-of-range
// element, duplicate element) and ErrBadPointCount for n < 0.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(t Tour, n int) error {
	if n < 0 {
		return ErrBadPointCount
	}
	if len(t) != n {
		return ErrInvalidTour
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = t[i]
		// Out-of-range element violates the permutation contract.
		if v < 0 || v >= n {
			return ErrInvalidTour
		}
		// So does a duplicate.
		if seen[v] {
			return ErrInvalidTour
		}
		seen[v] = true
	}

	return nil
}

// Canonical returns the normal form of a tour: rotated so point 0 leads and,
// for tours longer than two points, oriented so the smaller of the two
// neighbors of 0 comes second. Two tours describe the same cycle if and only
// if their canonical forms are equal, which makes results comparable across
// seeds and runs.
//
// The input is validated (ErrInvalidTour) and left untouched; the result is
// a fresh slice.
//
// Complexity: O(n) time, O(n) space.
func Canonical(t Tour) (Tour, error) {
	if err := ValidateTour(t, len(t)); err != nil {
		return nil, err
	}
	var n = len(t)
	if n == 0 {
		return Tour{}, nil
	}

	// Stage 1 - rotate so the tour starts at point 0.
	var (
		pivot int
		i     int
	)
	for i = 0; i < n; i++ {
		if t[i] == 0 {
			pivot = i
			break
		}
	}
	out := make(Tour, n)
	for i = 0; i < n; i++ {
		out[i] = t[(pivot+i)%n]
	}

	// Stage 2 - fix orientation: compare the right neighbor of 0 with the
	// left one and reverse the interior when the left is smaller.
	if n > 2 && out[1] > out[n-1] {
		var lo, hi = 1, n - 1
		for lo < hi {
			out[lo], out[hi] = out[hi], out[lo]
			lo++
			hi--
		}
	}

	return out, nil
}
