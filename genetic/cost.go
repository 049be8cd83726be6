// Package genetic — length and fitness of tours.
//
// This file provides the two scoring primitives of the engine. They are
// intentionally minimal and side-effect free.
//
// Design:
//   - Strict sentinels from types.go; errors surfaced by the Metric
//     propagate unchanged so index violations keep their identity (they
//     indicate an internal invariant failure, not bad user input).
//   - Stable summation: lengths are rounded to 1e-9 so float noise cannot
//     make equal cycles compare unequal across platforms.
//
// Complexity: O(n) per tour, O(1) extra space.
package genetic

import "math"

// roundScale controls final length stabilization precision (1e-9).
const roundScale = 1e9

// TourLength returns the cyclic length of t under m: the sum of consecutive
// edges plus the implicit closing edge t[len-1] → t[0].
//
// Contract:
//   - m must be non-nil (ErrNilMetric).
//   - Tours of zero or one point have length 0 by definition; the closing
//     edge of a single point is Distance(i, i) == 0 and is not queried.
//   - Every visited index must be valid for m; a Metric error propagates
//     unchanged.
//
// Complexity: O(n).
func TourLength(m Metric, t Tour) (float64, error) {
	if m == nil {
		return 0, ErrNilMetric
	}
	var n = len(t)
	if n <= 1 {
		return 0, nil
	}

	var (
		sum  float64
		d    float64
		err  error
		i    int
		next int
	)
	for i = 0; i < n; i++ {
		next = i + 1
		if next == n {
			next = 0 // implicit closing edge
		}
		d, err = m.Distance(t[i], t[next])
		if err != nil {
			return 0, err
		}
		sum += d
	}

	return round1e9(sum), nil
}

// Fitness returns the selection score of t under m: the reciprocal of the
// cyclic length, so shorter tours score strictly higher.
//
// Contract:
//   - Tours of zero or one point have fitness 0 (no cycle to score).
//   - A tour of two or more points with length 0 (all points coincide) has
//     no defined fitness: ErrZeroLengthTour is returned, never ±Inf.
//
// Complexity: O(n).
func Fitness(m Metric, t Tour) (float64, error) {
	length, err := TourLength(m, t)
	if err != nil {
		return 0, err
	}
	if len(t) <= 1 {
		return 0, nil
	}
	if length == 0 {
		return 0, ErrZeroLengthTour
	}

	return 1 / length, nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
// This keeps lengths stable across platforms without affecting optimality.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
