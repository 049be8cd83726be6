// Package instance — table-backed instances.
//
// This file implements the Matrix instance: an explicit distance table,
// validated once at construction and read-only afterwards.
//
// Design:
//   - Full validation up front (shape, finiteness, sign, diagonal) so the
//     engine may trust every stored entry.
//   - Symmetry is NOT required: measured road distances are often directed.
//   - Strict sentinels from types.go; no panics on user input.
package instance

import "math"

// diagTol bounds how far a diagonal entry may deviate from zero before the
// table is rejected. Structural tolerance only; stored values are kept verbatim.
const diagTol = 1e-12

// Matrix is a TSP instance backed by an explicit n×n distance table.
type Matrix struct {
	n    int
	dist [][]float64
}

// NewMatrix builds a table-backed instance from dist.
//
// Validation stages:
//  1. Shape: non-empty (ErrNoPoints), square and non-ragged (ErrNonSquare).
//  2. Values: finite (ErrNotFinite), non-negative (ErrNegativeDistance).
//  3. Diagonal: |dist[i][i]| ≤ 1e-12, otherwise ErrNonZeroDiagonal.
//
// The table is deep-copied; later mutation of the argument cannot corrupt
// the instance. A 1×1 zero table is a valid single-point instance.
//
// Complexity: O(n²) time, O(n²) space.
func NewMatrix(dist [][]float64) (*Matrix, error) {
	// Stage 1 - shape.
	var n = len(dist)
	if n == 0 {
		return nil, ErrNoPoints
	}

	var (
		cp = make([][]float64, n)
		i  int
		j  int
		d  float64
	)
	for i = 0; i < n; i++ {
		if len(dist[i]) != n {
			return nil, ErrNonSquare
		}

		// Stage 2 - per-entry value checks while copying the row.
		cp[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			d = dist[i][j]
			if math.IsNaN(d) || math.IsInf(d, 0) {
				return nil, ErrNotFinite
			}
			if d < 0 {
				return nil, ErrNegativeDistance
			}
			cp[i][j] = d
		}

		// Stage 3 - diagonal (non-negativity already established).
		if cp[i][i] > diagTol {
			return nil, ErrNonZeroDiagonal
		}
	}

	return &Matrix{n: n, dist: cp}, nil
}

// N reports the number of points.
//
// Complexity: O(1).
func (m *Matrix) N() int { return m.n }

// Distance returns the stored distance from i to j (directed lookup).
// Indices outside [0, N) yield ErrIndexOutOfRange.
//
// Complexity: O(1).
func (m *Matrix) Distance(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, ErrIndexOutOfRange
	}

	return m.dist[i][j], nil
}
