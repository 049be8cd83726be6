// Package instance — coordinate-backed instances.
//
// This file implements the Euclidean instance: a private copy of the input
// points plus on-demand straight-line distances.
//
// Design:
//   - Distances are computed, never cached: one hypot per edge is cheaper
//     than an n×n table for the instance sizes the engine targets, and it
//     keeps the type allocation-free after construction.
//   - Strict sentinels from types.go; no panics on user input.
//
// Complexity: all accessors O(1); construction O(n).
package instance

import "math"

// Euclidean is a TSP instance backed by point coordinates.
// Distances are symmetric with a zero diagonal by construction.
type Euclidean struct {
	pts []Point
}

// New builds a Euclidean instance from points.
//
// Contract:
//   - len(points) >= 1; empty or nil input yields ErrNoPoints.
//   - Every coordinate must be finite; NaN/±Inf yield ErrNotFinite.
//   - The slice is copied; later mutation of the argument cannot corrupt
//     the instance.
//
// Complexity: O(n) time, O(n) space.
func New(points []Point) (*Euclidean, error) {
	// Stage 1 - shape.
	if len(points) == 0 {
		return nil, ErrNoPoints
	}

	// Stage 2 - finiteness scan + defensive copy.
	var (
		pts = make([]Point, len(points))
		i   int
		p   Point
	)
	for i = 0; i < len(points); i++ {
		p = points[i]
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			return nil, ErrNotFinite
		}
		pts[i] = p
	}

	return &Euclidean{pts: pts}, nil
}

// N reports the number of points.
//
// Complexity: O(1).
func (e *Euclidean) N() int { return len(e.pts) }

// Point returns the stored point at index i.
// Indices outside [0, N) yield ErrIndexOutOfRange.
//
// Complexity: O(1).
func (e *Euclidean) Point(i int) (Point, error) {
	if i < 0 || i >= len(e.pts) {
		return Point{}, ErrIndexOutOfRange
	}

	return e.pts[i], nil
}

// Points returns an independent copy of the stored points, in index order.
// Useful for plotting or exporting an instance without exposing internals.
//
// Complexity: O(n) time, O(n) space.
func (e *Euclidean) Points() []Point {
	out := make([]Point, len(e.pts))
	copy(out, e.pts)

	return out
}

// Distance returns the straight-line distance between points i and j.
//
// Contract:
//   - i, j ∈ [0, N); violations yield ErrIndexOutOfRange.
//   - Symmetric: Distance(i, j) == Distance(j, i) exactly (hypot takes
//     absolute values of both deltas).
//   - Distance(i, i) == 0.
//
// Complexity: O(1).
func (e *Euclidean) Distance(i, j int) (float64, error) {
	var n = len(e.pts)
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, ErrIndexOutOfRange
	}

	return math.Hypot(e.pts[i].X-e.pts[j].X, e.pts[i].Y-e.pts[j].Y), nil
}
