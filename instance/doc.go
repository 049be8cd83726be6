// Package instance models Travelling Salesman Problem instances.
//
// It provides two interchangeable distance sources:
//
//   - Euclidean — points in the plane; distances are straight-line
//     (hypot) and therefore symmetric with a zero diagonal.
//
//   - Matrix — an explicit n×n distance table for instances whose
//     distances are measured rather than derived (road networks,
//     benchmark data). Asymmetric tables are accepted.
//
// Both satisfy the genetic.Metric interface consumed by the evolution
// engine:
//
//	N() int
//	Distance(i, j int) (float64, error)
//
// Contracts shared by all constructors:
//   - Inputs are deep-copied; callers cannot corrupt an instance later.
//   - Distances for valid indices are finite and non-negative.
//   - Out-of-range indices yield ErrIndexOutOfRange, never a panic.
//
// Random builds throwaway instances for experiments and benchmarks:
// n points uniform in a side×side square, deterministic under a
// caller-supplied *rand.Rand (nil selects a fixed default stream).
package instance
