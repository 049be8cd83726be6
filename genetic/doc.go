// Package genetic evolves Travelling Salesman tours with a classic
// generational genetic algorithm.
//
// The engine combines:
//
//   - Tournament selection — k uniform draws with replacement; the
//     shortest sampled tour wins.
//
//   - Order crossover (OX) — a contiguous slice of the first parent plus
//     the second parent's visiting order for everything else.
//
//   - Swap mutation — one exchange of two distinct positions, gated per
//     child.
//
//   - Elitism — the generation's best survives unchanged in one slot.
//
// Tours are open permutations of the point indices [0, N); the closing
// edge back to the first point is implicit in TourLength.
//
// Determinism: Evolve consumes a single seeded stream (Options.Seed; 0
// selects a fixed default), so identical inputs yield identical runs.
// Best-so-far is monotone non-increasing across generations whether or
// not elitism is enabled.
//
// Use this package when you need good tours on instances where exact
// solving is too expensive, and pair it with package instance for
// coordinate or table-backed distance sources.
package genetic
