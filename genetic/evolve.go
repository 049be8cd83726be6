// Package genetic — the generational evolution driver.
//
// This file wires the operators into the classic loop:
//
//	initialize → evaluate → [best ← elite ← select/cross/mutate → replace]×G
//
// Design principles:
//   - Deterministic: one RNG stream, fixed draw order per child.
//   - Strict sentinels: every precondition violation aborts before any
//     evolution happens.
//   - Single-threaded: callers parallelize across runs, not inside one.
//   - Best-so-far is monotone non-increasing whether or not elitism is on.
package genetic

import "math"

// Evolve runs the genetic algorithm against m and returns the best tour
// ever observed together with its cyclic length.
//
// Lifecycle:
//  1. Validation: m must be non-nil (ErrNilMetric) and hold at least two
//     points (ErrTooFewPoints); Options field violations yield their
//     sentinels in declaration order. Nothing runs past a violation.
//  2. Initialization: PopulationSize random tours are built and evaluated.
//     On degenerate instances (all points coincide) evaluation yields
//     ErrZeroLengthTour here and no generation runs.
//  3. Evolution: exactly Generations iterations. Each iteration
//     a. updates best-so-far from the evaluated population (strictly
//     shorter wins, so the earliest incumbent survives exact ties);
//     b. copies the generation's best into one slot when Elitism is on;
//     c. fills the remaining slots: two tournaments pick parents, order
//     crossover recombines (gate CrossoverRate, skip copies the first
//     parent), swap mutation perturbs (gate MutationRate);
//     d. replaces the population wholesale and reports Progress to
//     OnGeneration when set.
//
// The offspring of the final generation are never evaluated: no later step
// reads those lengths, and best-so-far already covers every evaluated tour.
//
// Determinism: Seed fully determines a run (0 selects the fixed default
// stream). The returned Result shares no storage with internal state.
//
// Complexity: O(Generations · PopulationSize · (n + TournamentSize)) time,
// O(PopulationSize · n) space.
func Evolve(m Metric, opts Options) (Result, error) {
	// Stage 1 - preconditions.
	if m == nil {
		return Result{}, ErrNilMetric
	}
	var n = m.N()
	if n < 2 {
		return Result{}, ErrTooFewPoints
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	// Stage 2 - initialization.
	var rng = rngFromSeed(opts.Seed)
	pop, err := NewPopulation(n, opts.PopulationSize, rng)
	if err != nil {
		return Result{}, err
	}
	lengths, err := evaluate(m, pop)
	if err != nil {
		return Result{}, err
	}

	// Stage 3 - evolution loop.
	var (
		bestTour   Tour             // best-so-far, owned by the driver
		bestLength = math.Inf(1)    // cyclic length of bestTour
		gen        int              // generation index
		leader     int              // index of the generation's best member
		next       Population       // generation under construction
		p1         int              // first parent index
		p2         int              // second parent index
		child      Tour             // offspring under construction
	)
	for gen = 0; gen < opts.Generations; gen++ {
		// Stage 3a - best-so-far update.
		leader = argMin(lengths)
		if lengths[leader] < bestLength {
			bestLength = lengths[leader]
			bestTour = CopyTour(pop[leader])
		}

		// Stage 3b - next generation.
		next = make(Population, 0, opts.PopulationSize)
		if opts.Elitism {
			// One slot; copied so offspring mutation cannot touch it.
			next = append(next, CopyTour(pop[leader]))
		}
		for len(next) < opts.PopulationSize {
			p1 = tournament(lengths, opts.TournamentSize, rng)
			p2 = tournament(lengths, opts.TournamentSize, rng)
			child = crossChild(pop[p1], pop[p2], opts.CrossoverRate, rng)
			mutateChild(child, opts.MutationRate, rng)
			next = append(next, child)
		}

		// Stage 3c - wholesale replacement, then progress reporting.
		// MeanLength summarizes the population this generation selected
		// from; its lengths are the ones that exist at this point.
		pop = next
		if opts.OnGeneration != nil {
			opts.OnGeneration(Progress{
				Generation: gen,
				BestLength: bestLength,
				MeanLength: meanLength(lengths),
			})
		}

		// Stage 3d - evaluate the new generation unless the run is over.
		if gen+1 < opts.Generations {
			lengths, err = evaluate(m, pop)
			if err != nil {
				return Result{}, err
			}
		}
	}

	return Result{Tour: bestTour, Length: bestLength}, nil
}
