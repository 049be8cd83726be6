// Package genetic — run configuration.
//
// This file defines the Options bundle consumed by Evolve, its defaults,
// and the field validation that guards the driver.
//
// Design:
//   - Plain struct + DefaultOptions constructor; callers override fields.
//   - One sentinel per field violation, checked in declaration order, so
//     errors.Is pinpoints the offending knob.
//   - No time-based or environment-based configuration anywhere.
package genetic

import "math"

// Default parameter values returned by DefaultOptions. They reproduce the
// classic textbook configuration this engine was tuned with.
const (
	// DefaultPopulationSize is the number of tours per generation.
	DefaultPopulationSize = 50

	// DefaultGenerations is the number of evolution iterations.
	DefaultGenerations = 500

	// DefaultTournamentSize is the number of draws per parent selection.
	DefaultTournamentSize = 5

	// DefaultCrossoverRate gates order crossover per child.
	DefaultCrossoverRate = 0.8

	// DefaultMutationRate gates swap mutation per child.
	DefaultMutationRate = 0.2
)

// Options configures an evolution run. The zero value is not runnable;
// start from DefaultOptions and override fields.
//
// Fields:
//   - PopulationSize — tours per generation (P ≥ 1).
//   - Generations    — iterations to run (G ≥ 1); the run always performs
//     exactly G generations, there is no early stopping.
//   - TournamentSize — draws per parent selection (1 ≤ K ≤ P). K = 1 is
//     uniform random selection; K = P still samples with replacement.
//   - CrossoverRate  — probability in [0, 1] that a child is recombined
//     from both parents; otherwise it copies the first parent.
//   - MutationRate   — probability in [0, 1] that a child receives one
//     swap of two distinct positions.
//   - Elitism        — when true, the generation's best tour is copied
//     unchanged into one slot of the next generation.
//   - Seed           — RNG seed; 0 selects the fixed default stream, so
//     the zero value is fully reproducible. Vary it to vary runs.
//   - OnGeneration   — optional observer invoked once per generation after
//     replacement. Must be fast and must not retain the Progress pointer
//     semantics (the record is a value). Nil disables reporting.
//
// Example:
//
//	opts := genetic.DefaultOptions()
//	opts.Generations = 200
//	opts.Seed = 42
//	opts.OnGeneration = func(p genetic.Progress) {
//		if p.Generation%50 == 0 {
//			fmt.Printf("gen %d: best %.3f\n", p.Generation, p.BestLength)
//		}
//	}
//	res, err := genetic.Evolve(inst, opts)
type Options struct {
	PopulationSize int
	Generations    int
	TournamentSize int
	CrossoverRate  float64
	MutationRate   float64
	Elitism        bool
	Seed           int64
	OnGeneration   func(Progress)
}

// DefaultOptions returns the classic configuration: P=50, G=500, K=5,
// Cr=0.8, Mr=0.2, elitism enabled, deterministic default seed.
//
// Complexity: O(1).
func DefaultOptions() Options {
	return Options{
		PopulationSize: DefaultPopulationSize,
		Generations:    DefaultGenerations,
		TournamentSize: DefaultTournamentSize,
		CrossoverRate:  DefaultCrossoverRate,
		MutationRate:   DefaultMutationRate,
		Elitism:        true,
		Seed:           0,
	}
}

// validate checks field ranges in declaration order and returns the first
// violation as a sentinel from types.go. NaN rates are rejected.
//
// Complexity: O(1).
func (o Options) validate() error {
	if o.PopulationSize < 1 {
		return ErrBadPopulationSize
	}
	if o.Generations < 1 {
		return ErrBadGenerations
	}
	if o.TournamentSize < 1 || o.TournamentSize > o.PopulationSize {
		return ErrBadTournamentSize
	}
	if math.IsNaN(o.CrossoverRate) || o.CrossoverRate < 0 || o.CrossoverRate > 1 {
		return ErrBadCrossoverRate
	}
	if math.IsNaN(o.MutationRate) || o.MutationRate < 0 || o.MutationRate > 1 {
		return ErrBadMutationRate
	}

	return nil
}
