package genetic

import "errors"

// Sentinel errors returned by this package. Callers branch with errors.Is;
// no other error values originate here. Errors surfaced by a Metric
// implementation propagate unchanged.
var (
	// ErrNilMetric is returned when the metric is nil.
	ErrNilMetric = errors.New("genetic: metric is nil")

	// ErrTooFewPoints is returned by Evolve for instances with fewer than
	// two points; there is nothing to optimize.
	ErrTooFewPoints = errors.New("genetic: at least two points required")

	// ErrBadPointCount is returned when a negative point count is supplied
	// to RandomTour or NewPopulation.
	ErrBadPointCount = errors.New("genetic: point count must be non-negative")

	// ErrBadPopulationSize is returned when Options.PopulationSize < 1.
	ErrBadPopulationSize = errors.New("genetic: population size must be positive")

	// ErrBadGenerations is returned when Options.Generations < 1.
	ErrBadGenerations = errors.New("genetic: generation count must be positive")

	// ErrBadTournamentSize is returned when Options.TournamentSize lies
	// outside [1, PopulationSize].
	ErrBadTournamentSize = errors.New("genetic: tournament size out of range")

	// ErrBadCrossoverRate is returned when Options.CrossoverRate lies
	// outside [0, 1].
	ErrBadCrossoverRate = errors.New("genetic: crossover rate out of range")

	// ErrBadMutationRate is returned when Options.MutationRate lies
	// outside [0, 1].
	ErrBadMutationRate = errors.New("genetic: mutation rate out of range")

	// ErrInvalidTour is returned when a tour is not a permutation of [0, n).
	ErrInvalidTour = errors.New("genetic: tour is not a permutation")

	// ErrZeroLengthTour is returned when a tour of two or more points has
	// cyclic length zero (all its points coincide); the reciprocal fitness
	// is undefined there, and the error is preferred over ±Inf.
	ErrZeroLengthTour = errors.New("genetic: tour has zero length")

	// ErrBadCutPoints is returned by OrderCrossover unless 0 ≤ a ≤ b < n.
	ErrBadCutPoints = errors.New("genetic: crossover cut points out of range")

	// ErrBadSwapPositions is returned by SwapMutation unless i and j are
	// distinct positions inside the tour.
	ErrBadSwapPositions = errors.New("genetic: swap positions must be distinct and in range")
)

// Metric is the distance source the engine consumes. instance.Euclidean and
// instance.Matrix implement it; tests and callers may supply their own.
//
// Contract:
//   - N() is the number of points and must not change during a run.
//   - Distance(i, j) must be non-negative and finite for i, j ∈ [0, N);
//     indices outside that range must yield an error, never a panic.
//   - Symmetry is not assumed anywhere in the engine.
type Metric interface {
	N() int
	Distance(i, j int) (float64, error)
}

// Tour is an open permutation of the point indices [0, N): every index
// occurs exactly once and the closing edge Tour[len-1] → Tour[0] is
// implicit (see TourLength).
type Tour []int

// Population is one generation of candidate tours. Members may repeat;
// each member owns its backing storage.
type Population []Tour

// Result holds the outcome of an evolution run.
type Result struct {
	// Tour is the best tour ever observed across all evaluated generations.
	Tour Tour

	// Length is the cyclic length of Tour, stabilized to 1e-9.
	Length float64
}

// Progress is one per-generation observer record; see Options.OnGeneration.
type Progress struct {
	// Generation is the zero-based index of the finished generation.
	Generation int

	// BestLength is the best-so-far cyclic length; the sequence of
	// BestLength values an observer sees is non-increasing.
	BestLength float64

	// MeanLength is the arithmetic mean length of the population this
	// generation selected from; MeanLength ≥ BestLength always.
	MeanLength float64
}
