package genetic

// Test-Bridge (White-Box) for Private Engine Hooks
//
// Purpose:
//   - Expose UNEXPORTED operators and statistics to genetic_test ONLY.
//   - Enable white-box verification of gate and draw-order semantics
//     without widening the prod API.
//
// Behavior & Determinism:
//   - Thin aliases; no side effects beyond the wrapped functions.
//
// Risks & Maintenance:
//   - If a private helper changes signature, mirror the change here once,
//     not across many tests.
var (
	// ExportedTournament exposes tournament for white-box tests.
	ExportedTournament = tournament
	// ExportedCrossChild exposes crossChild for white-box tests.
	ExportedCrossChild = crossChild
	// ExportedMutateChild exposes mutateChild for white-box tests.
	ExportedMutateChild = mutateChild
	// ExportedOxChild exposes oxChild for white-box tests.
	ExportedOxChild = oxChild
	// ExportedEvaluate exposes evaluate for white-box tests.
	ExportedEvaluate = evaluate
	// ExportedMeanLength exposes meanLength for white-box tests.
	ExportedMeanLength = meanLength
	// ExportedArgMin exposes argMin for white-box tests.
	ExportedArgMin = argMin
	// ExportedRNGFromSeed exposes rngFromSeed for white-box tests.
	ExportedRNGFromSeed = rngFromSeed
	// ExportedShuffleInts exposes shuffleIntsInPlace for white-box tests.
	ExportedShuffleInts = shuffleIntsInPlace
)

// ExportedValidateOptions forwards to the private Options.validate so tests
// can assert per-field sentinels without running Evolve.
func ExportedValidateOptions(o Options) error {
	return o.validate()
}

// Default seed export to avoid a magic constant in tests.
const DefaultRNGSeedTestOnly = defaultRNGSeed
