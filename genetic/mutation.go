// Package genetic — swap mutation.
//
// Mutation keeps the gene pool from stagnating: one exchange of two
// distinct positions, gated per child by Options.MutationRate.
package genetic

import "math/rand"

// SwapMutation returns a copy of t with positions i and j exchanged.
//
// Contract:
//   - i, j ∈ [0, len(t)) and i != j, otherwise ErrBadSwapPositions; a tour
//     of fewer than two points has no two distinct positions to offer.
//   - The input tour is never modified.
//
// Complexity: O(n) time, O(n) space.
func SwapMutation(t Tour, i, j int) (Tour, error) {
	var n = len(t)
	if i < 0 || i >= n || j < 0 || j >= n || i == j {
		return nil, ErrBadSwapPositions
	}
	out := CopyTour(t)
	out[i], out[j] = out[j], out[i]

	return out, nil
}

// mutateChild applies the mutation gate for one child: with probability
// rate, one swap of two distinct positions is performed in place. Tours of
// fewer than two points pass through untouched.
//
// Draw order per invocation is fixed (gate; then i, then j when the gate
// fires). The second draw ranges over the other n-1 positions and shifts
// past i, so i == j is impossible by construction and a fired mutation
// always changes the tour.
//
// Contract (internal): rng != nil; the child is owned by the caller and is
// mutated in place.
//
// Complexity: O(1).
func mutateChild(t Tour, rate float64, rng *rand.Rand) {
	var n = len(t)
	if n < 2 {
		return
	}
	if rng.Float64() >= rate {
		return
	}

	var (
		i = rng.Intn(n)
		j = rng.Intn(n - 1)
	)
	if j >= i {
		j++
	}
	t[i], t[j] = t[j], t[i]
}
