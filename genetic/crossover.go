// Package genetic — order crossover (OX).
//
// Order crossover preserves a contiguous slice of the first parent and the
// relative visiting order of the second parent for everything else, so the
// child is a valid permutation whenever the parents are.
package genetic

import "math/rand"

// OrderCrossover recombines two parent tours under fixed cut points.
//
// The child keeps p1[a:b] at the same positions. The remaining positions
// are filled starting at position b and wrapping, with p2's points scanned
// from index b (wrapping) and points already present skipped. An empty
// segment (a == b) therefore yields a copy of p2.
//
// Contract:
//   - p1 and p2 must be equal-length permutations of the same [0, n)
//     (ErrInvalidTour).
//   - Cut points must satisfy 0 ≤ a ≤ b < n (ErrBadCutPoints): both cuts
//     are valid indices, and the inherited slice never covers the whole
//     tour.
//   - Parents are never modified; the child is a fresh slice.
//
// Complexity: O(n) time, O(n) space.
func OrderCrossover(p1, p2 Tour, a, b int) (Tour, error) {
	// Stage 1 - parent validation.
	var n = len(p1)
	if err := ValidateTour(p1, n); err != nil {
		return nil, err
	}
	if err := ValidateTour(p2, n); err != nil {
		return nil, err
	}

	// Stage 2 - cut-point validation.
	if a < 0 || b < a || b >= n {
		return nil, ErrBadCutPoints
	}

	return oxChild(p1, p2, a, b), nil
}

// oxChild builds the OX child without re-validating inputs.
// Hot path shared by OrderCrossover and crossChild.
//
// Complexity: O(n) time, O(n) space.
func oxChild(p1, p2 Tour, a, b int) Tour {
	var n = len(p1)

	// Stage 1 - copy the inherited slice and mark its points.
	var (
		child = make(Tour, n)
		used  = make([]bool, n)
		i     int
	)
	for i = a; i < b; i++ {
		child[i] = p1[i]
		used[p1[i]] = true
	}

	// Stage 2 - fill the remaining positions from p2 in visiting order.
	// Positions advance from b and wrap; p2 is scanned from index b and
	// wraps. Unused points and unfilled positions are equinumerous, so the
	// walk never re-enters the inherited slice.
	var (
		pos = b
		v   int
		j   int
	)
	for j = 0; j < n; j++ {
		v = p2[(b+j)%n]
		if used[v] {
			continue
		}
		child[pos] = v
		pos++
		if pos == n {
			pos = 0
		}
	}

	return child
}

// crossChild applies the crossover gate for one child: with probability
// rate the parents recombine under freshly drawn cut points, otherwise the
// child is a copy of the FIRST parent.
//
// Draw order per invocation is fixed (gate; then a, then b when the gate
// fires) so runs are reproducible.
//
// Contract (internal): parents are valid equal-length permutations with
// n >= 2, rate ∈ [0, 1], rng != nil.
//
// Complexity: O(n) time, O(n) space.
func crossChild(p1, p2 Tour, rate float64, rng *rand.Rand) Tour {
	if rng.Float64() >= rate {
		return CopyTour(p1)
	}

	// Two uniform index draws, swapped into order; see OrderCrossover for
	// the boundary policy.
	var (
		a = rng.Intn(len(p1))
		b = rng.Intn(len(p1))
	)
	if a > b {
		a, b = b, a
	}

	return oxChild(p1, p2, a, b)
}
