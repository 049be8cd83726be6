// Package genetic — tournament selection.
//
// Selection pressure comes from sampling k members uniformly WITH
// replacement and keeping the best of the sample: larger k favors short
// tours more aggressively, k == 1 degenerates to uniform random choice.
package genetic

import "math/rand"

// tournament draws k population indices uniformly with replacement and
// returns the index holding the smallest length. Ties keep the earliest
// drawn of the tied minimal lengths (strict < comparison).
//
// Selection compares lengths directly: minimizing length and maximizing
// reciprocal fitness pick the same winner, without the division.
//
// Contract (internal): len(lengths) >= 1, k >= 1, rng != nil; exactly k
// Intn draws are consumed per call.
//
// Complexity: O(k) time, O(1) space.
func tournament(lengths []float64, k int, rng *rand.Rand) int {
	var (
		best = rng.Intn(len(lengths))
		c    int
		i    int
	)
	for i = 1; i < k; i++ {
		c = rng.Intn(len(lengths))
		if lengths[c] < lengths[best] {
			best = c
		}
	}

	return best
}
