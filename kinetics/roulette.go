// SPDX-License-Identifier: MIT

package kinetics

// Roulette picks an index with probability proportional to its weight.
//
// With S = Σ weights it returns the first j such that u·S < Σ_{k≤j} weights[k].
// u must be a uniform draw from [0, 1) supplied by the caller's generator, so
// selection is reproducible from the generator alone. Zero-weight entries are
// never selected. Returns −1 when S < ZeroPropensity.
//
// Complexity: O(len(weights)).
func Roulette(weights []float64, u float64) int {
	total := Total(weights)
	if total < ZeroPropensity {
		return -1
	}
	target := u * total
	var (
		cum  float64
		last = -1
	)
	for j, w := range weights {
		if w <= 0 {
			continue
		}
		cum += w
		last = j
		if target < cum {
			return j
		}
	}

	// Rounding can leave target == cum at the end; the last positive weight wins.
	return last
}
