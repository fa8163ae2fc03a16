// SPDX-License-Identifier: MIT

package kinetics

import "github.com/katalvlaran/stochkin/network"

// ZeroPropensity is the threshold below which a propensity total is treated
// as zero: no reaction can fire.
const ZeroPropensity = 1e-30

// Propensities writes the propensity of every reaction into out:
//
//	out[j] = kStoc[j] · Π_i x[i]^react[i][j]
//
// Powers are computed by repeated multiplication, so 0^0 = 1 and 0^k = 0 for
// k > 0: a reaction lacking any required reactant has propensity 0.
//
// Errors: ErrNilStoich, ErrDimensionMismatch (kStoc/out vs reactions, x vs species).
// Complexity: O(S·R) time, no allocations.
func Propensities(react *network.Stoich, kStoc []float64, x []int64, out []float64) error {
	if react == nil {
		return kineticsErrorf("Propensities", ErrNilStoich)
	}
	s, r := react.Shape()
	if len(kStoc) != r || len(out) != r || len(x) != s {
		return kineticsErrorf("Propensities", ErrDimensionMismatch)
	}
	var (
		i, j, p int
		c       int
		a, xi   float64
	)
	for j = 0; j < r; j++ {
		a = kStoc[j]
		for i = 0; i < s; i++ {
			c = react.Coeff(i, j)
			xi = float64(x[i])
			for p = 0; p < c; p++ {
				a *= xi
			}
		}
		out[j] = a
	}

	return nil
}

// Total returns Σ prop.
func Total(prop []float64) float64 {
	var sum float64
	for _, a := range prop {
		sum += a
	}

	return sum
}
