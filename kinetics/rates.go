// SPDX-License-Identifier: MIT

package kinetics

import (
	"fmt"
	"math"

	"github.com/katalvlaran/stochkin/network"
)

// Avogadro is the particle-per-mole constant used to convert concentration
// based rate constants into particle-count based ones.
const Avogadro = 6.023e23

// StochasticRates converts deterministic rate constants into stochastic ones.
//
// Reactions of order 0 and 1 keep kStoc = kDet. For order n ≥ 2 the
// conversion is
//
//	kStoc = kDet · m / f^(n−1),   f = volume·Avogadro (chem) or volume
//
// where m is the multiplicity factor of the reactant pattern: 2 for A+A and
// 2A+B, 6 for 3A, 1 otherwise.
//
// Errors:
//   - ErrNilStoich, ErrDimensionMismatch (len(kDet) != reactions);
//   - ErrInvalidVolume for volume <= 0, NaN or ±Inf;
//   - ErrOrderTooHigh when some reaction has order > 3.
func StochasticRates(react *network.Stoich, kDet []float64, volume float64, chem bool) ([]float64, error) {
	if react == nil {
		return nil, kineticsErrorf("StochasticRates", ErrNilStoich)
	}
	s, r := react.Shape()
	if len(kDet) != r {
		return nil, kineticsErrorf("StochasticRates", ErrDimensionMismatch)
	}
	if !(volume > 0) || math.IsInf(volume, 0) {
		return nil, kineticsErrorf("StochasticRates", ErrInvalidVolume)
	}

	f := volume
	if chem {
		f *= Avogadro
	}
	orders := react.Orders()
	kStoc := make([]float64, r)
	for j := 0; j < r; j++ {
		if orders[j] > network.MaxReactionOrder {
			return nil, fmt.Errorf("StochasticRates: reaction %d has order %d: %w", j, orders[j], ErrOrderTooHigh)
		}
		kStoc[j] = kDet[j]
		if orders[j] < 2 {
			continue
		}
		m := 1.0
		for i := 0; i < s; i++ {
			switch react.Coeff(i, j) {
			case 2:
				m *= 2
			case 3:
				m *= 6
			}
		}
		kStoc[j] *= m / math.Pow(f, float64(orders[j]-1))
	}

	return kStoc, nil
}
