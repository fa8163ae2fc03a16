// SPDX-License-Identifier: MIT

// Package kinetics - highest order of reaction (HOR) per species.
//
// The adaptive tau-leaping step size bounds the relative change of every
// reactant species. How strongly a species' change moves the propensities it
// feeds depends on the highest order of reaction it takes part in and on its
// multiplicity there (Cao, Gillespie & Petzold 2006, eq. 27). Classify
// computes that once per simulation; HOR.G evaluates g_i for a population.

package kinetics

import (
	"fmt"

	"github.com/katalvlaran/stochkin/network"
)

// HORKind tags the error-bound formula a species needs.
type HORKind int

const (
	// Inert: the species is never a reactant.
	Inert HORKind = iota

	// Simple: highest order n with coefficient 1 there; g_i = n.
	Simple

	// DegenerateDouble: highest order 2 and the species appears twice in an
	// order-2 reaction (A + A).
	DegenerateDouble

	// DegenerateTriplePair: highest order 3 and the species appears twice in
	// an order-3 reaction (2A + B).
	DegenerateTriplePair

	// DegenerateTripleTriple: highest order 3 and the species appears three
	// times in an order-3 reaction (3A).
	DegenerateTripleTriple
)

// String implements fmt.Stringer.
func (k HORKind) String() string {
	switch k {
	case Inert:
		return "inert"
	case Simple:
		return "simple"
	case DegenerateDouble:
		return "degenerate-double"
	case DegenerateTriplePair:
		return "degenerate-triple-pair"
	case DegenerateTripleTriple:
		return "degenerate-triple-triple"
	default:
		return fmt.Sprintf("HORKind(%d)", int(k))
	}
}

// HOR is the classification of one species: its kind and the highest order
// of reaction it appears in as a reactant (0 for Inert).
type HOR struct {
	Kind  HORKind
	Order int
}

// Code returns the legacy integer encoding: 0 inert, 1/2/3 simple order,
// −2 degenerate double, −32 degenerate triple pair, −3 degenerate triple triple.
func (h HOR) Code() int {
	switch h.Kind {
	case DegenerateDouble:
		return -2
	case DegenerateTriplePair:
		return -32
	case DegenerateTripleTriple:
		return -3
	case Simple:
		return h.Order
	default:
		return 0
	}
}

// G returns the factor g_i bounding the relative propensity change caused by
// a relative change of this species at population x.
func (h HOR) G(x int64) float64 {
	xf := float64(x)
	switch h.Kind {
	case Simple:
		return float64(h.Order)
	case DegenerateDouble:
		if x == 1 {
			return 2
		}
		return 1 + 2/(xf-1)
	case DegenerateTripleTriple:
		if x == 1 || x == 2 {
			return 3
		}
		return 3 + 1/(xf-1) + 2/(xf-2)
	case DegenerateTriplePair:
		if x == 1 {
			return 3
		}
		return 1.5 * (2 + 1/(xf-1))
	default:
		return 0
	}
}

// Classify returns one HOR per species of react.
//
// For species i, let candidates be the orders of the reactions where i has a
// positive reactant coefficient:
//   - no candidates          → Inert;
//   - max order 1            → Simple{1};
//   - max order 2            → DegenerateDouble if i has coefficient 2 in some
//     order-2 reaction, else Simple{2};
//   - max order 3            → by i's largest coefficient among order-3
//     reactions: 3 → DegenerateTripleTriple, 2 → DegenerateTriplePair, else Simple{3}.
//
// Orders above 3 are reported as Simple{order}; the simulators reject such
// networks before they need a g_i.
//
// Complexity: O(S·R).
func Classify(react *network.Stoich) ([]HOR, error) {
	if react == nil {
		return nil, kineticsErrorf("Classify", ErrNilStoich)
	}
	s, r := react.Shape()
	orders := react.Orders()
	out := make([]HOR, s)

	var (
		i, j, c int
		hi      int
		maxAt2  int // largest coefficient of i among order-2 reactions
		maxAt3  int // largest coefficient of i among order-3 reactions
	)
	for i = 0; i < s; i++ {
		hi, maxAt2, maxAt3 = 0, 0, 0
		for j = 0; j < r; j++ {
			c = react.Coeff(i, j)
			if c <= 0 {
				continue
			}
			if orders[j] > hi {
				hi = orders[j]
			}
			switch orders[j] {
			case 2:
				maxAt2 = max(maxAt2, c)
			case 3:
				maxAt3 = max(maxAt3, c)
			}
		}

		switch {
		case hi == 0:
			out[i] = HOR{Kind: Inert}
		case hi == 2 && maxAt2 == 2:
			out[i] = HOR{Kind: DegenerateDouble, Order: 2}
		case hi == 3 && maxAt3 == 3:
			out[i] = HOR{Kind: DegenerateTripleTriple, Order: 3}
		case hi == 3 && maxAt3 == 2:
			out[i] = HOR{Kind: DegenerateTriplePair, Order: 3}
		default:
			out[i] = HOR{Kind: Simple, Order: hi}
		}
	}

	return out, nil
}
