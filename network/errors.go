// SPDX-License-Identifier: MIT
// Package network: sentinel error set.
// All constructors and validators in this package return these sentinels
// (optionally wrapped with call-site context via %w); tests match them with
// errors.Is. No function panics on user-triggered error conditions.

package network

import (
	"errors"
	"fmt"
)

// ERROR PRIORITY (enforced in New and covered by tests):
// shape -> rate vector length -> stoichiometry sign -> rate sign -> names.

var (
	// ErrInvalidDimensions is returned when a requested stoichiometry shape is
	// non-positive (species <= 0 or reactions <= 0) or the input is empty.
	ErrInvalidDimensions = errors.New("network: dimensions must be > 0")

	// ErrOutOfRange indicates a species or reaction index outside valid bounds.
	ErrOutOfRange = errors.New("network: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes: reactant/product
	// matrices differ, ragged rows, or a vector of the wrong length.
	ErrDimensionMismatch = errors.New("network: dimension mismatch")

	// ErrNegativeStoichiometry signals a negative reactant or product coefficient.
	ErrNegativeStoichiometry = errors.New("network: negative stoichiometric coefficient")

	// ErrInvalidRate signals a negative, NaN or infinite deterministic rate constant.
	ErrInvalidRate = errors.New("network: rate constant must be finite and >= 0")

	// ErrNegativePopulation signals a state vector with a negative species count.
	ErrNegativePopulation = errors.New("network: negative species population")

	// ErrOrderTooHigh signals a reaction whose order (sum of reactant
	// coefficients) exceeds MaxReactionOrder.
	ErrOrderTooHigh = errors.New("network: reaction order greater than 3")

	// ErrInvalidName signals an empty, duplicate or miscounted species/reaction name.
	ErrInvalidName = errors.New("network: invalid name")

	// ErrUnknownSpecies signals a model file referencing an undeclared species.
	ErrUnknownSpecies = errors.New("network: unknown species")

	// ErrNilNetwork indicates a nil *Network or nil *Stoich argument.
	ErrNilNetwork = errors.New("network: nil receiver")
)

// networkErrorf wraps err with the given call-site tag.
func networkErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
