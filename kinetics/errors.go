// SPDX-License-Identifier: MIT

package kinetics

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates a rate, state or output vector whose
	// length does not match the stoichiometry.
	ErrDimensionMismatch = errors.New("kinetics: dimension mismatch")

	// ErrOrderTooHigh is returned when a reaction order exceeds 3; no
	// stochastic rate constant is defined for it.
	ErrOrderTooHigh = errors.New("kinetics: reaction order greater than 3")

	// ErrInvalidVolume is returned for a non-positive or non-finite volume.
	ErrInvalidVolume = errors.New("kinetics: volume must be finite and > 0")

	// ErrNilStoich indicates a nil stoichiometry matrix.
	ErrNilStoich = errors.New("kinetics: nil stoichiometry")
)

func kineticsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
