// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"math"
)

// MaxReactionOrder is the largest reaction order the simulators accept.
// Orders above it are physically implausible (four-body collisions).
const MaxReactionOrder = 3

const ctxNew = "network.New"

// Network is an immutable reaction network: reactant and product
// stoichiometry, the derived net change matrix and deterministic rate constants.
//
// All accessors returning slices or matrices hand out copies, so a *Network
// can be shared freely between concurrent simulations.
type Network struct {
	react *Stoich   // reactant coefficients, species×reactions
	prod  *Stoich   // product coefficients, species×reactions
	net   *Stoich   // prod − react
	kDet  []float64 // deterministic rate constants, one per reaction

	orders   []int // column sums of react
	reactive []int // species with a positive reactant coefficient somewhere

	speciesNames  []string
	reactionNames []string
}

// Option configures optional Network metadata.
type Option func(*Network)

// WithSpeciesNames attaches one label per species (validated by New).
func WithSpeciesNames(names ...string) Option {
	return func(n *Network) { n.speciesNames = append([]string(nil), names...) }
}

// WithReactionNames attaches one label per reaction (validated by New).
func WithReactionNames(names ...string) Option {
	return func(n *Network) { n.reactionNames = append([]string(nil), names...) }
}

// New builds a Network from [species][reaction] tables.
// See NewFromStoich for the validation order and errors.
func New(react, prod [][]int, kDet []float64, opts ...Option) (*Network, error) {
	r, err := StoichFromRows(react)
	if err != nil {
		return nil, networkErrorf(ctxNew, err)
	}
	p, err := StoichFromRows(prod)
	if err != nil {
		return nil, networkErrorf(ctxNew, err)
	}

	return NewFromStoich(r, p, kDet, opts...)
}

// NewFromStoich validates and assembles a Network.
//
// Validation order (first failure wins):
//  1. react/prod non-nil (ErrNilNetwork) and of equal shape (ErrDimensionMismatch);
//  2. len(kDet) == reactions (ErrDimensionMismatch);
//  3. every coefficient >= 0 (ErrNegativeStoichiometry);
//  4. every rate finite and >= 0 (ErrInvalidRate);
//  5. names, when given, match counts and are unique and non-empty (ErrInvalidName).
//
// Reaction order is not bounded here: the simulators report
// orders above MaxReactionOrder as a terminal status. Use ValidateOrder for a
// hard error.
//
// The inputs are copied.
func NewFromStoich(react, prod *Stoich, kDet []float64, opts ...Option) (*Network, error) {
	if react == nil || prod == nil {
		return nil, networkErrorf(ctxNew, ErrNilNetwork)
	}
	if react.s != prod.s || react.r != prod.r {
		return nil, networkErrorf(ctxNew+": products", ErrDimensionMismatch)
	}
	if len(kDet) != react.r {
		return nil, networkErrorf(ctxNew+": rates", ErrDimensionMismatch)
	}
	if react.minEntry() < 0 {
		return nil, networkErrorf(ctxNew+": reactants", ErrNegativeStoichiometry)
	}
	if prod.minEntry() < 0 {
		return nil, networkErrorf(ctxNew+": products", ErrNegativeStoichiometry)
	}
	for j, k := range kDet {
		if k < 0 || math.IsNaN(k) || math.IsInf(k, 0) {
			return nil, fmt.Errorf("%s: rate[%d]=%g: %w", ctxNew, j, k, ErrInvalidRate)
		}
	}

	n := &Network{
		react: react.Clone(),
		prod:  prod.Clone(),
		kDet:  append([]float64(nil), kDet...),
	}
	for _, opt := range opts {
		opt(n)
	}
	if err := validateNames(n.speciesNames, react.s); err != nil {
		return nil, networkErrorf(ctxNew+": species names", err)
	}
	if err := validateNames(n.reactionNames, react.r); err != nil {
		return nil, networkErrorf(ctxNew+": reaction names", err)
	}

	// Sub cannot fail: shapes were checked above.
	n.net, _ = n.prod.Sub(n.react)
	n.orders = n.react.Orders()
	for i := 0; i < n.react.s; i++ {
		for j := 0; j < n.react.r; j++ {
			if n.react.at(i, j) > 0 {
				n.reactive = append(n.reactive, i)
				break
			}
		}
	}

	return n, nil
}

// Species returns the number of species.
func (n *Network) Species() int { return n.react.s }

// Reactions returns the number of reactions.
func (n *Network) Reactions() int { return n.react.r }

// React returns a copy of the reactant matrix.
func (n *Network) React() *Stoich { return n.react.Clone() }

// Prod returns a copy of the product matrix.
func (n *Network) Prod() *Stoich { return n.prod.Clone() }

// Net returns a copy of the net change matrix (prod − react).
func (n *Network) Net() *Stoich { return n.net.Clone() }

// KDet returns a copy of the deterministic rate constants.
func (n *Network) KDet() []float64 { return append([]float64(nil), n.kDet...) }

// Orders returns a copy of the per-reaction orders.
func (n *Network) Orders() []int { return append([]int(nil), n.orders...) }

// MaxOrder returns the highest reaction order in the network.
func (n *Network) MaxOrder() int {
	hi := 0
	for _, o := range n.orders {
		if o > hi {
			hi = o
		}
	}

	return hi
}

// ReactiveSpecies returns the indices of species that appear as a reactant in
// at least one reaction, in ascending order.
func (n *Network) ReactiveSpecies() []int { return append([]int(nil), n.reactive...) }

// SpeciesNames returns the species labels, generating "S0", "S1", ... when none were set.
func (n *Network) SpeciesNames() []string { return namesOrDefault(n.speciesNames, n.react.s, "S") }

// ReactionNames returns the reaction labels, generating "R0", "R1", ... when none were set.
func (n *Network) ReactionNames() []string {
	return namesOrDefault(n.reactionNames, n.react.r, "R")
}

// Apply adds count firings of reaction j to x in place. It does not check
// signs: a leap may push a species below zero only transiently while other
// reactions are applied, so callers validate the final state.
func (n *Network) Apply(x []int64, j int, count int64) {
	for i := 0; i < n.net.s; i++ {
		if v := n.net.at(i, j); v != 0 {
			x[i] += int64(v) * count
		}
	}
}

// NetAt returns the net change of species i per firing of reaction j.
// Callers guarantee bounds.
func (n *Network) NetAt(i, j int) int { return n.net.at(i, j) }

// ValidateOrder returns ErrOrderTooHigh when any reaction order exceeds
// MaxReactionOrder.
func ValidateOrder(n *Network) error {
	if n == nil {
		return networkErrorf("ValidateOrder", ErrNilNetwork)
	}
	for j, o := range n.orders {
		if o > MaxReactionOrder {
			return fmt.Errorf("ValidateOrder: reaction %d has order %d: %w", j, o, ErrOrderTooHigh)
		}
	}

	return nil
}

// ValidateState checks that x has one non-negative entry per species.
func (n *Network) ValidateState(x []int64) error {
	if len(x) != n.react.s {
		return networkErrorf("ValidateState", ErrDimensionMismatch)
	}
	for i, v := range x {
		if v < 0 {
			return fmt.Errorf("ValidateState: species %d=%d: %w", i, v, ErrNegativePopulation)
		}
	}

	return nil
}

func validateNames(names []string, want int) error {
	if names == nil {
		return nil
	}
	if len(names) != want {
		return ErrInvalidName
	}
	seen := make(map[string]struct{}, len(names))
	for _, s := range names {
		if s == "" {
			return ErrInvalidName
		}
		if _, dup := seen[s]; dup {
			return ErrInvalidName
		}
		seen[s] = struct{}{}
	}

	return nil
}

func namesOrDefault(names []string, n int, prefix string) []string {
	if names != nil {
		return append([]string(nil), names...)
	}
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%d", prefix, i)
	}

	return out
}
