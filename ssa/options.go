// SPDX-License-Identifier: MIT

package ssa

import (
	"fmt"
	"log/slog"
	"math"
)

// Default tunables of the adaptive tau-leaping engine.
const (
	// DefaultNC is the critical-reaction threshold: a reaction that can fire
	// fewer than NC more times before exhausting a reactant is critical.
	DefaultNC = 10

	// DefaultEps is the relative-error tolerance bounding each leap.
	DefaultEps = 0.03
)

// Options configures a simulation run.
//
// Fields:
//   - MaxT: time budget (> 0; +Inf runs until another budget ends the run).
//   - MaxIter: maximum number of recorded points, including the initial one (≥ 1).
//   - Volume: reactor volume used by the stochastic rate conversion (> 0).
//   - Seed: seed of the run's own generator; equal seeds give identical runs.
//   - ChemFlag: divide by Avogadro's number when converting rate constants.
//   - Logger: optional structured logger; nil discards.
type Options struct {
	MaxT     float64
	MaxIter  int
	Volume   float64
	Seed     uint64
	ChemFlag bool
	Logger   *slog.Logger
}

// DefaultOptions returns MaxT=1, MaxIter=1000, Volume=1, Seed=0, ChemFlag=false.
func DefaultOptions() Options {
	return Options{
		MaxT:    1,
		MaxIter: 1000,
		Volume:  1,
	}
}

// TauOptions configures the adaptive tau-leaping engine.
//
// Fields:
//   - NC: critical-reaction threshold (≥ 0).
//   - Eps: relative-error tolerance in (0, 1).
//   - CriticalWaitingTime: draw the exact-step candidate τ″ from the total
//     propensity of critical reactions only (Cao et al. 2006) instead of the
//     total propensity of all reactions. Off by default.
type TauOptions struct {
	Options
	NC                  int
	Eps                 float64
	CriticalWaitingTime bool
}

// DefaultTauOptions returns DefaultOptions with NC=DefaultNC and Eps=DefaultEps.
func DefaultTauOptions() TauOptions {
	return TauOptions{
		Options: DefaultOptions(),
		NC:      DefaultNC,
		Eps:     DefaultEps,
	}
}

func optionsErrorf(field string, v any) error {
	return fmt.Errorf("%w: %s=%v", ErrInvalidOptions, field, v)
}

// Validate checks the run budgets and volume.
func (o Options) Validate() error {
	if math.IsNaN(o.MaxT) || o.MaxT <= 0 {
		return optionsErrorf("MaxT", o.MaxT)
	}
	if o.MaxIter < 1 {
		return optionsErrorf("MaxIter", o.MaxIter)
	}
	if math.IsNaN(o.Volume) || math.IsInf(o.Volume, 0) || o.Volume <= 0 {
		return optionsErrorf("Volume", o.Volume)
	}

	return nil
}

// Validate checks the embedded Options and the tau-leaping tunables.
func (o TauOptions) Validate() error {
	if err := o.Options.Validate(); err != nil {
		return err
	}
	if o.NC < 0 {
		return optionsErrorf("NC", o.NC)
	}
	if math.IsNaN(o.Eps) || o.Eps <= 0 || o.Eps >= 1 {
		return optionsErrorf("Eps", o.Eps)
	}

	return nil
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return slog.New(slog.DiscardHandler)
}
