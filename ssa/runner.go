// SPDX-License-Identifier: MIT

package ssa

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/stochkin/kinetics"
	"github.com/katalvlaran/stochkin/network"
)

// trajectoryCapHint caps the up-front allocation; longer runs grow the slices.
const trajectoryCapHint = 4096

// runner is the state of one simulation call, shared by the direct method
// and the tau-leaping engine (which delegates exact bursts to it).
type runner struct {
	net   *network.Network
	react *network.Stoich
	kStoc []float64

	reactive []int // species indices that appear as a reactant

	prop []float64 // propensities of the current state
	x    []int64   // current state
	next []int64   // scratch for the candidate state
	t    float64

	maxT    float64
	maxIter int

	traj Trajectory
	gen  *generator
	log  *slog.Logger
}

// setup validates inputs and prepares a runner with the initial point
// recorded. A StatusOrderTooHigh status is returned (with a nil error) when the
// network cannot be simulated; the runner still carries the one-point trajectory.
func setup(net *network.Network, init []int64, opts Options) (*runner, Status, error) {
	if net == nil {
		return nil, 0, ErrNilNetwork
	}
	if err := opts.Validate(); err != nil {
		return nil, 0, err
	}
	if err := net.ValidateState(init); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrInvalidState, err)
	}

	capHint := min(opts.MaxIter, trajectoryCapHint)
	r := &runner{
		net:      net,
		react:    net.React(),
		reactive: net.ReactiveSpecies(),
		prop:     make([]float64, net.Reactions()),
		x:        append([]int64(nil), init...),
		next:     make([]int64, net.Species()),
		maxT:     opts.MaxT,
		maxIter:  opts.MaxIter,
		traj: Trajectory{
			Times:  make([]float64, 0, capHint),
			States: make([][]int64, 0, capHint),
		},
		gen: newGenerator(opts.Seed),
		log: opts.logger(),
	}
	r.traj.record(0, r.x)

	kStoc, err := kinetics.StochasticRates(r.react, net.KDet(), opts.Volume, opts.ChemFlag)
	if err != nil {
		// Volume and shapes were validated above; only the order can fail here.
		r.log.Debug("network rejected", slog.Int("max_order", net.MaxOrder()), slog.Any("err", err))
		return r, StatusOrderTooHigh, nil
	}
	r.kStoc = kStoc

	return r, StatusMaxIter, nil
}

// propensities refreshes r.prop from r.x and returns their total.
func (r *runner) propensities() float64 {
	// Shapes are fixed by setup; the error path cannot trigger.
	_ = kinetics.Propensities(r.react, r.kStoc, r.x, r.prop)
	return kinetics.Total(r.prop)
}

// depleted classifies a state in which no reaction can fire: extinction when
// every reactive species is at zero, otherwise a stuck network.
func (r *runner) depleted() Status {
	for _, i := range r.reactive {
		if r.x[i] > 0 {
			return StatusStuck
		}
	}

	return StatusExtinct
}

// commit makes r.next the current state at time t and records it. It reports
// false, leaving the state untouched, when r.next has a negative entry.
func (r *runner) commit(t float64) bool {
	for _, v := range r.next {
		if v < 0 {
			return false
		}
	}
	r.x, r.next = r.next, r.x
	r.t = t
	r.traj.record(r.t, r.x)

	return true
}

// remaining is the number of points that can still be recorded.
func (r *runner) remaining() int { return r.maxIter - r.traj.Len() }

// directSteps runs the exact direct method from the current (t, x) for at
// most budget new points. It returns StatusMaxIter when the budget is used up
// without another terminal condition.
//
// Per step: propensities → Δt ~ Exp(total) → j by roulette → x += net[:, j].
func (r *runner) directSteps(ctx context.Context, budget int) (Status, error) {
	var (
		total float64
		dt    float64
		j     int
	)
	for n := 0; n < budget; n++ {
		if err := ctx.Err(); err != nil {
			return StatusCanceled, err
		}
		total = r.propensities()
		if total < kinetics.ZeroPropensity {
			return r.depleted(), nil
		}
		dt = r.gen.exp(total)
		j = kinetics.Roulette(r.prop, r.gen.uniform())
		if j < 0 {
			return r.depleted(), nil
		}

		copy(r.next, r.x)
		r.net.Apply(r.next, j, 1)
		if !r.commit(r.t + dt) {
			return StatusNegativePopulation, nil
		}
		if r.t >= r.maxT {
			return StatusMaxTime, nil
		}
	}

	return StatusMaxIter, nil
}

// finish logs the outcome and packages the result.
func (r *runner) finish(method string, st Status) *Result {
	r.log.Debug("simulation finished",
		slog.String("method", method),
		slog.String("status", st.String()),
		slog.Int("points", r.traj.Len()),
		slog.Float64("t", r.t),
	)

	return &Result{Trajectory: r.traj, Status: st}
}
