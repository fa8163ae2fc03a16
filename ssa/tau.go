// SPDX-License-Identifier: MIT

package ssa

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/stochkin/kinetics"
	"github.com/katalvlaran/stochkin/network"
)

const methodTau = "tau-adaptive"

const (
	// fallbackFactor: leaping is only worth it when τ′ covers at least this
	// many expected events (τ′ ≥ fallbackFactor/a0).
	fallbackFactor = 10.0

	// burstSteps bounds one delegated run of exact steps.
	burstSteps = 100
)

// tauState holds the per-step scratch of the tau-leaping engine.
type tauState struct {
	*runner
	opts TauOptions
	hor  []kinetics.HOR
	crit []bool
	cw   []float64 // critical propensities, zero elsewhere
}

// TauAdaptive simulates net from init with adaptive tau-leaping (Cao,
// Gillespie & Petzold 2006), falling back to bursts of exact direct-method
// steps when a leap would not pay off.
//
// Algorithm Outline (one iteration, current state x, propensities a, a0 = Σa):
//  1. a0 ≈ 0 → StatusExtinct or StatusStuck, as in Direct.
//  2. L_j = min over consumed species of ⌊x_i/|net_ij|⌋; reaction j is
//     critical when L_j < NC and a_j > 0.
//  3. τ′ = min over reactive species of bound_i/|μ_i| and bound_i²/σ²_i, with
//     μ, σ² summed over non-critical reactions, bound_i = max(Eps·x_i/g_i, 1)
//     and g_i from the species' HOR; τ′ = +Inf without non-critical reactions.
//  4. τ′ < 10/a0 → run up to min(100, remaining) exact steps on the same
//     generator, append them and continue; any burst status other than
//     StatusMaxIter ends the run.
//  5. τ″ ~ Exp(a0) (or Exp(a0c) over critical reactions with CriticalWaitingTime).
//  6. τ′ < τ″ → τ = τ′, non-critical reactions fire Poisson(a_j·τ) times,
//     critical ones not at all. Otherwise τ = τ″, one critical reaction chosen
//     by roulette fires once and non-critical ones fire Poisson(a_j·τ) times.
//  7. x' = x + net·K; a negative entry → StatusNegativePopulation (x' not recorded).
//  8. record (t+τ, x'); t+τ ≥ MaxT → StatusMaxTime. MaxIter points → StatusMaxIter.
//
// Errors and determinism are as documented on Direct.
func TauAdaptive(ctx context.Context, net *network.Network, init []int64, opts TauOptions) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("ssa.TauAdaptive: %w", err)
	}
	r, st, err := setup(net, init, opts.Options)
	if err != nil {
		return nil, fmt.Errorf("ssa.TauAdaptive: %w", err)
	}
	if st == StatusOrderTooHigh {
		return r.finish(methodTau, st), nil
	}
	hor, err := kinetics.Classify(r.react)
	if err != nil {
		return nil, fmt.Errorf("ssa.TauAdaptive: %w", err)
	}
	ts := &tauState{
		runner: r,
		opts:   opts,
		hor:    hor,
		crit:   make([]bool, net.Reactions()),
		cw:     make([]float64, net.Reactions()),
	}
	r.log.Debug("simulation started",
		slog.String("method", methodTau),
		slog.Int("species", net.Species()),
		slog.Int("reactions", net.Reactions()),
		slog.Uint64("seed", opts.Seed),
		slog.Int("nc", opts.NC),
		slog.Float64("eps", opts.Eps),
	)

	st, err = ts.loop(ctx)
	if err != nil {
		return r.finish(methodTau, st), fmt.Errorf("ssa.TauAdaptive: %w", err)
	}

	return r.finish(methodTau, st), nil
}

func (ts *tauState) loop(ctx context.Context) (Status, error) {
	var (
		total, taup, taupp float64
		st                 Status
		err                error
	)
	for ts.remaining() > 0 {
		if err = ctx.Err(); err != nil {
			return StatusCanceled, err
		}
		total = ts.propensities()
		if total < kinetics.ZeroPropensity {
			return ts.depleted(), nil
		}

		ts.partition()
		taup = ts.leapSize()
		taupp = ts.exactCandidate(total, taup)

		if taup < fallbackFactor/total || (math.IsInf(taup, 1) && math.IsInf(taupp, 1)) {
			st, err = ts.burst(ctx)
			if err != nil || st != StatusMaxIter {
				return st, err
			}
			continue
		}

		if !ts.leap(taup, taupp) {
			return StatusNegativePopulation, nil
		}
		if ts.t >= ts.maxT {
			return StatusMaxTime, nil
		}
	}

	return StatusMaxIter, nil
}

// partition marks the critical reactions and fills ts.cw.
func (ts *tauState) partition() {
	var (
		i, j, v int
		l, lj   int64
		nc      = int64(ts.opts.NC)
		s       = ts.net.Species()
	)
	for j = range ts.crit {
		lj = math.MaxInt64
		for i = 0; i < s; i++ {
			if v = ts.net.NetAt(i, j); v < 0 {
				if l = ts.x[i] / int64(-v); l < lj {
					lj = l
				}
			}
		}
		ts.crit[j] = lj < nc && ts.prop[j] > 0
		if ts.crit[j] {
			ts.cw[j] = ts.prop[j]
		} else {
			ts.cw[j] = 0
		}
	}
}

// leapSize returns the error-bounded candidate τ′.
func (ts *tauState) leapSize() float64 {
	nonCritical := false
	for _, c := range ts.crit {
		if !c {
			nonCritical = true
			break
		}
	}
	if !nonCritical {
		return math.Inf(1)
	}

	taup := math.Inf(1)
	var (
		mu, sig  float64
		v, bound float64
		xi       float64
		j        int
	)
	for _, i := range ts.reactive {
		mu, sig = 0, 0
		for j = range ts.crit {
			if ts.crit[j] {
				continue
			}
			v = float64(ts.net.NetAt(i, j))
			mu += v * ts.prop[j]
			sig += v * v * ts.prop[j]
		}
		xi = float64(ts.x[i])
		bound = math.Max(ts.opts.Eps*xi/ts.hor[i].G(ts.x[i]), 1)
		if mu != 0 {
			taup = math.Min(taup, bound/math.Abs(mu))
		}
		if sig != 0 {
			taup = math.Min(taup, bound*bound/sig)
		}
	}

	return taup
}

// exactCandidate draws τ″. It consumes randomness only when the step will not
// be delegated to an exact burst.
func (ts *tauState) exactCandidate(total, taup float64) float64 {
	if taup < fallbackFactor/total {
		return math.Inf(1)
	}
	rate := total
	if ts.opts.CriticalWaitingTime {
		rate = kinetics.Total(ts.cw)
		if rate < kinetics.ZeroPropensity {
			return math.Inf(1)
		}
	}

	return ts.gen.exp(rate)
}

// burst delegates up to burstSteps exact steps to the direct method.
func (ts *tauState) burst(ctx context.Context) (Status, error) {
	budget := min(burstSteps, ts.remaining())
	before := ts.traj.Len()
	st, err := ts.directSteps(ctx, budget)
	ts.log.Debug("exact burst",
		slog.Float64("t", ts.t),
		slog.Int("steps", ts.traj.Len()-before),
		slog.String("status", st.String()),
	)

	return st, err
}

// leap commits one τ step and reports false on a negative population.
func (ts *tauState) leap(taup, taupp float64) bool {
	tau := taup
	copy(ts.next, ts.x)
	if taup >= taupp {
		tau = taupp
		if jc := kinetics.Roulette(ts.cw, ts.gen.uniform()); jc >= 0 {
			ts.net.Apply(ts.next, jc, 1)
		}
	}
	for j, c := range ts.crit {
		if c || ts.prop[j] <= 0 {
			continue
		}
		if k := ts.gen.poisson(ts.prop[j] * tau); k > 0 {
			ts.net.Apply(ts.next, j, k)
		}
	}

	return ts.commit(ts.t + tau)
}
