// Package ssa generates sample trajectories of chemical reaction networks
// under the stochastic (master-equation) model.
//
// 🚀 Two engines, one contract:
//
//   - Direct: Gillespie's exact direct method: one reaction event per
//     iteration, drawn from the exact joint distribution of waiting time and
//     reaction identity.
//   - TauAdaptive: adaptive tau-leaping (Cao, Gillespie & Petzold 2006):
//     many firings per step with the relative propensity change bounded by
//     Eps, critical reactions fired at most once per step, and bursts of exact
//     steps whenever a leap would cover fewer than ten expected events.
//
// Both take a validated *network.Network, an initial state and options, and
// return a *Result holding the trajectory and a terminal Status:
//
//	 1 StatusMaxIter            iteration budget exhausted
//	 2 StatusMaxTime            time budget exhausted (last point straddles MaxT)
//	 3 StatusExtinct            every reactive species depleted
//	-1 StatusOrderTooHigh       some reaction has order > 3
//	-2 StatusStuck              nothing can fire but reactive species remain
//	-3 StatusNegativePopulation an update would make a population negative
//	 0 StatusCanceled           context canceled between iterations
//
// ⚙️ Usage:
//
//	opts := ssa.DefaultOptions()
//	opts.MaxT, opts.MaxIter, opts.Seed = 10, 100000, 42
//	res, err := ssa.Direct(ctx, net, []int64{100, 0}, opts)
//	if err != nil {
//	    // invalid input: errors.Is(err, ssa.ErrInvalidOptions), ...
//	}
//	t, x := res.Final()
//
// Determinism:
//
//	Each call owns a PCG generator seeded from Options.Seed; every exponential,
//	Poisson and roulette draw comes from it in a fixed order. Equal inputs and
//	seeds give bit-identical results, and concurrent calls never interact.
//
// Cancellation:
//
//	The context is checked once per iteration (and per exact step inside a
//	tau-leaping burst); a step is never interrupted halfway.
package ssa
