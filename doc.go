// Package stochkin is a toolkit for stochastic simulation of well-mixed
// chemical reaction networks.
//
// What is inside?
//
//	network/      : stoichiometry matrices, validated reaction networks, YAML models
//	kinetics/     : stochastic rate constants, propensities, roulette selection,
//	                highest-order-of-reaction classification
//	ssa/          : Gillespie's direct method and adaptive tau-leaping
//	cmd/stochsim/ : command-line runner
//	examples/     : small runnable programs
//
// Quick start:
//
//	net, _ := network.New(
//		[][]int{{1}, {0}}, // A is consumed
//		[][]int{{0}, {1}}, // B is produced
//		[]float64{1},
//	)
//	opts := ssa.DefaultOptions()
//	opts.MaxT, opts.Seed = 5, 42
//	res, _ := ssa.Direct(context.Background(), net, []int64{100, 0}, opts)
//	t, x := res.Final()
//
// Every run owns its random generator, so equal seeds reproduce trajectories
// bit for bit and concurrent runs never interact.
package stochkin
