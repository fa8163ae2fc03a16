// SPDX-License-Identifier: MIT

package ssa

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/stochkin/network"
)

const methodDirect = "direct"

// Direct simulates net from init with Gillespie's direct method: one reaction
// event per iteration, drawn from the exact joint distribution of waiting time
// and reaction identity.
//
// Algorithm Outline:
//  1. Record (0, init). Derive stochastic rate constants; order > 3 ends the
//     run with StatusOrderTooHigh.
//  2. While fewer than MaxIter points are recorded:
//     a. compute propensities and their total a0;
//     b. a0 ≈ 0 → StatusExtinct if every reactive species is 0, else StatusStuck;
//     c. Δt ~ Exp(a0); pick j with probability a_j/a0;
//     d. x' = x + net[:, j]; a negative entry → StatusNegativePopulation (x' not recorded);
//     e. record (t+Δt, x'); t+Δt ≥ MaxT → StatusMaxTime.
//  3. Budget used up → StatusMaxIter.
//
// Errors:
//   - ErrNilNetwork, ErrInvalidOptions, ErrInvalidState: nothing was simulated, result is nil.
//   - ctx canceled between iterations: the partial result with StatusCanceled
//     and the wrapped context error.
//
// In-run outcomes are reported through Result.Status, never as errors.
// Equal Seed values give bit-identical results.
func Direct(ctx context.Context, net *network.Network, init []int64, opts Options) (*Result, error) {
	r, st, err := setup(net, init, opts)
	if err != nil {
		return nil, fmt.Errorf("ssa.Direct: %w", err)
	}
	if st == StatusOrderTooHigh {
		return r.finish(methodDirect, st), nil
	}
	r.log.Debug("simulation started",
		slog.String("method", methodDirect),
		slog.Int("species", net.Species()),
		slog.Int("reactions", net.Reactions()),
		slog.Uint64("seed", opts.Seed),
	)

	st, err = r.directSteps(ctx, r.remaining())
	if err != nil {
		return r.finish(methodDirect, st), fmt.Errorf("ssa.Direct: %w", err)
	}

	return r.finish(methodDirect, st), nil
}
