// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stochkin/network"
	"github.com/katalvlaran/stochkin/ssa"
)

const (
	methodDirect = "direct"
	methodTau    = "tau"
)

type runFlags struct {
	method      string
	format      string
	maxT        float64
	maxIter     int
	seed        uint64
	volume      float64
	chem        bool
	nc          int
	eps         float64
	criticalTau bool
}

func (a *app) newRunCmd() *cobra.Command {
	f := runFlags{}
	cmd := &cobra.Command{
		Use:   "run MODEL.yaml",
		Short: "Simulate one trajectory of a model",
		Long: `Simulate one trajectory and write it to stdout as CSV (t plus one column per
species) or JSON. Terminal statuses such as "stuck" or "negative-population" are
part of the output, not errors.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args[0], f)
		},
	}

	cmd.Flags().StringVar(&f.method, "method", methodDirect, "Simulation method: direct or tau")
	cmd.Flags().StringVar(&f.format, "format", formatCSV, "Output format: csv or json")
	cmd.Flags().Float64Var(&f.maxT, "max-t", a.cfg.MaxT, "Time budget")
	cmd.Flags().IntVar(&f.maxIter, "max-iter", a.cfg.MaxIter, "Maximum recorded points, initial state included")
	cmd.Flags().Uint64Var(&f.seed, "seed", a.cfg.Seed, "Random seed")
	cmd.Flags().Float64Var(&f.volume, "volume", 1, "Reactor volume")
	cmd.Flags().BoolVar(&f.chem, "chem", false, "Rates are molar; divide by Avogadro's number")
	cmd.Flags().IntVar(&f.nc, "nc", ssa.DefaultNC, "Critical-reaction threshold (tau only)")
	cmd.Flags().Float64Var(&f.eps, "eps", ssa.DefaultEps, "Leap error tolerance (tau only)")
	cmd.Flags().BoolVar(&f.criticalTau, "critical-tau", false, "Draw the exact-step time from critical reactions only (tau only)")

	return cmd
}

func (a *app) run(cmd *cobra.Command, path string, f runFlags) error {
	if f.format != formatCSV && f.format != formatJSON {
		return fmt.Errorf("unknown format %q: want %s or %s", f.format, formatCSV, formatJSON)
	}
	m, err := network.LoadModel(path)
	if err != nil {
		return err
	}

	log := a.log.With(
		slog.String("run_id", uuid.NewString()),
		slog.String("model", m.Name),
		slog.String("method", f.method),
	)
	opts := ssa.Options{
		MaxT:     f.maxT,
		MaxIter:  f.maxIter,
		Volume:   f.volume,
		Seed:     f.seed,
		ChemFlag: f.chem,
		Logger:   log,
	}

	var res *ssa.Result
	switch f.method {
	case methodDirect:
		res, err = ssa.Direct(cmd.Context(), m.Network, m.Initial, opts)
	case methodTau:
		res, err = ssa.TauAdaptive(cmd.Context(), m.Network, m.Initial, ssa.TauOptions{
			Options:             opts,
			NC:                  f.nc,
			Eps:                 f.eps,
			CriticalWaitingTime: f.criticalTau,
		})
	default:
		return fmt.Errorf("unknown method %q: want %s or %s", f.method, methodDirect, methodTau)
	}
	if res == nil {
		return err
	}

	tEnd, _ := res.Final()
	level := slog.LevelInfo
	if !res.Status.Succeeded() {
		level = slog.LevelWarn
	}
	log.Log(cmd.Context(), level, "run finished",
		slog.String("status", res.Status.String()),
		slog.Int("points", res.Len()),
		slog.Float64("t", tEnd),
	)

	if werr := writeResult(cmd.OutOrStdout(), f.format, m.Network.SpeciesNames(), res); werr != nil {
		return werr
	}

	return err
}
