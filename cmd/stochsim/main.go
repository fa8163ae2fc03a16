// SPDX-License-Identifier: MIT

// Command stochsim simulates chemical reaction networks described in YAML
// model files.
//
//	stochsim run model.yaml --method tau --max-t 50 --seed 7 > traj.csv
//	stochsim classify model.yaml
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

// app carries state shared by the subcommands.
type app struct {
	cfg config
	log *slog.Logger
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(cfg).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd(cfg config) *cobra.Command {
	a := &app{cfg: cfg}
	rootCmd := &cobra.Command{
		Use:   "stochsim",
		Short: "Stochastic simulation of chemical reaction networks",
		Long: `stochsim generates sample trajectories of well-mixed reaction networks
with Gillespie's direct method or adaptive tau-leaping.

Defaults for budgets, seed and logging can be set through STOCHSIM_* environment
variables; flags override them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd.ErrOrStderr(), a.cfg.LogLevel, a.cfg.LogFormat)
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&a.cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: text or json")

	rootCmd.AddCommand(
		a.newRunCmd(),
		a.newClassifyCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "stochsim version %s\n", version)
		},
	}
}
