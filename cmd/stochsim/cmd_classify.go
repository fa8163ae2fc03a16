// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stochkin/kinetics"
	"github.com/katalvlaran/stochkin/network"
)

func (a *app) newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify MODEL.yaml",
		Short: "Print the highest order of reaction of every species",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := network.LoadModel(args[0])
			if err != nil {
				return err
			}
			hor, err := kinetics.Classify(m.Network.React())
			if err != nil {
				return err
			}
			a.log.Debug("classified", slog.String("model", m.Name), slog.Int("species", len(hor)))

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "SPECIES\tKIND\tORDER\tCODE")
			for i, name := range m.Network.SpeciesNames() {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n", name, hor[i].Kind, hor[i].Order, hor[i].Code())
			}
			return tw.Flush()
		},
	}
}
