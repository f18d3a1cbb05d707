package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtour/graphio"
	"github.com/katalvlaran/lvtour/tsp"
)

func newEvalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval GRAPH TOUR",
		Short: "Check a solution file and print its cost",
		Long: `Load a graph and a tour written by "lvtour solve", verify that the tour
visits every node exactly once and print its closed-cycle cost.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []graphio.ReadOption
			if a.cfg.Input.RequireComplete {
				opts = append(opts, graphio.WithRequireComplete())
			}
			opts = append(opts, graphio.WithLogger(a.logger))

			n, dist, err := graphio.LoadDistanceMatrix(args[0], opts...)
			if err != nil {
				return err
			}
			tour, err := graphio.ReadTour(args[1])
			if err != nil {
				return err
			}
			if err = tsp.ValidatePermutation(tour, n); err != nil {
				return fmt.Errorf("tour %s: %w", args[1], err)
			}
			cost, err := tsp.Evaluate(tour, dist)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.stdout, "nodes: %d\ncost: %.2f\n", n, cost)

			return nil
		},
	}
}
