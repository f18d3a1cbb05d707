package main

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtour/builder"
	"github.com/katalvlaran/lvtour/graphio"
)

func newGenCmd(a *app) *cobra.Command {
	var (
		kind   string
		n      int
		seed   int64
		side   float64
		digits int
		out    string
		weight string
		params []float64
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a complete graph file",
		Long: `Generate a deterministic instance in the edge-list format.

Kinds:
  euclidean  points uniform in a square, planar distances
  random     independent pair weights, uniform in [1, 100) unless --weight says otherwise

Weight distributions (random kind only, parameters via --weight-param):
  uniform   min,max      (default 1,100)
  normal    mean,stddev  (default 50,15; clipped at 0)
  exp       rate         (default 0.02)
  constant  value        (default 1)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k, err := builder.ParseKind(kind)
			if err != nil {
				return err
			}
			opts := []builder.BuilderOption{builder.WithSeed(seed)}
			if cmd.Flags().Changed("weight") || cmd.Flags().Changed("weight-param") {
				if k != builder.KindRandom {
					return fmt.Errorf("--weight applies to --kind %s only", builder.KindRandom)
				}
				fn, err := builder.NewWeightFn(builder.WeightDist(weight), params...)
				if err != nil {
					return err
				}
				opts = append(opts, builder.WithWeightFn(fn))
			}
			if cmd.Flags().Changed("side") {
				if !(side > 0) || math.IsInf(side, 1) {
					return fmt.Errorf("--side must be finite and > 0, got %g", side)
				}
				opts = append(opts, builder.WithSide(side))
			}
			if digits >= 0 {
				if digits > builder.MaxRoundDigits {
					return fmt.Errorf("--digits must be ≤ %d, got %d", builder.MaxRoundDigits, digits)
				}
				opts = append(opts, builder.WithRoundDigits(digits))
			}

			dist, err := builder.Build(k, n, opts...)
			if err != nil {
				return err
			}
			if err = graphio.WriteGraph(out, dist, "node1 node2 distance"); err != nil {
				return err
			}
			a.logger.Info("graph generated",
				slog.String("kind", string(k)),
				slog.Int("n", n),
				slog.Int64("seed", seed),
				slog.String("out", out),
			)
			fmt.Fprintln(a.stdout, out)

			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&kind, "kind", string(builder.KindEuclidean), "instance kind: euclidean or random")
	fl.IntVar(&n, "n", 1000, "number of nodes")
	fl.Int64Var(&seed, "seed", 1, "generator seed")
	fl.Float64Var(&side, "side", builder.DefaultSide, "side of the euclidean sampling square")
	fl.IntVar(&digits, "digits", builder.DefaultRoundDigits, "round distances to this many decimals (-1 = exact)")
	fl.StringVar(&weight, "weight", string(builder.WeightUniform), "pair weight distribution for --kind random: uniform, normal, exp, constant")
	fl.Float64SliceVar(&params, "weight-param", nil, "distribution parameters, comma separated")
	fl.StringVarP(&out, "out", "o", "", "output file")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
