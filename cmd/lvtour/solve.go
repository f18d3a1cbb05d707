package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtour/internal/runner"
	"github.com/katalvlaran/lvtour/tsp"
)

type solveFlags struct {
	out             string
	outDir          string
	timeLimit       time.Duration
	maxNoImprove    int
	seed            int64
	eps             float64
	requireComplete bool
	progress        bool
	metricsFile     string
}

func newSolveCmd(a *app) *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve GRAPH...",
		Short: "Solve one or more graph files",
		Long: `Solve each graph in turn and write its best tour as comma-separated,
1-based node labels with the start repeated at the end.

A graph that fails to load or solve is reported and skipped; the command
exits non-zero if any graph failed.

Examples:
  lvtour solve TSP_1000_euclidianDistance.txt
  lvtour solve --time-limit 10s --seed 7 --out-dir out a.txt b.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.solve(cmd, f, args)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.out, "out", "o", "", "solution file (single graph only)")
	fl.StringVar(&f.outDir, "out-dir", ".", "directory for solution_<graph>.txt files")
	fl.DurationVar(&f.timeLimit, "time-limit", tsp.DefaultTimeLimit, "wall-clock budget per graph (0 = none)")
	fl.IntVar(&f.maxNoImprove, "max-no-improve", tsp.DefaultMaxNoImprove, "stop after this many non-improving cycles")
	fl.Int64Var(&f.seed, "seed", 0, "run seed (0 = derived from the clock)")
	fl.Float64Var(&f.eps, "eps", tsp.DefaultEps, "minimum 2-opt gain")
	fl.BoolVar(&f.requireComplete, "require-complete", false, "reject graphs with unlisted pairs")
	fl.BoolVar(&f.progress, "progress", false, "show a progress bar per graph")
	fl.StringVar(&f.metricsFile, "metrics-file", "", "write prometheus metrics to this file")

	return cmd
}

// applySolveFlags overlays explicitly set flags on the loaded configuration.
func (a *app) applySolveFlags(cmd *cobra.Command, f solveFlags) error {
	fl := cmd.Flags()
	if fl.Changed("out-dir") {
		a.cfg.Output.Dir = f.outDir
	}
	if fl.Changed("time-limit") {
		a.cfg.Solve.TimeLimit = f.timeLimit
	}
	if fl.Changed("max-no-improve") {
		a.cfg.Solve.MaxNoImprove = f.maxNoImprove
	}
	if fl.Changed("seed") {
		a.cfg.Solve.Seed = f.seed
	}
	if fl.Changed("eps") {
		a.cfg.Solve.Eps = f.eps
	}
	if fl.Changed("require-complete") {
		a.cfg.Input.RequireComplete = f.requireComplete
	}
	if fl.Changed("progress") {
		a.cfg.Progress = f.progress
	}
	if fl.Changed("metrics-file") {
		a.cfg.Metrics.File = f.metricsFile
	}

	return a.cfg.Validate()
}

func (a *app) solve(cmd *cobra.Command, f solveFlags, graphs []string) error {
	if f.out != "" && len(graphs) > 1 {
		return errors.New("--out accepts a single graph; use --out-dir for several")
	}
	if err := a.applySolveFlags(cmd, f); err != nil {
		return err
	}

	jobs := make([]runner.Job, len(graphs))
	for k, g := range graphs {
		jobs[k] = runner.Job{Graph: g, Out: runner.OutputPath(a.cfg.Output.Dir, g)}
	}
	if f.out != "" {
		jobs[0].Out = f.out
	}

	opts := tsp.DefaultOptions()
	opts.TimeLimit = a.cfg.Solve.TimeLimit
	opts.MaxNoImprove = a.cfg.Solve.MaxNoImprove
	opts.Eps = a.cfg.Solve.Eps

	rc := runner.Config{
		Solve:           opts,
		Seed:            a.cfg.Solve.Seed,
		RequireComplete: a.cfg.Input.RequireComplete,
		MetricsFile:     a.cfg.Metrics.File,
		Logger:          a.logger,
	}
	if a.cfg.Progress {
		rc.Progress = a.progress
	}

	rep, err := runner.New(rc).Run(cmd.Context(), jobs)
	printReport(a.stdout, rep)
	if err != nil {
		return err
	}
	if failed := rep.Failed(); failed > 0 {
		return fmt.Errorf("%d of %d graphs failed", failed, len(rep.Jobs))
	}

	return nil
}

// printReport writes the per-graph diagnostics.
func printReport(w io.Writer, rep runner.Report) {
	fmt.Fprintf(w, "run: %s seed: %d\n", rep.RunID, rep.Seed)
	for _, j := range rep.Jobs {
		fmt.Fprintf(w, "\ngraph: %s\n", j.Graph)
		if j.Err != nil {
			fmt.Fprintf(w, "error: %v\n", j.Err)
			continue
		}
		r := j.Result
		fmt.Fprintf(w, "best cost: %.2f\n", r.Cost)
		fmt.Fprintf(w, "cycles: %d\n", r.Cycles)
		fmt.Fprintf(w, "evaluations: %.1e\n", float64(r.Evaluations))
		fmt.Fprintf(w, "termination: %s after %s\n", r.Termination, r.Elapsed.Round(time.Millisecond))
		fmt.Fprintf(w, "best tour: %s\n", r.Tour)
		fmt.Fprintf(w, "solution: %s\n", j.Out)
	}
}
