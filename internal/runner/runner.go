// Package runner solves a batch of graph files one after another.
//
// Each graph is an isolated job: a load, solve or write failure is recorded in
// its JobResult and the batch moves on. All jobs share one prometheus registry
// and one run ID; every job gets its own RNG stream derived from the run seed.
package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvtour/graphio"
	"github.com/katalvlaran/lvtour/internal/logging"
	"github.com/katalvlaran/lvtour/tsp"
)

const tracerName = "github.com/katalvlaran/lvtour/internal/runner"

// Job is one graph to solve and where to write its tour.
type Job struct {
	Graph string
	Out   string
}

// JobResult is the outcome of one Job. Err is nil on success.
type JobResult struct {
	Job
	Nodes  int
	Stats  graphio.Stats
	Result tsp.Result
	Err    error
}

// Report summarises a Run.
type Report struct {
	RunID   string
	Seed    int64
	Jobs    []JobResult
	Elapsed time.Duration
}

// Failed counts jobs that ended with an error.
func (r Report) Failed() int {
	n := 0
	for _, j := range r.Jobs {
		if j.Err != nil {
			n++
		}
	}

	return n
}

// Config drives a Runner.
type Config struct {
	// Solve is the base option set; Seed, Logger, Metrics, Tracer and OnCycle
	// are filled in per job.
	Solve tsp.Options

	// Seed is the run seed; 0 derives one from the wall clock.
	Seed int64

	RequireComplete bool

	// Progress receives a progress bar per job when non-nil.
	Progress io.Writer

	// MetricsFile, when set, receives the prometheus textfile export after the batch.
	MetricsFile string

	Logger *slog.Logger
	Tracer trace.Tracer
}

// Runner executes batches. It is not safe for concurrent use.
type Runner struct {
	cfg      Config
	logger   *slog.Logger
	tracer   trace.Tracer
	registry *prometheus.Registry
	metrics  *tsp.Metrics
}

// New prepares a Runner and registers its collectors on a private registry.
func New(cfg Config) *Runner {
	r := &Runner{
		cfg:      cfg,
		logger:   cfg.Logger,
		tracer:   cfg.Tracer,
		registry: prometheus.NewRegistry(),
	}
	if r.logger == nil {
		r.logger = logging.Discard()
	}
	if r.tracer == nil {
		r.tracer = otel.Tracer(tracerName)
	}
	r.metrics = tsp.NewMetrics(r.registry)

	return r
}

// Registry exposes the collectors updated by Run.
func (r *Runner) Registry() *prometheus.Registry { return r.registry }

// Run solves jobs in order. The returned error concerns the metrics export
// only; per-job failures are reported in Report.Jobs.
func (r *Runner) Run(ctx context.Context, jobs []Job) (Report, error) {
	start := time.Now()
	rep := Report{
		RunID: uuid.NewString(),
		Seed:  r.cfg.Seed,
		Jobs:  make([]JobResult, 0, len(jobs)),
	}
	if rep.Seed == 0 {
		rep.Seed = time.Now().UnixNano()
	}
	logger := r.logger.With(slog.String("run_id", rep.RunID))
	logger.Info("batch started", slog.Int("graphs", len(jobs)), slog.Int64("seed", rep.Seed))

	for k, job := range jobs {
		jr := r.runJob(ctx, logger, job, tsp.DeriveSeed(rep.Seed, uint64(k)))
		rep.Jobs = append(rep.Jobs, jr)
	}
	rep.Elapsed = time.Since(start)

	logger.Info("batch finished",
		slog.Int("graphs", len(jobs)),
		slog.Int("failed", rep.Failed()),
		slog.Duration("elapsed", rep.Elapsed),
	)

	if r.cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(r.cfg.MetricsFile, r.registry); err != nil {
			return rep, fmt.Errorf("runner: export metrics: %w", err)
		}
	}

	return rep, nil
}

func (r *Runner) runJob(ctx context.Context, logger *slog.Logger, job Job, seed int64) JobResult {
	jr := JobResult{Job: job}
	logger = logger.With(slog.String("graph", job.Graph))

	ctx, span := r.tracer.Start(ctx, "runner.Job",
		trace.WithAttributes(attribute.String("runner.graph", job.Graph)),
	)
	defer span.End()

	fail := func(stage string, err error) JobResult {
		jr.Err = err
		span.RecordError(err)
		span.SetStatus(codes.Error, stage+" failed")
		logger.Error("graph failed", slog.String("stage", stage), slog.Any("error", err))

		return jr
	}

	readOpts := []graphio.ReadOption{graphio.WithStats(&jr.Stats), graphio.WithLogger(logger)}
	if r.cfg.RequireComplete {
		readOpts = append(readOpts, graphio.WithRequireComplete())
	}
	n, dist, err := graphio.LoadDistanceMatrix(job.Graph, readOpts...)
	if err != nil {
		return fail("load", err)
	}
	jr.Nodes = n
	span.SetAttributes(attribute.Int("runner.nodes", n))

	opts := r.cfg.Solve
	opts.Seed = seed
	opts.RNG = nil
	opts.Logger = logger
	opts.Metrics = r.metrics
	opts.Tracer = r.tracer

	var bar *progress
	if r.cfg.Progress != nil {
		bar = newProgress(r.cfg.Progress, filepath.Base(job.Graph), opts.TimeLimit)
		opts.OnCycle = bar.update
	}
	res, err := tsp.Solve(ctx, dist, opts)
	bar.finish()
	if err != nil {
		return fail("solve", err)
	}
	jr.Result = res

	if job.Out != "" {
		if err = graphio.WriteTour(res.Tour, job.Out); err != nil {
			return fail("write", err)
		}
	}
	span.SetStatus(codes.Ok, "solved")
	logger.Info("graph solved",
		slog.Int("n", n),
		slog.Float64("cost", res.Cost),
		slog.String("termination", res.Termination.String()),
		slog.Int64("seed", seed),
		slog.String("out", job.Out),
	)

	return jr
}

// OutputPath names the solution file for graph inside dir:
// "graphs/TSP_1000_random.txt" becomes "<dir>/solution_TSP_1000_random.txt".
func OutputPath(dir, graph string) string {
	base := filepath.Base(graph)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	return filepath.Join(dir, "solution_"+base+".txt")
}
