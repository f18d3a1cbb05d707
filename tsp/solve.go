// Package tsp - restart driver.
//
// Solve repeats Construct → Refine → Compare cycles:
//
//	while (no deadline or now < deadline) and noImprove < MaxNoImprove:
//	  cand := NearestNeighbor(dist, rng)
//	  TwoOpt(cand, dist, deadline)
//	  if best == nil or Evaluate(cand) < bestCost: best = clone(cand), noImprove = 0
//	  else: noImprove++
//
// The first cycle always runs and its candidate is always adopted, so for
// n ≥ 1 a tour is returned even when the budget is already spent on entry or
// every cost overflows to +Inf. Both guards apply from the second cycle on.
//
// The refine step shares the overall deadline: a single cycle never extends
// past it by more than one edge-pair evaluation plus one segment reversal.
package tsp

import (
	"context"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracerName identifies spans emitted by this package.
const tracerName = "github.com/katalvlaran/lvtour/tsp"

// Solve searches for a low-cost tour of dist within the configured budget.
//
// The deadline is start+TimeLimit, moved earlier if ctx carries an earlier
// deadline. ctx is otherwise only used to parent the tracing span.
//
// n ≤ 1 has exactly one tour; it is returned at once with cost 0, zero cycles
// and Termination == Stagnated, without entering the 2-opt index ranges.
//
// Errors: ErrInvalidOptions; errors from Evaluate/TwoOpt are propagated.
func Solve(ctx context.Context, dist Distance, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}

	n := dist.Size()
	tracer := opts.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}
	ctx, span := tracer.Start(ctx, "tsp.Solve",
		trace.WithAttributes(
			attribute.Int("tsp.nodes", n),
			attribute.Int64("tsp.time_limit_ms", opts.TimeLimit.Milliseconds()),
			attribute.Int("tsp.max_no_improve", opts.MaxNoImprove),
		),
	)
	defer span.End()

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	clock := clockOrDefault(opts.Clock)

	rng := opts.RNG
	var seed int64
	if rng == nil {
		seed = effectiveSeed(opts.Seed)
		rng = rand.New(rand.NewSource(seed))
	}

	start := clock.Now()
	var deadline time.Time
	if opts.TimeLimit > 0 {
		deadline = start.Add(opts.TimeLimit)
	}
	if d, ok := ctx.Deadline(); ok && (deadline.IsZero() || d.Before(deadline)) {
		deadline = d
	}

	res := Result{Seed: seed}

	if n <= 1 {
		res.Tour = NearestNeighbor(dist, rng)
		res.Termination = Stagnated
		res.Elapsed = clock.Now().Sub(start)
		finishSolve(ctx, span, logger, opts.Metrics, res)
		return res, nil
	}

	var (
		best      Tour
		bestCost  = math.Inf(1)
		noImprove int
		now       time.Time
		cand      Tour
		rs        RefineStats
		cost      float64
		improved  bool
		err       error
	)
	ro := RefineOptions{Deadline: deadline, Eps: opts.Eps, Clock: clock}

	for {
		now = clock.Now()
		if res.Cycles > 0 {
			if !deadline.IsZero() && !now.Before(deadline) {
				res.Termination = TimeExpired
				break
			}
			if noImprove >= opts.MaxNoImprove {
				res.Termination = Stagnated
				break
			}
		}
		cycleStart := now

		cand = NearestNeighbor(dist, rng)
		cand, rs, err = TwoOpt(cand, dist, ro)
		if err != nil {
			return failSolve(span, err)
		}
		cost, err = Evaluate(cand, dist)
		if err != nil {
			return failSolve(span, err)
		}

		res.Cycles++
		res.Evaluations += rs.Evaluations
		improved = best == nil || cost < bestCost
		if improved {
			best = cand.Clone()
			bestCost = cost
			noImprove = 0
			res.Improvements++
			logger.Debug("tsp improved",
				slog.Int("cycle", res.Cycles),
				slog.Float64("cost", cost),
				slog.Bool("partial", rs.Expired),
			)
		} else {
			noImprove++
		}

		now = clock.Now()
		opts.Metrics.observeCycle(now.Sub(cycleStart), rs, improved)
		if opts.OnCycle != nil {
			opts.OnCycle(CycleReport{
				Cycle:       res.Cycles,
				Cost:        cost,
				BestCost:    bestCost,
				Improved:    improved,
				NoImprove:   noImprove,
				Evaluations: res.Evaluations,
				Elapsed:     now.Sub(start),
			})
		}
	}

	res.Tour = best
	res.Cost = bestCost
	res.Elapsed = clock.Now().Sub(start)
	finishSolve(ctx, span, logger, opts.Metrics, res)

	return res, nil
}

// finishSolve records the outcome on the span, the logger and the metrics.
func finishSolve(ctx context.Context, span trace.Span, logger *slog.Logger, m *Metrics, res Result) {
	span.SetAttributes(
		attribute.Float64("tsp.best_cost", res.Cost),
		attribute.Int("tsp.cycles", res.Cycles),
		attribute.Int64("tsp.evaluations", res.Evaluations),
		attribute.String("tsp.termination", res.Termination.String()),
	)
	span.SetStatus(codes.Ok, "tour found")
	m.observeSolve(res)
	logger.LogAttrs(ctx, slog.LevelInfo, "tsp solve finished",
		slog.Int("nodes", len(res.Tour)),
		slog.Float64("cost", res.Cost),
		slog.Int("cycles", res.Cycles),
		slog.Int("improvements", res.Improvements),
		slog.Int64("evaluations", res.Evaluations),
		slog.String("termination", res.Termination.String()),
		slog.Duration("elapsed", res.Elapsed),
	)
}

// failSolve marks the span as failed and returns err unchanged.
func failSolve(span trace.Span, err error) (Result, error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, "solve failed")

	return Result{}, err
}
