package tsp_test

import (
	"bytes"
	"context"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/katalvlaran/lvtour/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// frozenOptions returns options whose clock never advances, so only the
// stagnation guard can stop the search.
func frozenOptions(seed int64, maxNoImprove int) tsp.Options {
	opts := tsp.DefaultOptions()
	opts.Seed = seed
	opts.MaxNoImprove = maxNoImprove
	opts.Clock = newStepClock(0)

	return opts
}

func TestSolve_SquareConvergesToPerimeter(t *testing.T) {
	sq := unitSquare(t)
	for seed := int64(1); seed <= 10; seed++ {
		res, err := tsp.Solve(context.Background(), sq, frozenOptions(seed, 20))
		require.NoError(t, err)

		requirePermutation(t, res.Tour, 4)
		assert.Equal(t, squarePerimeter, res.Cost, "seed %d", seed)
		assert.True(t, tsp.EqualCycles(res.Tour, tsp.Tour{0, 1, 2, 3}), "seed %d: %v", seed, res.Tour)
		assert.Equal(t, tsp.Stagnated, res.Termination)
		assert.Equal(t, seed, res.Seed)
	}
}

func TestSolve_DefaultOptions(t *testing.T) {
	opts := tsp.DefaultOptions()
	assert.Equal(t, 60*time.Second, opts.TimeLimit)
	assert.Equal(t, 1000, opts.MaxNoImprove)
	assert.Zero(t, opts.Eps)
}

func TestSolve_StagnationCountsCycles(t *testing.T) {
	m := randomEuclid(t, 30, seedDet)
	const limit = 25

	var reports []tsp.CycleReport
	opts := frozenOptions(seedDet, limit)
	opts.OnCycle = func(r tsp.CycleReport) { reports = append(reports, r) }

	res, err := tsp.Solve(context.Background(), m, opts)
	require.NoError(t, err)

	require.Equal(t, tsp.Stagnated, res.Termination)
	require.Len(t, reports, res.Cycles)
	last := reports[len(reports)-1]
	assert.Equal(t, limit, last.NoImprove)
	assert.Equal(t, res.Evaluations, last.Evaluations)
	assert.Equal(t, res.Cost, last.BestCost)
	assert.GreaterOrEqual(t, res.Cycles, limit+1)
	assert.GreaterOrEqual(t, res.Improvements, 1)
}

func TestSolve_BestCostMonotonic(t *testing.T) {
	m := randomEuclid(t, 40, seedDet)

	var best []float64
	opts := frozenOptions(7, 30)
	opts.OnCycle = func(r tsp.CycleReport) {
		best = append(best, r.BestCost)
		if r.Improved {
			assert.Equal(t, r.Cost, r.BestCost)
			assert.Zero(t, r.NoImprove)
		} else {
			assert.GreaterOrEqual(t, r.Cost, r.BestCost)
		}
	}

	res, err := tsp.Solve(context.Background(), m, opts)
	require.NoError(t, err)
	requirePermutation(t, res.Tour, 40)

	for i := 1; i < len(best); i++ {
		require.LessOrEqual(t, best[i], best[i-1], "best cost rose at cycle %d", i+1)
	}
	assert.Equal(t, mustEvaluate(t, res.Tour, m), res.Cost)
}

func TestSolve_DeterministicUnderSeed(t *testing.T) {
	m := randomEuclid(t, 35, seedDet)

	a, err := tsp.Solve(context.Background(), m, frozenOptions(123, 15))
	require.NoError(t, err)
	b, err := tsp.Solve(context.Background(), m, frozenOptions(123, 15))
	require.NoError(t, err)

	assert.Equal(t, a.Tour, b.Tour)
	assert.Equal(t, a.Cost, b.Cost)
	assert.Equal(t, a.Cycles, b.Cycles)
	assert.Equal(t, a.Evaluations, b.Evaluations)
}

func TestSolve_InjectedRNG(t *testing.T) {
	m := randomEuclid(t, 20, seedDet)
	opts := frozenOptions(0, 5)
	opts.RNG = rand.New(rand.NewSource(5))

	res, err := tsp.Solve(context.Background(), m, opts)
	require.NoError(t, err)
	requirePermutation(t, res.Tour, 20)
	assert.Zero(t, res.Seed, "seed is not reported for caller-supplied streams")
}

func TestSolve_TrivialSizes(t *testing.T) {
	res, err := tsp.Solve(context.Background(), zeros(t, 0), tsp.DefaultOptions())
	require.NoError(t, err)
	require.NotNil(t, res.Tour)
	assert.Empty(t, res.Tour)
	assert.Zero(t, res.Cost)
	assert.Zero(t, res.Evaluations)

	res, err = tsp.Solve(context.Background(), zeros(t, 1), tsp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, tsp.Tour{0}, res.Tour)
	assert.Zero(t, res.Cost)
	assert.Zero(t, res.Evaluations)
}

func TestSolve_TwoAndThreeNodes(t *testing.T) {
	for _, n := range []int{2, 3} {
		m := randomEuclid(t, n, seedDet)
		res, err := tsp.Solve(context.Background(), m, frozenOptions(seedDet, 3))
		require.NoError(t, err)
		requirePermutation(t, res.Tour, n)
		assert.Zero(t, res.Evaluations)
		assert.Equal(t, mustEvaluate(t, res.Tour, m), res.Cost)
	}
}

func TestSolve_InvalidOptions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*tsp.Options)
	}{
		{"negative time limit", func(o *tsp.Options) { o.TimeLimit = -time.Second }},
		{"zero stagnation limit", func(o *tsp.Options) { o.MaxNoImprove = 0 }},
		{"negative eps", func(o *tsp.Options) { o.Eps = -1 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := tsp.DefaultOptions()
			tc.mutate(&opts)
			_, err := tsp.Solve(context.Background(), unitSquare(t), opts)
			require.ErrorIs(t, err, tsp.ErrInvalidOptions)
		})
	}
}

func TestSolve_DeadlineRespectedOnLargeGraph(t *testing.T) {
	if testing.Short() {
		t.Skip("builds a 500-node instance")
	}
	m := randomEuclid(t, 500, seedDet)

	opts := tsp.DefaultOptions()
	opts.TimeLimit = time.Millisecond

	begin := time.Now()
	res, err := tsp.Solve(context.Background(), m, opts)
	took := time.Since(begin)
	require.NoError(t, err)

	assert.Equal(t, tsp.TimeExpired, res.Termination)
	requirePermutation(t, res.Tour, 500)
	assert.Equal(t, mustEvaluate(t, res.Tour, m), res.Cost)
	// One O(n²) construction plus one evaluation/reversal past the deadline.
	assert.Less(t, took, 2*time.Second)
}

func TestSolve_BudgetSpentBeforeFirstCycle(t *testing.T) {
	m := randomEuclid(t, 50, seedDet)

	opts := tsp.DefaultOptions()
	opts.TimeLimit = time.Nanosecond
	opts.Clock = newStepClock(time.Millisecond) // every poll is already past the deadline

	res, err := tsp.Solve(context.Background(), m, opts)
	require.NoError(t, err)

	assert.Equal(t, tsp.TimeExpired, res.Termination)
	assert.Equal(t, 1, res.Cycles)
	assert.Zero(t, res.Evaluations)
	requirePermutation(t, res.Tour, 50)
}

func TestSolve_ContextDeadlineShortensBudget(t *testing.T) {
	m := randomEuclid(t, 60, seedDet)

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	res, err := tsp.Solve(ctx, m, tsp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, tsp.TimeExpired, res.Termination)
	assert.Equal(t, 1, res.Cycles)
	requirePermutation(t, res.Tour, 60)
}

func TestSolve_NoTimeLimitStopsOnStagnation(t *testing.T) {
	opts := tsp.DefaultOptions()
	opts.TimeLimit = 0
	opts.MaxNoImprove = 10

	res, err := tsp.Solve(context.Background(), randomEuclid(t, 25, seedDet), opts)
	require.NoError(t, err)
	assert.Equal(t, tsp.Stagnated, res.Termination)
}

func TestSolve_HugeWeightsStopOnStagnation(t *testing.T) {
	for _, w := range []float64{1e300, 1e308} {
		m := uniform(t, 4, w)

		res, err := tsp.Solve(context.Background(), m, frozenOptions(seedDet, 5))
		require.NoError(t, err, "w=%g", w)

		assert.Equal(t, tsp.Stagnated, res.Termination, "w=%g", w)
		assert.Equal(t, 6, res.Cycles, "w=%g", w)
		assert.Equal(t, 1, res.Improvements, "w=%g", w)
		requirePermutation(t, res.Tour, 4)
		assert.Equal(t, mustEvaluate(t, res.Tour, m), res.Cost)
	}
}

func TestSolve_HugeWeightsRespectDeadline(t *testing.T) {
	opts := tsp.DefaultOptions()
	opts.TimeLimit = time.Nanosecond
	opts.Clock = newStepClock(time.Millisecond)

	res, err := tsp.Solve(context.Background(), uniform(t, 4, 1e308), opts)
	require.NoError(t, err)

	assert.Equal(t, tsp.TimeExpired, res.Termination)
	assert.Equal(t, 1, res.Cycles)
	requirePermutation(t, res.Tour, 4)
}

func TestSolve_EmitsSpan(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	opts := frozenOptions(seedDet, 5)
	opts.Tracer = tp.Tracer("test")

	res, err := tsp.Solve(context.Background(), unitSquare(t), opts)
	require.NoError(t, err)

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "tsp.Solve", spans[0].Name())

	attrs := map[string]string{}
	for _, kv := range spans[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, "4", attrs["tsp.nodes"])
	assert.Equal(t, "stagnated", attrs["tsp.termination"])
	assert.Equal(t, res.Termination.String(), attrs["tsp.termination"])
}

func TestSolve_LogsSummary(t *testing.T) {
	var buf bytes.Buffer
	opts := frozenOptions(seedDet, 5)
	opts.Logger = slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := tsp.Solve(context.Background(), unitSquare(t), opts)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"tsp improved"`)
	assert.Contains(t, out, `"msg":"tsp solve finished"`)
	assert.Contains(t, out, `"termination":"stagnated"`)
}
