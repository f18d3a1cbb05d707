package tsp

import (
	"log/slog"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// Defaults - single source of truth for DefaultOptions.
const (
	// DefaultTimeLimit is the wall-clock budget of one Solve call.
	DefaultTimeLimit = 60 * time.Second

	// DefaultMaxNoImprove is the number of consecutive non-improving cycles
	// after which Solve stops.
	DefaultMaxNoImprove = 1000

	// DefaultEps accepts any strictly improving 2-opt move.
	DefaultEps = 0.0
)

// Clock abstracts the wall clock so deadline handling can be tested
// deterministically.
type Clock interface {
	Now() time.Time
}

// systemClock reads time.Now.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the Clock used when Options.Clock is nil.
var SystemClock Clock = systemClock{}

// Options configures Solve. Start from DefaultOptions and override fields.
type Options struct {
	// TimeLimit bounds the whole search. 0 means no time limit (stagnation only).
	TimeLimit time.Duration

	// MaxNoImprove is the stagnation limit; must be ≥ 1.
	MaxNoImprove int

	// Seed feeds the RNG stream when RNG is nil. 0 selects the fixed default seed.
	Seed int64

	// RNG overrides Seed when non-nil. It is consumed by NearestNeighbor only.
	RNG *rand.Rand

	// Eps tightens the 2-opt acceptance test to Δ < −Eps; must be ≥ 0.
	Eps float64

	// Clock supplies the time; nil means SystemClock.
	Clock Clock

	// Logger receives debug/info records; nil disables logging.
	Logger *slog.Logger

	// Metrics receives search counters; nil disables them.
	Metrics *Metrics

	// Tracer opens a span around Solve; nil uses the global otel tracer provider.
	Tracer trace.Tracer

	// OnCycle, if set, is invoked after every completed cycle.
	OnCycle func(CycleReport)
}

// DefaultOptions returns the canonical configuration: 60s budget, 1000
// non-improving cycles, seed 0, strict improvement.
func DefaultOptions() Options {
	return Options{
		TimeLimit:    DefaultTimeLimit,
		MaxNoImprove: DefaultMaxNoImprove,
		Eps:          DefaultEps,
	}
}

// RefineOptions configures a single TwoOpt call.
type RefineOptions struct {
	// Deadline is an absolute instant; the zero value disables the check.
	Deadline time.Time

	// Eps tightens acceptance to Δ < −Eps.
	Eps float64

	// Clock supplies the time; nil means SystemClock.
	Clock Clock
}

// RefineStats reports what a TwoOpt call did.
type RefineStats struct {
	Evaluations int64 // edge-pair evaluations performed
	Moves       int   // accepted (improving) exchanges
	Sweeps      int   // scans started from i = 0
	Expired     bool  // returned because the deadline passed
}
