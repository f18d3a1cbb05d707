package tsp

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the prometheus collectors updated by Solve.
// All methods are nil-safe so Options.Metrics may be left unset.
type Metrics struct {
	solves       *prometheus.CounterVec
	cycles       prometheus.Counter
	improvements prometheus.Counter
	evaluations  prometheus.Counter
	moves        prometheus.Counter
	bestCost     prometheus.Gauge
	cycleSeconds prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// Passing prometheus.DefaultRegisterer exposes them on the global registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		solves: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lvtour_solves_total",
			Help: "Completed Solve calls by termination reason",
		}, []string{"termination"}),
		cycles: f.NewCounter(prometheus.CounterOpts{
			Name: "lvtour_cycles_total",
			Help: "Construct+refine cycles completed",
		}),
		improvements: f.NewCounter(prometheus.CounterOpts{
			Name: "lvtour_improvements_total",
			Help: "Cycles that replaced the best tour",
		}),
		evaluations: f.NewCounter(prometheus.CounterOpts{
			Name: "lvtour_two_opt_evaluations_total",
			Help: "2-opt edge-pair evaluations",
		}),
		moves: f.NewCounter(prometheus.CounterOpts{
			Name: "lvtour_two_opt_moves_total",
			Help: "Accepted 2-opt exchanges",
		}),
		bestCost: f.NewGauge(prometheus.GaugeOpts{
			Name: "lvtour_best_cost",
			Help: "Best tour cost of the most recent solve",
		}),
		cycleSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "lvtour_cycle_duration_seconds",
			Help:    "Duration of one construct+refine cycle",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}
}

func (m *Metrics) observeCycle(d time.Duration, rs RefineStats, improved bool) {
	if m == nil {
		return
	}
	m.cycles.Inc()
	m.evaluations.Add(float64(rs.Evaluations))
	m.moves.Add(float64(rs.Moves))
	m.cycleSeconds.Observe(d.Seconds())
	if improved {
		m.improvements.Inc()
	}
}

func (m *Metrics) observeSolve(res Result) {
	if m == nil {
		return
	}
	m.solves.WithLabelValues(res.Termination.String()).Inc()
	m.bestCost.Set(res.Cost)
}
