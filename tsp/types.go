package tsp

import (
	"errors"
	"time"
)

var (
	// ErrDimensionMismatch is returned when a tour length disagrees with the
	// distance model size, or when a tour is not a permutation of 0..n-1.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrInvalidOptions is returned by Solve when Options are out of range.
	ErrInvalidOptions = errors.New("tsp: invalid options")
)

// Distance is the read-only cost model consumed by every solver component.
// matrix.Dense satisfies it.
type Distance interface {
	// Size returns the number of nodes n.
	Size() int

	// Cost returns the cost of edge {i,j}; 0 ≤ i,j < n.
	Cost(i, j int) float64
}

// Tour is an ordered permutation of node indices forming a Hamiltonian cycle.
// Position (k+1) mod n follows position k.
type Tour []int

// Termination tells why Solve stopped.
type Termination int

const (
	// Running is the zero value; Solve never returns it.
	Running Termination = iota

	// TimeExpired means the wall-clock budget was spent.
	TimeExpired

	// Stagnated means MaxNoImprove consecutive cycles did not improve the best cost.
	Stagnated
)

// String implements fmt.Stringer.
func (t Termination) String() string {
	switch t {
	case Running:
		return "running"
	case TimeExpired:
		return "time_expired"
	case Stagnated:
		return "stagnated"
	default:
		return "unknown"
	}
}

// Result holds the outcome of Solve.
type Result struct {
	// Tour is the best tour found (a permutation of 0..n-1).
	Tour Tour

	// Cost is the cyclic cost of Tour.
	Cost float64

	// Evaluations counts 2-opt edge-pair evaluations across all cycles (diagnostic).
	Evaluations int64

	// Cycles counts completed Construct+Refine+Compare rounds.
	Cycles int

	// Improvements counts cycles that replaced the best tour.
	Improvements int

	// Termination is the guard that stopped the search.
	Termination Termination

	// Elapsed is the wall-clock time spent inside Solve.
	Elapsed time.Duration

	// Seed is the effective seed of the RNG stream (0 when Options.RNG was supplied).
	Seed int64
}

// CycleReport is passed to Options.OnCycle after every completed cycle.
type CycleReport struct {
	Cycle       int           // 1-based cycle number
	Cost        float64       // cost of this cycle's refined candidate
	BestCost    float64       // best cost after the comparison
	Improved    bool          // whether the candidate replaced the best tour
	NoImprove   int           // consecutive non-improving cycles so far
	Evaluations int64         // cumulative 2-opt evaluations
	Elapsed     time.Duration // time since Solve started
}
