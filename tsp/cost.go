// Package tsp: cost evaluation.
//
// Evaluate sums the cyclic edge costs of a tour. It never caches: any tour
// mutation must be followed by a fresh call.
//
// Stable summation: results are rounded to 1e-9 to avoid cross-platform FP noise,
// so two evaluations of the same tour are bit-identical and comparable with <.
package tsp

import (
	"fmt"
	"math"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// Evaluate returns Σ dist(t[k], t[(k+1) mod n]) over all positions.
// Tours with fewer than two nodes cost 0.
//
// Contract:
//   - len(t) must equal dist.Size(), otherwise ErrDimensionMismatch.
//   - every entry must lie in [0, n), otherwise ErrDimensionMismatch.
//     Repeated entries are not detected; use ValidatePermutation for that.
//
// Complexity: O(n).
func Evaluate(t Tour, dist Distance) (float64, error) {
	n := dist.Size()
	if len(t) != n {
		return 0, fmt.Errorf("evaluate: tour length %d, distance size %d: %w", len(t), n, ErrDimensionMismatch)
	}
	if n < 2 {
		return 0, nil
	}

	var (
		sum float64
		k   int
	)
	for k = 0; k < n; k++ {
		if t[k] < 0 || t[k] >= n {
			return 0, fmt.Errorf("evaluate: entry %d at position %d outside [0, %d): %w", t[k], k, n, ErrDimensionMismatch)
		}
	}
	for k = 0; k < n-1; k++ {
		sum += dist.Cost(t[k], t[k+1])
	}
	sum += dist.Cost(t[n-1], t[0]) // closing edge

	return round1e9(sum), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
// Magnitudes where x*1e9 overflows are returned unchanged; they carry no
// sub-1e-9 digits anyway.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	scaled := x * roundScale
	if math.IsInf(scaled, 0) || math.IsNaN(scaled) {
		return x
	}

	return math.Round(scaled) / roundScale
}
