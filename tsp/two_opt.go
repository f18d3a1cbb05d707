// Package tsp - 2-opt local search engine.
//
// TwoOpt performs first-improvement 2-opt on an open tour t of length n:
//
//	for i in 0..n-2, j in i+2..n-1 (skipping i=0, j=n-1):
//	  a=t[i], b=t[i+1], c=t[j], d=t[(j+1) mod n]
//	  Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d)
//	  if Δ < −eps: reverse t[i+1..j], restart from i=0
//
// The pair (0, n-1) is skipped because its two edges share node t[0]; reversing
// t[1..n-1] would only flip the direction of the whole cycle.
//
// Deadline:
//   - An absolute instant, polled at the start of every i-scan and every j-scan.
//   - On expiry the tour is returned as is: still a valid permutation, possibly
//     partially improved. This is never an error.
//
// Complexity:
//   - One sweep: O(n²) candidate checks; each accepted move costs O(n) (reversal).
//   - Number of sweeps is bounded only by the local optimum or the deadline.
package tsp

import "fmt"

// TwoOpt improves t in place and returns it together with run statistics.
// n < 4 admits no valid exchange and returns immediately.
//
// Errors: ErrDimensionMismatch if len(t) != dist.Size().
func TwoOpt(t Tour, dist Distance, ro RefineOptions) (Tour, RefineStats, error) {
	var stats RefineStats

	n := dist.Size()
	if len(t) != n {
		return t, stats, fmt.Errorf("two-opt: tour length %d, distance size %d: %w", len(t), n, ErrDimensionMismatch)
	}
	if n < 4 {
		return t, stats, nil
	}

	clock := clockOrDefault(ro.Clock)
	useDeadline := !ro.Deadline.IsZero()
	expired := func() bool {
		return useDeadline && !clock.Now().Before(ro.Deadline)
	}

	eps := ro.Eps
	if eps < 0 {
		eps = 0
	}

	var (
		i, j       int
		a, b, c, d int
		delta      float64
		improved   bool
	)
	for {
		stats.Sweeps++
		improved = false

		for i = 0; i < n-1 && !improved; i++ {
			if expired() {
				stats.Expired = true
				return t, stats, nil
			}
			for j = i + 2; j < n; j++ {
				if expired() {
					stats.Expired = true
					return t, stats, nil
				}
				if i == 0 && j == n-1 {
					continue
				}
				stats.Evaluations++

				a, b = t[i], t[i+1]
				c, d = t[j], t[(j+1)%n]
				delta = (dist.Cost(a, c) + dist.Cost(b, d)) - (dist.Cost(a, b) + dist.Cost(c, d))
				if delta < -eps {
					reverseSegment(t, i+1, j)
					stats.Moves++
					improved = true
					break // first-improvement: restart from i = 0
				}
			}
		}

		if !improved {
			// Local optimum under the 2-opt neighbourhood.
			return t, stats, nil
		}
	}
}
