// Package tsp - validation of solver options.
//
// Deterministic, side-effect free checks; errors wrap ErrInvalidOptions.
package tsp

import (
	"fmt"
	"math"
)

// validateOptions checks internal consistency of Options.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.TimeLimit < 0 {
		return fmt.Errorf("time limit %v is negative: %w", opts.TimeLimit, ErrInvalidOptions)
	}
	if opts.MaxNoImprove < 1 {
		return fmt.Errorf("max no-improve %d must be at least 1: %w", opts.MaxNoImprove, ErrInvalidOptions)
	}
	// A negative epsilon would accept worsening moves and break termination.
	if opts.Eps < 0 || math.IsNaN(opts.Eps) || math.IsInf(opts.Eps, 0) {
		return fmt.Errorf("eps %g must be finite and non-negative: %w", opts.Eps, ErrInvalidOptions)
	}

	return nil
}

// clockOrDefault returns c, or SystemClock when c is nil.
func clockOrDefault(c Clock) Clock {
	if c == nil {
		return SystemClock
	}

	return c
}
