package builder

import "math"

// validateMin ensures that got ≥ min, wrapping ErrTooFewVertices otherwise.
// Complexity: O(1).
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewVertices, "n=%d < min=%d", got, min)
	}

	return nil
}

// validateRand ensures a stochastic constructor has an RNG.
func validateRand(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return builderErrorf(method, ErrNeedRandSource, "use WithSeed or WithRand")
	}

	return nil
}

// roundTo applies the configured rounding policy to v.
func roundTo(v float64, digits int) float64 {
	if digits < 0 {
		return v
	}
	p := math.Pow10(digits)

	return math.Round(v*p) / p
}
