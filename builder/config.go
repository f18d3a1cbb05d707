// SPDX-License-Identifier: MIT
// Package: lvtour/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng         = nil                 (stochastic constructors demand a seed)
//   • weightFn    = UniformWeightFn(DefaultMinWeight, DefaultMaxWeight)
//   • side        = DefaultSide
//   • roundDigits = DefaultRoundDigits  (no rounding)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	rng         *rand.Rand
	weightFn    WeightFn
	side        float64
	roundDigits int
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn:    UniformWeightFn(DefaultMinWeight, DefaultMaxWeight),
		side:        DefaultSide,
		roundDigits: DefaultRoundDigits,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
