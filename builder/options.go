// SPDX-License-Identifier: MIT
// Package: lvtour/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// BuilderOption customizes a constructor by mutating a builderConfig
// before generation begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-pair weight generator of the Random kind.
// Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithUniformWeight sets weights ∼ U[min,max) via UniformWeightFn.
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithSide sets the side length of the Euclidean sampling square.
// Panics unless side is finite and > 0.
func WithSide(side float64) BuilderOption {
	if !(side > 0) || math.IsInf(side, 0) {
		panic(fmt.Sprintf("builder: WithSide(%g)", side))
	}
	return func(c *builderConfig) {
		c.side = side
	}
}

// WithRoundDigits rounds every generated distance to the given number of
// decimal places. Panics outside [0, MaxRoundDigits].
func WithRoundDigits(digits int) BuilderOption {
	if digits < 0 || digits > MaxRoundDigits {
		panic(fmt.Sprintf("builder: WithRoundDigits(%d)", digits))
	}
	return func(c *builderConfig) {
		c.roundDigits = digits
	}
}
