// Package builder: pair-weight distributions for the Random instance kind.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// WeightFn draws one pair distance from rng. It must be deterministic for a
// given RNG state and must return a finite, non-negative value.
type WeightFn func(rng *rand.Rand) float64

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
// Complexity: O(1).
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be finite and ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics if min < 0 or max < min.
// Complexity: O(1).
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min || math.IsInf(max, 0) {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max < Inf, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if max == min {
			// Degenerate interval: constant, rng untouched.
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// NormalWeightFn returns a WeightFn sampling N(mean, stddev) clipped at 0.
// Panics if stddev < 0.
// Complexity: O(1).
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %g", stddev))
	}

	return func(rng *rand.Rand) float64 {
		sample := rng.NormFloat64()*stddev + mean
		if sample < 0 {
			return 0
		}

		return sample
	}
}

// ExponentialWeightFn returns a WeightFn sampling Exp(rate), mean 1/rate.
// Panics if rate ≤ 0.
// Complexity: O(1).
func ExponentialWeightFn(rate float64) WeightFn {
	if rate <= 0 {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %g", rate))
	}

	return func(rng *rand.Rand) float64 {
		return rng.ExpFloat64() / rate
	}
}

// WeightDist names a pair-weight distribution for the Random kind.
type WeightDist string

// Distributions accepted by NewWeightFn.
const (
	WeightUniform     WeightDist = "uniform"  // params: min, max
	WeightNormal      WeightDist = "normal"   // params: mean, stddev
	WeightExponential WeightDist = "exp"      // params: rate
	WeightConstant    WeightDist = "constant" // params: value
)

// Default parameters used by NewWeightFn when none are given.
const (
	DefaultNormalMean      = 50.0
	DefaultNormalStddev    = 15.0
	DefaultExponentialRate = 0.02
)

// WeightDists lists the supported distributions.
func WeightDists() []WeightDist {
	return []WeightDist{WeightUniform, WeightNormal, WeightExponential, WeightConstant}
}

// NewWeightFn builds a WeightFn from a distribution name and its parameters.
// Missing parameters take the Default* values. Unlike the *WeightFn
// constructors it reports bad input as ErrInvalidWeight instead of panicking.
func NewWeightFn(dist WeightDist, params ...float64) (WeightFn, error) {
	for _, p := range params {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return nil, builderErrorf(MethodWeight, ErrInvalidWeight, "%s: parameter %g is not finite", dist, p)
		}
	}
	arg := func(k int, def float64) float64 {
		if k < len(params) {
			return params[k]
		}
		return def
	}
	want := map[WeightDist]int{WeightUniform: 2, WeightNormal: 2, WeightExponential: 1, WeightConstant: 1}
	if max, ok := want[dist]; ok && len(params) > max {
		return nil, builderErrorf(MethodWeight, ErrInvalidWeight, "%s takes at most %d parameters, got %d", dist, max, len(params))
	}

	switch dist {
	case WeightUniform:
		lo, hi := arg(0, DefaultMinWeight), arg(1, DefaultMaxWeight)
		if lo < 0 || hi < lo {
			return nil, builderErrorf(MethodWeight, ErrInvalidWeight, "uniform: require 0 ≤ min ≤ max, got %g, %g", lo, hi)
		}
		return UniformWeightFn(lo, hi), nil
	case WeightNormal:
		mean, sd := arg(0, DefaultNormalMean), arg(1, DefaultNormalStddev)
		if sd < 0 {
			return nil, builderErrorf(MethodWeight, ErrInvalidWeight, "normal: stddev must be ≥ 0, got %g", sd)
		}
		return NormalWeightFn(mean, sd), nil
	case WeightExponential:
		rate := arg(0, DefaultExponentialRate)
		if rate <= 0 {
			return nil, builderErrorf(MethodWeight, ErrInvalidWeight, "exp: rate must be > 0, got %g", rate)
		}
		return ExponentialWeightFn(rate), nil
	case WeightConstant:
		v := arg(0, DefaultMinWeight)
		if v < 0 {
			return nil, builderErrorf(MethodWeight, ErrInvalidWeight, "constant: value must be ≥ 0, got %g", v)
		}
		return ConstantWeightFn(v), nil
	default:
		return nil, builderErrorf(MethodWeight, ErrInvalidWeight, "unknown distribution %q (want one of %v)", dist, WeightDists())
	}
}
