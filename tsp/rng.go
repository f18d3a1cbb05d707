// Package tsp - RNG utilities shared by the constructor and the driver.
//
// Goals:
//   - Determinism: same seed ⇒ identical start nodes ⇒ identical tours under a fixed clock.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use DeriveSeed to give every graph of a batch its own independent stream.
package tsp

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(effectiveSeed(seed)))
}

// effectiveSeed applies the seed==0 policy.
func effectiveSeed(seed int64) int64 {
	if seed == 0 {
		return defaultRNGSeed
	}

	return seed
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
// The batch runner uses it so that graph k of a run seeded with S always gets
// the same stream, independent of how many graphs precede it.
//
// SplitMix64 finalizer; small input changes give well-spread outputs.
// The result is never 0, so it is never remapped by the seed==0 policy.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	if x == 0 {
		x = uint64(defaultRNGSeed)
	}

	return int64(x)
}
