// Package builder generates deterministic TSP instances as complete,
// symmetric distance matrices.
//
// The package offers:
//
//   - Instance kinds:
//     – Euclidean:  n points uniform in a square, distances are planar lengths.
//     – Random:     every pair gets an independent WeightFn draw (no geometry).
//     – Build:      dispatch by Kind name, used by the command line.
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – WithSeed / WithRand / WithSide / WithWeightFn / WithRoundDigits.
//   - Edge-weight distributions (WeightFn implementations):
//     – ConstantWeightFn, UniformWeightFn, NormalWeightFn, ExponentialWeightFn.
//
// Guarantees:
//
//   - Deterministic output for a fixed seed: points are drawn in index order and
//     pairs are filled in lexicographic (i,j), i<j order.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime parameter errors wrap package sentinels (errors.Is friendly).
//
// Complexity: every constructor is O(n²) time and memory (the matrix itself).
package builder
