// SPDX-License-Identifier: MIT

// Package matrix provides the distance model consumed by the TSP engine.
//
// Dense is an immutable-by-convention, square, row-major matrix of pairwise
// costs. It is filled once by a loader or a generator (SetSymmetric) and then
// handed to solvers, which only read it through Size and Cost.
//
// Numeric policy:
//   - entries are finite and non-negative (NaN/±Inf and negatives rejected),
//   - symmetry is maintained by construction (SetSymmetric mirrors writes),
//   - the diagonal is left at zero but is never consulted by tour costs,
//   - pairs that were never written keep the cost 0.
//
// Concurrency: a Dense that is no longer being written may be read from any
// number of goroutines without synchronization.
package matrix
