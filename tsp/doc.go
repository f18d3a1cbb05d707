// Package tsp provides a time-budgeted heuristic solver for the symmetric
// Travelling Salesman Problem on a complete distance matrix.
//
// The engine is built from three pieces that can also be used on their own:
//
//   - NearestNeighbor: greedy construction from a random start node, O(n²).
//   - TwoOpt: first-improvement 2-opt local search with an absolute deadline,
//     O(n²) per sweep and O(n) per accepted move.
//   - Solve: restart driver: construct, refine, keep the best tour, stop when
//     the time budget is spent or MaxNoImprove consecutive cycles brought no
//     improvement.
//
// Tours are open permutations of 0..n-1 (no repeated closing vertex); the edge
// from the last position back to the first is implied.
//
// Randomness is always injected: Options.Seed or Options.RNG drive the start
// node choice, so runs are reproducible under a fixed seed and a fake Clock.
package tsp
