// Package lvtour finds short closed tours through complete, symmetric
// weighted graphs under a wall-clock budget.
//
// What is inside?
//
//   - matrix/   dense n×n distance storage with bounds-checked access
//   - tsp/      nearest-neighbour construction, first-improvement 2-opt and
//     the restart driver Solve with its time and stagnation guards
//   - graphio/  the edge-list graph format and the comma-separated tour format
//   - builder/  deterministic Euclidean and random instance generators
//   - internal/ YAML configuration, slog setup and the batch runner
//   - cmd/lvtour the command-line entry point (gen, solve, eval)
//
// Quick start:
//
//	dist, _ := builder.Euclidean(200, builder.WithSeed(1))
//	res, _ := tsp.Solve(ctx, dist, tsp.DefaultOptions())
//	fmt.Println(res.Cost, res.Termination)
//
// Solve never fails on a valid instance: whichever guard fires first, the
// best tour found so far is returned.
package lvtour
