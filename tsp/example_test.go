// Package tsp_test provides runnable, deterministic examples for lvtour/tsp.
// Each example prints stable values in its // Output: block.
package tsp_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvtour/matrix"
	"github.com/katalvlaran/lvtour/tsp"
)

// exSquare is the unit square 0-1-2-3: sides cost 1, diagonals cost 1.5.
func exSquare() *matrix.Dense {
	m, err := matrix.NewDenseFromRows([][]float64{
		{0, 1, 1.5, 1},
		{1, 0, 1, 1.5},
		{1.5, 1, 0, 1},
		{1, 1.5, 1, 0},
	})
	if err != nil {
		panic(err)
	}

	return m
}

// ExampleEvaluate prices a tour including its closing edge.
func ExampleEvaluate() {
	cost, err := tsp.Evaluate(tsp.Tour{0, 2, 1, 3}, exSquare())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.2f\n", cost)
	// Output:
	// 5.00
}

// ExampleTwoOpt removes the crossing of a self-intersecting tour.
func ExampleTwoOpt() {
	dist := exSquare()
	tour, stats, err := tsp.TwoOpt(tsp.Tour{0, 2, 1, 3}, dist, tsp.RefineOptions{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	cost, _ := tsp.Evaluate(tour, dist)
	fmt.Println("tour:", tour)
	fmt.Printf("cost: %.2f moves: %d\n", cost, stats.Moves)
	// Output:
	// tour: [0 1 2 3]
	// cost: 4.00 moves: 1
}

// ExampleSolve runs the restart driver until it stagnates.
func ExampleSolve() {
	opts := tsp.DefaultOptions()
	opts.TimeLimit = 0 // stagnation only
	opts.MaxNoImprove = 5
	opts.Seed = 42

	res, err := tsp.Solve(context.Background(), exSquare(), opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("cost: %.2f\n", res.Cost)
	fmt.Println("perimeter:", tsp.EqualCycles(res.Tour, tsp.Tour{0, 1, 2, 3}))
	fmt.Println("cycles:", res.Cycles, res.Termination)
	// Output:
	// cost: 4.00
	// perimeter: true
	// cycles: 6 stagnated
}
