// Package tsp - nearest-neighbour tour construction.
//
// NearestNeighbor builds one initial tour:
//  1. Pick a uniformly random start node from the injected rng.
//  2. Repeatedly append the unvisited node nearest to the current tour end.
//  3. Stop when every node has been placed.
//
// Ties are broken by the lowest node index: candidates are scanned in index
// order and only a strictly smaller cost replaces the current choice.
//
// Complexity: O(n²) time (one linear scan of the unvisited set per step), O(n) space.
package tsp

import "math/rand"

// NearestNeighbor returns a complete permutation of 0..n-1 built greedily
// from a random start. It cannot fail: n == 0 yields an empty tour and n == 1
// yields [0]. If rng is nil the deterministic default stream is used.
func NearestNeighbor(dist Distance, rng *rand.Rand) Tour {
	n := dist.Size()
	if n == 0 {
		return Tour{}
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}

	tour := make(Tour, 0, n)
	visited := make([]bool, n)

	cur := rng.Intn(n)
	tour = append(tour, cur)
	visited[cur] = true

	var (
		step, j int
		next    int
		best    float64
		c       float64
	)
	for step = 1; step < n; step++ {
		next = -1
		for j = 0; j < n; j++ {
			if visited[j] {
				continue
			}
			c = dist.Cost(cur, j)
			if next == -1 || c < best {
				next, best = j, c
			}
		}
		tour = append(tour, next)
		visited[next] = true
		cur = next
	}

	return tour
}
