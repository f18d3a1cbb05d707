// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"math"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/katalvlaran/lvtour/matrix"
	"github.com/katalvlaran/lvtour/tsp"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is a deterministic seed for RNG-based components.
	seedDet = int64(42)

	// squarePerimeter is the optimal tour cost of the unit square.
	squarePerimeter = 4.0

	// squareCrossed is the cost of the self-crossing unit-square tour 2+2√2.
	squareCrossed = 2 + 2*math.Sqrt2
)

// -----------------------------------------------------------------------------
// Clocks
// -----------------------------------------------------------------------------

// stepClock advances by step on every Now call. step == 0 freezes time.
type stepClock struct {
	mu   sync.Mutex
	t    time.Time
	step time.Duration
}

func newStepClock(step time.Duration) *stepClock {
	return &stepClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), step: step}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.t
	c.t = c.t.Add(c.step)

	return now
}

// -----------------------------------------------------------------------------
// Instances
// -----------------------------------------------------------------------------

// unitSquare returns the 4-node square: sides 1, diagonals √2.
// Node order around the square is 0-1-2-3.
func unitSquare(t *testing.T) *matrix.Dense {
	t.Helper()

	return euclid(t, [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
}

// euclid builds a symmetric Euclidean distance matrix from 2D points.
func euclid(t testing.TB, pts [][2]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(len(pts))
	require.NoError(t, err)

	var i, j int
	for i = 0; i < len(pts); i++ {
		for j = i + 1; j < len(pts); j++ {
			d := math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1])
			require.NoError(t, m.SetSymmetric(i, j, d))
		}
	}

	return m
}

// randomEuclid places n points uniformly in [0,1000)² with a fixed seed.
func randomEuclid(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	pts := make([][2]float64, n)
	for i := range pts {
		pts[i] = [2]float64{r.Float64() * 1000, r.Float64() * 1000}
	}

	return euclid(t, pts)
}

// zeros returns an n×n all-zero matrix (every tour costs 0).
func zeros(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(n)
	require.NoError(t, err)

	return m
}

// uniform returns an n×n matrix with every off-diagonal cost equal to w.
func uniform(t testing.TB, n int, w float64) *matrix.Dense {
	t.Helper()
	m := zeros(t, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			require.NoError(t, m.SetSymmetric(i, j, w))
		}
	}

	return m
}

// -----------------------------------------------------------------------------
// Assertions
// -----------------------------------------------------------------------------

// requirePermutation asserts that tour is a permutation of 0..n-1.
func requirePermutation(t *testing.T, tour tsp.Tour, n int) {
	t.Helper()
	require.NoError(t, tsp.ValidatePermutation(tour, n), "tour %v", tour)
}

// mustEvaluate returns the cost of tour or fails the test.
func mustEvaluate(t *testing.T, tour tsp.Tour, dist tsp.Distance) float64 {
	t.Helper()
	c, err := tsp.Evaluate(tour, dist)
	require.NoError(t, err)

	return c
}
