// SPDX-License-Identifier: MIT
// Package: lvtour/builder
//
// impl_euclidean.go: planar instances.
//
// Contract:
//   • n ≥ MinNodes (else ErrTooFewVertices).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • Points are drawn in index order, x then y, uniform in [0, side)².
//   • d(i,j) = hypot(xi−xj, yi−yj), rounded per cfg.
//
// Complexity: O(n²) time and memory.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvtour/matrix"
)

// Point is a location in the plane.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// EuclideanPoints draws n points uniformly in the configured square.
func EuclideanPoints(n int, opts ...BuilderOption) ([]Point, error) {
	cfg := newBuilderConfig(opts...)
	if err := validateMin(MethodEuclidean, n, MinNodes); err != nil {
		return nil, err
	}
	if err := validateRand(MethodEuclidean, cfg); err != nil {
		return nil, err
	}

	return samplePoints(n, cfg), nil
}

// Euclidean builds a planar instance over n random points.
func Euclidean(n int, opts ...BuilderOption) (*matrix.Dense, error) {
	cfg := newBuilderConfig(opts...)
	if err := validateMin(MethodEuclidean, n, MinNodes); err != nil {
		return nil, err
	}
	if err := validateRand(MethodEuclidean, cfg); err != nil {
		return nil, err
	}

	return fromPoints(samplePoints(n, cfg), cfg.roundDigits)
}

// FromPoints builds the distance matrix of the given points.
// An empty slice yields the empty matrix.
func FromPoints(pts []Point, opts ...BuilderOption) (*matrix.Dense, error) {
	cfg := newBuilderConfig(opts...)

	return fromPoints(pts, cfg.roundDigits)
}

func samplePoints(n int, cfg builderConfig) []Point {
	pts := make([]Point, n)
	for i := range pts {
		pts[i].X = cfg.rng.Float64() * cfg.side
		pts[i].Y = cfg.rng.Float64() * cfg.side
	}

	return pts
}

func fromPoints(pts []Point, digits int) (*matrix.Dense, error) {
	n := len(pts)
	m, err := matrix.NewDense(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodEuclidean, err)
	}

	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if err = m.SetSymmetric(i, j, roundTo(pts[i].Dist(pts[j]), digits)); err != nil {
				return nil, fmt.Errorf("%s: point %d or %d: %w", MethodEuclidean, i, j, err)
			}
		}
	}

	return m, nil
}
