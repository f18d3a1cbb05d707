// SPDX-License-Identifier: MIT
// Package: lvtour/builder
//
// impl_random.go: complete graph with independent random pair weights.
//
// Contract:
//   • n ≥ MinNodes (else ErrTooFewVertices).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • Each unordered pair {i,j} with i<j is drawn exactly once, in stable
//     lexicographic order, and mirrored to [j][i].
//   • Weights come from cfg.weightFn (default U[1,100)); rounding per cfg.
//
// The result is symmetric but generally not metric: the triangle inequality
// may fail, which is what makes this workload harder for 2-opt.
//
// Complexity: O(n²) time and memory.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvtour/matrix"
)

// Random builds a complete random-weight instance over n nodes.
func Random(n int, opts ...BuilderOption) (*matrix.Dense, error) {
	cfg := newBuilderConfig(opts...)
	if err := validateMin(MethodRandom, n, MinNodes); err != nil {
		return nil, err
	}
	if err := validateRand(MethodRandom, cfg); err != nil {
		return nil, err
	}

	m, err := matrix.NewDense(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodRandom, err)
	}

	var (
		i, j int
		w    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w = roundTo(cfg.weightFn(cfg.rng), cfg.roundDigits)
			if math.IsNaN(w) {
				return nil, fmt.Errorf("%s: weight for (%d,%d) is NaN: %w", MethodRandom, i, j, matrix.ErrNaNInf)
			}
			if err = m.SetSymmetric(i, j, w); err != nil {
				return nil, fmt.Errorf("%s: %w", MethodRandom, err)
			}
		}
	}

	return m, nil
}
