// SPDX-License-Identifier: MIT

// Package matrix: Dense is the concrete distance model, storing n×n costs in a
// flat row-major slice for cache friendliness in the 2-opt inner loop.
package matrix

import (
	"fmt"
	"math"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a square, symmetric matrix of non-negative float64 costs.
// n is the order and data holds n*n elements in row-major order.
type Dense struct {
	n    int       // order (number of nodes)
	data []float64 // flat backing storage, length == n*n
}

// NewDense creates an n×n Dense initialized to zeros.
// n == 0 is accepted and yields the empty model; n > MaxOrder is rejected.
// Complexity: O(n²) time and memory.
func NewDense(n int) (*Dense, error) {
	if n < 0 || n > MaxOrder {
		return nil, fmt.Errorf("NewDense(%d): order must be in [0, %d]: %w", n, MaxOrder, ErrBadShape)
	}

	return &Dense{n: n, data: make([]float64, n*n)}, nil
}

// NewDenseFromRows copies a caller-owned square matrix into a fresh Dense.
// Stage 1 (Validate): square shape, finite, non-negative, symmetric within DefaultEpsilon.
// Stage 2 (Execute): copy row by row into the flat buffer.
// Complexity: O(n²).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	n := len(rows)
	var i, j int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("NewDenseFromRows: row %d has %d columns, want %d: %w", i, len(rows[i]), n, ErrNonSquare)
		}
	}

	d := &Dense{n: n, data: make([]float64, n*n)}
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = rows[i][j]
			if err := checkValue(v); err != nil {
				return nil, denseErrorf("FromRows", i, j, err)
			}
			if j > i && math.Abs(v-rows[j][i]) > DefaultEpsilon {
				return nil, denseErrorf("FromRows", i, j, ErrAsymmetry)
			}
			d.data[i*n+j] = v
		}
	}

	return d, nil
}

// Size returns the order n of the matrix.
// Complexity: O(1).
func (m *Dense) Size() int {
	if m == nil {
		return 0
	}

	return m.n
}

// Cost returns a[i][j] without bounds checks beyond the slice's own.
// It is the hot-path accessor used by tour evaluation and 2-opt.
// Complexity: O(1).
func (m *Dense) Cost(i, j int) float64 {
	return m.data[i*m.n+j]
}

// At retrieves a[row][col] with explicit bounds checking.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, denseErrorf("At", row, col, ErrOutOfRange)
	}

	return m.data[row*m.n+col], nil
}

// SetSymmetric writes d into both a[i][j] and a[j][i].
// It is meant for loaders and generators while the matrix is being built;
// solvers never call it.
// Complexity: O(1).
func (m *Dense) SetSymmetric(i, j int, d float64) error {
	if m == nil {
		return ErrNilMatrix
	}
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return denseErrorf("SetSymmetric", i, j, ErrOutOfRange)
	}
	if err := checkValue(d); err != nil {
		return denseErrorf("SetSymmetric", i, j, err)
	}
	m.data[i*m.n+j] = d
	m.data[j*m.n+i] = d

	return nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(n²).
func (m *Dense) Clone() *Dense {
	if m == nil {
		return nil
	}
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{n: m.n, data: cp}
}

// Rows returns a freshly allocated [][]float64 view of the matrix.
// Complexity: O(n²).
func (m *Dense) Rows() [][]float64 {
	out := make([][]float64, m.Size())
	var i int
	for i = range out {
		out[i] = append([]float64(nil), m.data[i*m.n:(i+1)*m.n]...)
	}

	return out
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(n²).
func (m *Dense) String() string {
	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < m.Size(); i++ {
		sb.WriteByte('[')
		for j = 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.n+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// checkValue enforces the numeric policy for a single cost.
func checkValue(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNaNInf
	}
	if v < 0 {
		return ErrNegativeWeight
	}

	return nil
}
