// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and checked accessors return these sentinels (optionally
// wrapped with call-site context); tests match them via errors.Is.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested order is negative or above MaxOrder.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals ragged or non-square input rows.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a[i][j] and a[j][i] differ by more than DefaultEpsilon.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf cost.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegativeWeight signals a negative cost.
	ErrNegativeWeight = errors.New("matrix: negative weight")

	// ErrNilMatrix indicates that a nil *Dense was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
