// SPDX-License-Identifier: MIT

// Package matrix: numeric policy constants.
package matrix

// DefaultEpsilon is the tolerance used by symmetry checks on caller-supplied rows.
const DefaultEpsilon = 1e-9

// MaxOrder is the largest order NewDense allocates: 1<<15 nodes, 8 GiB of float64 costs.
// Larger requests fail with ErrBadShape instead of overflowing n*n.
const MaxOrder = 1 << 15
