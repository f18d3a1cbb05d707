// Package tsp: tour utilities.
//
// Helpers that operate purely on tour structure (index sequences), without
// depending on distance models:
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - Clone: independent copy (used for copy-on-improve in the driver).
//   - reverseSegment: in-place inclusive segment reversal (2-opt core).
//   - RotateToStart: cyclic shift so the tour begins at a given node.
//   - EqualCycles: same cycle regardless of rotation and direction.
package tsp

import (
	"fmt"
	"strings"
)

// ValidatePermutation checks that t is a permutation of {0..n-1} of length n.
// n == 0 accepts only the empty tour.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(t Tour, n int) error {
	if len(t) != n {
		return fmt.Errorf("tour length %d, want %d: %w", len(t), n, ErrDimensionMismatch)
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = t[i]
		if v < 0 || v >= n {
			return fmt.Errorf("tour[%d]=%d out of range: %w", i, v, ErrDimensionMismatch)
		}
		if seen[v] {
			return fmt.Errorf("tour[%d]=%d repeated: %w", i, v, ErrDimensionMismatch)
		}
		seen[v] = true
	}

	return nil
}

// Clone returns an independent copy of the tour.
// A nil tour clones to nil.
//
// Complexity: O(n) time, O(n) space.
func (t Tour) Clone() Tour {
	if t == nil {
		return nil
	}
	out := make(Tour, len(t))
	copy(out, t)

	return out
}

// String renders the tour as "[0 3 1 2]".
func (t Tour) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range t {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", v)
	}
	sb.WriteByte(']')

	return sb.String()
}

// reverseSegment reverses the inclusive segment t[i..k] in place.
// Callers guarantee 0 ≤ i ≤ k < len(t).
//
// Complexity: O(k-i) time, O(1) space.
func reverseSegment(t Tour, i, k int) {
	for i < k {
		t[i], t[k] = t[k], t[i]
		i++
		k--
	}
}

// RotateToStart returns a fresh copy of t shifted so that out[0] == start.
// If start is not present the copy is returned unrotated.
//
// Complexity: O(n).
func RotateToStart(t Tour, start int) Tour {
	n := len(t)
	out := make(Tour, n)
	pivot := 0
	for i := 0; i < n; i++ {
		if t[i] == start {
			pivot = i
			break
		}
	}
	for i := 0; i < n; i++ {
		out[i] = t[(pivot+i)%n]
	}

	return out
}

// EqualCycles reports whether a and b describe the same cycle, allowing any
// rotation and either direction.
//
// Complexity: O(n).
func EqualCycles(a, b Tour) bool {
	if len(a) != len(b) {
		return false
	}
	n := len(a)
	if n == 0 {
		return true
	}
	p := -1
	for j := 0; j < n; j++ {
		if b[j] == a[0] {
			p = j
			break
		}
	}
	if p == -1 {
		return false
	}

	forward, backward := true, true
	for i := 0; i < n && (forward || backward); i++ {
		if a[i] != b[(p+i)%n] {
			forward = false
		}
		if a[i] != b[((p-i)%n+n)%n] {
			backward = false
		}
	}

	return forward || backward
}
