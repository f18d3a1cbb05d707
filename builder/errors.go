// SPDX-License-Identifier: MIT
// Package: lvtour/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Context is attached with %w at the call site (see builderErrorf).
//   • Validation panics are confined to option constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that n is smaller than the allowed minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor ran without an RNG
// (neither WithSeed nor WithRand was supplied).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidWeight indicates an unknown distribution or out-of-range parameters.
var ErrInvalidWeight = errors.New("builder: invalid weight distribution")

// ErrUnknownKind indicates that Build received a kind it does not generate.
var ErrUnknownKind = errors.New("builder: unknown instance kind")

// builderErrorf wraps sentinel with the given method context.
// It returns an error of the form "<Method>: <formatted message>: <sentinel>".
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s: %w", method, inner, sentinel)
}
