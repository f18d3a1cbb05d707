package graphio

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedGraph is returned when an edge-list file fails structural validation.
	ErrMalformedGraph = errors.New("graphio: malformed graph")

	// ErrIncompleteGraph is returned under WithRequireComplete when some pair
	// of nodes has no listed edge. It wraps ErrMalformedGraph.
	ErrIncompleteGraph = fmt.Errorf("%w: missing edges", ErrMalformedGraph)

	// ErrMalformedTour is returned when a tour file cannot be decoded.
	ErrMalformedTour = errors.New("graphio: malformed tour")
)

// lineErrorf wraps sentinel with a line-numbered message.
func lineErrorf(sentinel error, line int, format string, args ...any) error {
	return fmt.Errorf("line %d: %s: %w", line, fmt.Sprintf(format, args...), sentinel)
}
