package graphio

import "log/slog"

// DefaultRequireComplete keeps the historical behaviour: unlisted pairs cost 0.
const DefaultRequireComplete = false

// MaxLineBytes bounds a single input line, header included.
const MaxLineBytes = 1 << 20

// ReadOption configures ReadDistanceMatrix and LoadDistanceMatrix.
type ReadOption func(*readOptions)

type readOptions struct {
	requireComplete bool
	stats           *Stats
	logger          *slog.Logger
}

// Stats describes what the reader saw in an edge-list file.
type Stats struct {
	Nodes        int // declared node count
	Edges        int // edge lines read
	Duplicates   int // edge lines that overwrote an earlier listing of the same pair
	SelfLoops    int // i == j lines; ignored
	MissingEdges int // pairs i<j never listed
}

// Complete reports whether every pair of nodes was listed.
func (s Stats) Complete() bool { return s.MissingEdges == 0 }

// WithRequireComplete rejects graphs that leave some pair unlisted.
func WithRequireComplete() ReadOption {
	return func(o *readOptions) { o.requireComplete = true }
}

// WithStats stores the read statistics in dst.
func WithStats(dst *Stats) ReadOption {
	return func(o *readOptions) { o.stats = dst }
}

// WithLogger makes the reader warn about missing edges and duplicates.
func WithLogger(l *slog.Logger) ReadOption {
	return func(o *readOptions) { o.logger = l }
}

func gatherReadOptions(opts []ReadOption) readOptions {
	o := readOptions{requireComplete: DefaultRequireComplete}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
