package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvtour/matrix"
)

// LoadDistanceMatrix opens path and parses it with ReadDistanceMatrix.
func LoadDistanceMatrix(path string, opts ...ReadOption) (int, *matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, fmt.Errorf("graphio: load %s: %w", path, err)
	}
	defer f.Close()

	n, dist, err := ReadDistanceMatrix(f, opts...)
	if err != nil {
		return 0, nil, fmt.Errorf("graphio: load %s: %w", path, err)
	}

	return n, dist, nil
}

// ReadDistanceMatrix parses an edge-list graph from r into a symmetric matrix.
//
// Validation (all wrap ErrMalformedGraph):
//   - first line is an integer n in [0, matrix.MaxOrder]; a second (header) line follows,
//   - no line is longer than MaxLineBytes,
//   - every edge line has exactly three fields "i j d",
//   - 1 ≤ i, j ≤ n and d is a finite, non-negative real,
//   - for n ≥ 2 the edges reference exactly n distinct nodes.
//
// Complexity: O(n² + E) time, O(n²) memory.
func ReadDistanceMatrix(r io.Reader, opts ...ReadOption) (int, *matrix.Dense, error) {
	o := gatherReadOptions(opts)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)
	line := 0

	// Stage 1: node count.
	var n int
	for {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, nil, scanError(err, line+1)
			}
			return 0, nil, lineErrorf(ErrMalformedGraph, line+1, "missing node count")
		}
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		v, err := strconv.Atoi(text)
		if err != nil {
			return 0, nil, lineErrorf(ErrMalformedGraph, line, "node count %q is not an integer", text)
		}
		if v < 0 {
			return 0, nil, lineErrorf(ErrMalformedGraph, line, "node count %d is negative", v)
		}
		if v > matrix.MaxOrder {
			return 0, nil, lineErrorf(ErrMalformedGraph, line, "node count %d exceeds %d", v, matrix.MaxOrder)
		}
		n = v
		break
	}

	// Stage 2: header, ignored but mandatory.
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, nil, scanError(err, line+1)
		}
		return 0, nil, lineErrorf(ErrMalformedGraph, line+1, "missing header line")
	}
	line++

	dist, err := matrix.NewDense(n)
	if err != nil {
		return 0, nil, fmt.Errorf("%v: %w", err, ErrMalformedGraph)
	}

	// Stage 3: edges.
	var (
		st         = Stats{Nodes: n}
		referenced = make([]bool, n)
		listed     = make([]bool, n*n)
		pairs      int
		fields     []string
		i, j       int
		d          float64
	)
	for sc.Scan() {
		line++
		fields = strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			return 0, nil, lineErrorf(ErrMalformedGraph, line, "want 3 fields \"i j d\", got %d", len(fields))
		}
		if i, err = parseIndex(fields[0], n); err != nil {
			return 0, nil, lineErrorf(ErrMalformedGraph, line, "%v", err)
		}
		if j, err = parseIndex(fields[1], n); err != nil {
			return 0, nil, lineErrorf(ErrMalformedGraph, line, "%v", err)
		}
		if d, err = parseDistance(fields[2]); err != nil {
			return 0, nil, lineErrorf(ErrMalformedGraph, line, "%v", err)
		}

		st.Edges++
		referenced[i], referenced[j] = true, true
		if i == j {
			st.SelfLoops++
			continue
		}
		if i > j {
			i, j = j, i
		}
		if listed[i*n+j] {
			st.Duplicates++
		} else {
			listed[i*n+j] = true
			pairs++
		}
		if err = dist.SetSymmetric(i, j, d); err != nil {
			return 0, nil, lineErrorf(ErrMalformedGraph, line, "%v", err)
		}
	}
	if err = sc.Err(); err != nil {
		return 0, nil, scanError(err, line+1)
	}

	// Stage 4: whole-file checks.
	if n >= 2 {
		distinct := 0
		for _, ok := range referenced {
			if ok {
				distinct++
			}
		}
		if distinct != n {
			return 0, nil, fmt.Errorf("declared %d nodes, edges reference %d: %w", n, distinct, ErrMalformedGraph)
		}
	}
	st.MissingEdges = n*(n-1)/2 - pairs

	if o.stats != nil {
		*o.stats = st
	}
	if st.MissingEdges > 0 {
		if o.requireComplete {
			return 0, nil, fmt.Errorf("%d of %d pairs unlisted: %w", st.MissingEdges, n*(n-1)/2, ErrIncompleteGraph)
		}
		if o.logger != nil {
			o.logger.Warn("graph has unlisted pairs; they cost 0",
				slog.Int("nodes", n),
				slog.Int("missing_edges", st.MissingEdges),
			)
		}
	}
	if st.Duplicates > 0 && o.logger != nil {
		o.logger.Debug("graph lists some pairs more than once; last listing wins",
			slog.Int("duplicates", st.Duplicates),
		)
	}

	return n, dist, nil
}

// scanError classifies a scanner failure at line: an over-long line is a
// format error, anything else is an I/O error.
func scanError(err error, line int) error {
	if errors.Is(err, bufio.ErrTooLong) {
		return lineErrorf(ErrMalformedGraph, line, "line longer than %d bytes", MaxLineBytes)
	}

	return fmt.Errorf("read: %w", err)
}

// parseIndex converts a 1-based node label to a 0-based index within [0, n).
func parseIndex(s string, n int) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("node %q is not an integer", s)
	}
	if v < 1 || v > n {
		return 0, fmt.Errorf("node %d out of range [1, %d]", v, n)
	}

	return v - 1, nil
}

// parseDistance accepts finite, non-negative reals.
func parseDistance(s string) (float64, error) {
	d, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("distance %q is not a number", s)
	}
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0, fmt.Errorf("distance %q is not finite", s)
	}
	if d < 0 {
		return 0, fmt.Errorf("distance %g is negative", d)
	}

	return d, nil
}
