package graphio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvtour/tsp"
)

// WriteTour writes t to path in the closed 1-based format, replacing any
// existing file. An empty tour produces an empty file.
func WriteTour(t tsp.Tour, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: write tour %s: %w", path, err)
	}
	if err = EncodeTour(f, t); err != nil {
		_ = f.Close()
		return fmt.Errorf("graphio: write tour %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("graphio: write tour %s: %w", path, err)
	}

	return nil
}

// EncodeTour writes "a,b,...,a" with 1-based labels and no trailing newline.
func EncodeTour(w io.Writer, t tsp.Tour) error {
	if len(t) == 0 {
		return nil
	}
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 16)

	var k int
	for k = 0; k < len(t); k++ {
		buf = strconv.AppendInt(buf[:0], int64(t[k]+1), 10)
		buf = append(buf, ',')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	buf = strconv.AppendInt(buf[:0], int64(t[0]+1), 10) // close the cycle
	if _, err := bw.Write(buf); err != nil {
		return err
	}

	return bw.Flush()
}

// ReadTour loads a tour written by WriteTour.
func ReadTour(path string) (tsp.Tour, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: read tour %s: %w", path, err)
	}
	defer f.Close()

	t, err := DecodeTour(f)
	if err != nil {
		return nil, fmt.Errorf("graphio: read tour %s: %w", path, err)
	}

	return t, nil
}

// DecodeTour parses the closed 1-based format back into a 0-based open tour.
// The closing label must repeat the first one. Whether the result is a
// permutation is left to tsp.ValidatePermutation.
func DecodeTour(r io.Reader) (tsp.Tour, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	s := strings.TrimSpace(string(raw))
	if s == "" {
		return tsp.Tour{}, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) < 2 {
		return nil, fmt.Errorf("tour %q is not closed: %w", s, ErrMalformedTour)
	}
	labels := make([]int, len(parts))
	var k, v int
	for k = range parts {
		v, err = strconv.Atoi(strings.TrimSpace(parts[k]))
		if err != nil {
			return nil, fmt.Errorf("entry %d: %q is not an integer: %w", k+1, parts[k], ErrMalformedTour)
		}
		if v < 1 {
			return nil, fmt.Errorf("entry %d: label %d must be ≥ 1: %w", k+1, v, ErrMalformedTour)
		}
		labels[k] = v
	}
	last := len(labels) - 1
	if labels[last] != labels[0] {
		return nil, fmt.Errorf("closing label %d differs from start %d: %w", labels[last], labels[0], ErrMalformedTour)
	}

	t := make(tsp.Tour, last)
	for k = 0; k < last; k++ {
		t[k] = labels[k] - 1
	}

	return t, nil
}
