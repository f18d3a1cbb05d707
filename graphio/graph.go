package graphio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/lvtour/tsp"
)

// DefaultHeader is written as the second line when EncodeGraph gets an empty header.
const DefaultHeader = "i j d"

// WriteGraph writes dist to path in the edge-list format, replacing any existing file.
func WriteGraph(path string, dist tsp.Distance, header string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: write graph %s: %w", path, err)
	}
	if err = EncodeGraph(f, dist, header); err != nil {
		_ = f.Close()
		return fmt.Errorf("graphio: write graph %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("graphio: write graph %s: %w", path, err)
	}

	return nil
}

// EncodeGraph emits every pair i<j once. Distances use the shortest decimal
// form that parses back to the same float64, so a written graph reloads bit-exact.
//
// Complexity: O(n²).
func EncodeGraph(w io.Writer, dist tsp.Distance, header string) error {
	if header == "" {
		header = DefaultHeader
	}
	n := dist.Size()
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\n%s\n", n, header); err != nil {
		return err
	}

	buf := make([]byte, 0, 48)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			buf = strconv.AppendInt(buf[:0], int64(i+1), 10)
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, int64(j+1), 10)
			buf = append(buf, ' ')
			buf = strconv.AppendFloat(buf, dist.Cost(i, j), 'f', -1, 64)
			buf = append(buf, '\n')
			if _, err := bw.Write(buf); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
