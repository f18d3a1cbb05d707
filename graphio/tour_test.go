package graphio_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvtour/graphio"
	"github.com/katalvlaran/lvtour/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeTour_Closed1Based(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, graphio.EncodeTour(&buf, tsp.Tour{2, 0, 3, 1}))
	assert.Equal(t, "3,1,4,2,3", buf.String())

	buf.Reset()
	require.NoError(t, graphio.EncodeTour(&buf, tsp.Tour{0}))
	assert.Equal(t, "1,1", buf.String())

	buf.Reset()
	require.NoError(t, graphio.EncodeTour(&buf, tsp.Tour{}))
	assert.Empty(t, buf.String())
}

func TestWriteTour_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solution.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer"), 0o644))

	require.NoError(t, graphio.WriteTour(tsp.Tour{1, 0, 2}, path))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2,1,3,2", string(raw))
}

func TestWriteTour_BadPath(t *testing.T) {
	err := graphio.WriteTour(tsp.Tour{0, 1}, filepath.Join(t.TempDir(), "missing", "dir", "x.txt"))
	require.Error(t, err)
}

func TestReadTour_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solution.txt")
	want := tsp.Tour{4, 2, 0, 1, 3}
	require.NoError(t, graphio.WriteTour(want, path))

	got, err := graphio.ReadTour(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDecodeTour(t *testing.T) {
	got, err := graphio.DecodeTour(strings.NewReader(" 3, 1,2 ,3\n"))
	require.NoError(t, err)
	assert.Equal(t, tsp.Tour{2, 0, 1}, got)

	got, err = graphio.DecodeTour(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, tsp.Tour{}, got)
}

func TestDecodeTour_Malformed(t *testing.T) {
	for _, in := range []string{"1", "1,2,3", "1,x,1", "0,1,0", "1,,1"} {
		_, err := graphio.DecodeTour(strings.NewReader(in))
		require.ErrorIs(t, err, graphio.ErrMalformedTour, "input %q", in)
	}
}
