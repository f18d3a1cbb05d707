package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvtour/builder"
	"github.com/katalvlaran/lvtour/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireSymmetricComplete checks the structural contract of every instance.
func requireSymmetricComplete(t *testing.T, m *matrix.Dense, n int) {
	t.Helper()
	require.Equal(t, n, m.Size())
	var i, j int
	for i = 0; i < n; i++ {
		require.Zero(t, m.Cost(i, i))
		for j = i + 1; j < n; j++ {
			require.Equal(t, m.Cost(i, j), m.Cost(j, i))
			require.False(t, math.IsNaN(m.Cost(i, j)))
			require.GreaterOrEqual(t, m.Cost(i, j), 0.0)
		}
	}
}

func TestEuclidean_Contract(t *testing.T) {
	m, err := builder.Euclidean(40, builder.WithSeed(1))
	require.NoError(t, err)
	requireSymmetricComplete(t, m, 40)

	// Planar distances obey the triangle inequality.
	var i, j, k int
	for i = 0; i < 10; i++ {
		for j = 0; j < 10; j++ {
			for k = 0; k < 10; k++ {
				require.LessOrEqual(t, m.Cost(i, k), m.Cost(i, j)+m.Cost(j, k)+1e-9)
			}
		}
	}
}

func TestEuclidean_MatchesPoints(t *testing.T) {
	pts, err := builder.EuclideanPoints(12, builder.WithSeed(5), builder.WithSide(10))
	require.NoError(t, err)
	for _, p := range pts {
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.Less(t, p.X, 10.0)
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.Less(t, p.Y, 10.0)
	}

	m, err := builder.Euclidean(12, builder.WithSeed(5), builder.WithSide(10))
	require.NoError(t, err)
	assert.Equal(t, pts[3].Dist(pts[7]), m.Cost(3, 7))
}

func TestFromPoints(t *testing.T) {
	m, err := builder.FromPoints([]builder.Point{{0, 0}, {3, 4}, {3, 0}})
	require.NoError(t, err)
	assert.Equal(t, 5.0, m.Cost(0, 1))
	assert.Equal(t, 4.0, m.Cost(1, 2))
	assert.Equal(t, 3.0, m.Cost(2, 0))

	empty, err := builder.FromPoints(nil)
	require.NoError(t, err)
	assert.Zero(t, empty.Size())
}

func TestRandom_Contract(t *testing.T) {
	m, err := builder.Random(30, builder.WithSeed(3))
	require.NoError(t, err)
	requireSymmetricComplete(t, m, 30)

	var i, j int
	for i = 0; i < 30; i++ {
		for j = i + 1; j < 30; j++ {
			require.GreaterOrEqual(t, m.Cost(i, j), builder.DefaultMinWeight)
			require.Less(t, m.Cost(i, j), builder.DefaultMaxWeight)
		}
	}
}

func TestRandom_CustomWeights(t *testing.T) {
	m, err := builder.Random(5, builder.WithRand(rand.New(rand.NewSource(1))), builder.WithWeightFn(builder.ConstantWeightFn(2)))
	require.NoError(t, err)
	assert.Equal(t, 2.0, m.Cost(0, 4))
	assert.Equal(t, 2.0, m.Cost(3, 1))
}

func TestRoundDigits(t *testing.T) {
	m, err := builder.Random(10, builder.WithSeed(8), builder.WithRoundDigits(1))
	require.NoError(t, err)
	var i, j int
	for i = 0; i < 10; i++ {
		for j = i + 1; j < 10; j++ {
			v := m.Cost(i, j) * 10
			require.InDelta(t, math.Round(v), v, 1e-6)
		}
	}
}

func TestDeterministicUnderSeed(t *testing.T) {
	for _, kind := range builder.Kinds() {
		a, err := builder.Build(kind, 25, builder.WithSeed(77))
		require.NoError(t, err)
		b, err := builder.Build(kind, 25, builder.WithSeed(77))
		require.NoError(t, err)
		assert.Equal(t, a.Rows(), b.Rows(), "kind %s", kind)

		c, err := builder.Build(kind, 25, builder.WithSeed(78))
		require.NoError(t, err)
		assert.NotEqual(t, a.Rows(), c.Rows(), "kind %s", kind)
	}
}

func TestBuild_Errors(t *testing.T) {
	_, err := builder.Build(builder.KindEuclidean, 0, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Build(builder.KindRandom, 5)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.Build(builder.Kind("hexagon"), 5, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrUnknownKind)
}

func TestParseKind(t *testing.T) {
	k, err := builder.ParseKind("random")
	require.NoError(t, err)
	assert.Equal(t, builder.KindRandom, k)

	_, err = builder.ParseKind("grid")
	require.ErrorIs(t, err, builder.ErrUnknownKind)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithSide(0) })
	assert.Panics(t, func() { builder.WithSide(math.NaN()) })
	assert.Panics(t, func() { builder.WithRoundDigits(-1) })
	assert.Panics(t, func() { builder.WithRoundDigits(16) })
}
