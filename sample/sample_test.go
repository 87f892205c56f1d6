package sample_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/minkowski/sample"
	"github.com/katalvlaran/minkowski/treemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGrid checks size, ordering and exactness of the dyadic grid.
func TestGrid(t *testing.T) {
	xs, err := sample.Grid(10)
	require.NoError(t, err)
	require.Len(t, xs, 1025)
	assert.Equal(t, 0.0, xs[0])
	assert.Equal(t, 1.0, xs[1024])
	assert.Equal(t, 0.5, xs[512])
	for i := 1; i < len(xs); i++ {
		require.Equal(t, math.Ldexp(1, -10), xs[i]-xs[i-1], "uniform spacing at %d", i)
	}

	xs, err = sample.Grid(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, xs)

	_, err = sample.Grid(-1)
	assert.ErrorIs(t, err, sample.ErrBadDepth)
	_, err = sample.Grid(sample.MaxGridDepth + 1)
	assert.ErrorIs(t, err, sample.ErrBadDepth)
}

// TestMap checks ordered application and error context.
func TestMap(t *testing.T) {
	xs := []float64{0, 0.25, 0.5}
	ys, err := sample.Map(xs, func(x float64) (float64, error) { return 2 * x, nil })
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1}, ys)

	boom := errors.New("boom")
	_, err = sample.Map(xs, func(x float64) (float64, error) {
		if x > 0.3 {
			return 0, boom
		}
		return x, nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "point 2")

	ys, err = sample.Map(nil, func(x float64) (float64, error) { return x, nil })
	require.NoError(t, err)
	assert.Empty(t, ys)
}

// TestSlopes_TreeMapJumps checks the raw tree map's slopes jump at its
// breakpoints: A has slopes 2, 1, ½ on [0,¼], [¼,½], [½,1].
func TestSlopes_TreeMapJumps(t *testing.T) {
	xs, err := sample.Grid(10)
	require.NoError(t, err)
	a := treemap.MustBuild(treemap.GeneratorA())
	ys, err := sample.Map(xs, a.Apply)
	require.NoError(t, err)

	slopes, err := sample.Slopes(xs, ys)
	require.NoError(t, err)
	require.Len(t, slopes, 1024)
	assert.Equal(t, 2.0, slopes[0])
	assert.Equal(t, 1.0, slopes[300])
	assert.Equal(t, 0.5, slopes[1023])

	jump, at := sample.MaxSlopeJump(slopes)
	assert.Equal(t, 1.0, jump)
	assert.Equal(t, 255, at, "jump between the cells [0,¼] and [¼,½]")
}

// TestSlopes_Errors covers the input checks.
func TestSlopes_Errors(t *testing.T) {
	_, err := sample.Slopes([]float64{0, 1}, []float64{0})
	assert.ErrorIs(t, err, sample.ErrLengthMismatch)

	_, err = sample.Slopes([]float64{0}, []float64{0})
	assert.ErrorIs(t, err, sample.ErrTooFewPoints)

	_, err = sample.Slopes([]float64{0, 0.5, 0.5}, []float64{0, 1, 2})
	assert.ErrorIs(t, err, sample.ErrNotIncreasing)
}

// TestMaxSlopeJump_Degenerate covers short inputs and a linear map.
func TestMaxSlopeJump_Degenerate(t *testing.T) {
	jump, at := sample.MaxSlopeJump(nil)
	assert.Equal(t, 0.0, jump)
	assert.Equal(t, -1, at)

	jump, at = sample.MaxSlopeJump([]float64{1, 1, 1})
	assert.Equal(t, 0.0, jump)
	assert.Equal(t, 0, at)
}
