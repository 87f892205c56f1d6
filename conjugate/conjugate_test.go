package conjugate_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/minkowski/conjugate"
	"github.com/katalvlaran/minkowski/question"
	"github.com/katalvlaran/minkowski/treemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConjugate_Endpoints checks 0 and 1 stay fixed for both generators.
func TestConjugate_Endpoints(t *testing.T) {
	for _, d := range []treemap.Dictionary{treemap.GeneratorA(), treemap.GeneratorB()} {
		c := conjugate.New(treemap.MustBuild(d))
		for _, x := range []float64{0, 1} {
			y, err := c.Apply(x)
			require.NoError(t, err)
			assert.Equal(t, x, y)
		}
	}
}

// TestConjugate_KnownValues checks points where ? is exact: ?(1/2) = 1/2.
func TestConjugate_KnownValues(t *testing.T) {
	a := conjugate.New(treemap.MustBuild(treemap.GeneratorA()))
	y, err := a.Apply(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3, y, 1e-12, "A(1/2) = 3/4 and ?⁻¹(3/4) = 2/3")

	b := conjugate.New(treemap.MustBuild(treemap.GeneratorB()))
	y, err = b.Apply(0.5)
	require.NoError(t, err)
	assert.Equal(t, 0.5, y, "B fixes the right half")
}

// TestConjugate_FixesRightHalfForB checks B conjugate is the identity on
// [1/2, 1] up to rounding, since B is.
func TestConjugate_FixesRightHalfForB(t *testing.T) {
	b := conjugate.New(treemap.MustBuild(treemap.GeneratorB()))
	for k := 0; k <= 64; k++ {
		x := 0.5 + float64(k)/128
		y, err := b.Apply(x)
		require.NoError(t, err)
		assert.InDelta(t, x, y, 1e-6, "x=%v", x)
	}
}

// TestConjugate_Monotone checks the conjugated maps are non-decreasing.
func TestConjugate_Monotone(t *testing.T) {
	const steps = 1 << 8
	for _, d := range []treemap.Dictionary{treemap.GeneratorA(), treemap.GeneratorB()} {
		c := conjugate.New(treemap.MustBuild(d))
		prev := 0.0
		for k := 1; k <= steps; k++ {
			y, err := c.Apply(float64(k) / steps)
			require.NoError(t, err)
			require.GreaterOrEqual(t, y, prev-1e-7, "x=%v", float64(k)/steps)
			prev = y
		}
	}
}

// TestConjugate_IdentityMap checks conjugating the identity returns ?⁻¹∘? .
func TestConjugate_IdentityMap(t *testing.T) {
	id := conjugate.MapperFunc(func(x float64) float64 { return x })
	c := conjugate.New(id, conjugate.WithDepth(20))
	for _, x := range []float64{0.1, 0.3, 0.5, 0.7} {
		y, err := c.Apply(x)
		require.NoError(t, err)
		assert.Equal(t, question.Inverse(question.Forward(x, 20), 20), y)
		assert.InDelta(t, x, y, 1e-6)
	}
}

// TestConjugate_PropagatesErrors checks mapper failures are wrapped.
func TestConjugate_PropagatesErrors(t *testing.T) {
	m, err := treemap.Build(treemap.Dictionary{{Source: "1", Target: "1"}}, treemap.WithoutValidation())
	require.NoError(t, err)

	c := conjugate.New(m)
	y, err := c.Apply(0.25)
	assert.True(t, errors.Is(err, treemap.ErrNoMatchingRule))
	assert.True(t, math.IsNaN(y), "failed points are NaN, not 0")

	y, err = c.Apply(0.5)
	require.NoError(t, err)
	assert.Equal(t, 0.5, y)
}

// TestOptions covers depth configuration.
func TestOptions(t *testing.T) {
	id := conjugate.MapperFunc(func(x float64) float64 { return x })
	assert.Equal(t, conjugate.DefaultDepth, conjugate.New(id).Depth())
	assert.Equal(t, 7, conjugate.New(id, conjugate.WithDepth(7)).Depth())
	assert.Panics(t, func() { conjugate.WithDepth(-1) })

	zero := conjugate.New(id, conjugate.WithDepth(0))
	y, err := zero.Apply(0.3)
	require.NoError(t, err)
	assert.Equal(t, 0.3, y, "depth 0 leaves ? and ?⁻¹ as identities")
}
