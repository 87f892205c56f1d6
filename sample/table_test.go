package sample_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/minkowski/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTable_WriteCSV checks header, ordering and number formatting.
func TestTable_WriteCSV(t *testing.T) {
	tbl := sample.NewTable("x", []float64{0, 0.5, 1})
	require.NoError(t, tbl.AddColumn("a", []float64{0, 0.75, 1}))
	require.NoError(t, tbl.AddColumn("conj_a", []float64{0, 2.0 / 3, 1}))

	var buf bytes.Buffer
	require.NoError(t, tbl.WriteCSV(&buf))
	assert.Equal(t, "x,a,conj_a\n0,0,0\n0.5,0.75,0.6666666666666666\n1,1,1\n", buf.String())
	assert.Equal(t, []string{"x", "a", "conj_a"}, tbl.Names())
	assert.Equal(t, 3, tbl.Rows())
}

// TestTable_AddColumnErrors checks duplicate names and ragged columns.
func TestTable_AddColumnErrors(t *testing.T) {
	tbl := sample.NewTable("x", []float64{0, 1})
	assert.ErrorIs(t, tbl.AddColumn("x", []float64{0, 1}), sample.ErrDuplicateColumn)
	assert.ErrorIs(t, tbl.AddColumn("y", []float64{0}), sample.ErrLengthMismatch)

	col, ok := tbl.Column("x")
	require.True(t, ok)
	assert.Equal(t, []float64{0, 1}, col)
	_, ok = tbl.Column("y")
	assert.False(t, ok)
}
