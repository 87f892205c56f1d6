// SPDX-License-Identifier: MIT

package sample

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Table is an ordered set of equally long named columns.
type Table struct {
	names   []string
	columns [][]float64
	index   map[string]int
}

// NewTable returns a table whose first column is named xName.
func NewTable(xName string, xs []float64) *Table {
	t := &Table{index: make(map[string]int)}
	t.names = append(t.names, xName)
	t.columns = append(t.columns, xs)
	t.index[xName] = 0

	return t
}

// AddColumn appends a column.
//
// Errors:
//   - ErrDuplicateColumn if name is taken.
//   - ErrLengthMismatch if values differ in length from the first column.
func (t *Table) AddColumn(name string, values []float64) error {
	if _, ok := t.index[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
	}
	if len(values) != t.Rows() {
		return fmt.Errorf("%w: column %q has %d rows, want %d", ErrLengthMismatch, name, len(values), t.Rows())
	}
	t.index[name] = len(t.names)
	t.names = append(t.names, name)
	t.columns = append(t.columns, values)

	return nil
}

// Column returns the values of the named column.
func (t *Table) Column(name string) ([]float64, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}

	return t.columns[i], true
}

// Names returns the column names in order.
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)

	return out
}

// Rows returns the number of rows.
func (t *Table) Rows() int { return len(t.columns[0]) }

// WriteCSV writes a header line and one record per row. Values use the
// shortest representation that round-trips.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.names); err != nil {
		return fmt.Errorf("sample: write header: %w", err)
	}

	record := make([]string, len(t.columns))
	for r := 0; r < t.Rows(); r++ {
		for c, col := range t.columns {
			record[c] = strconv.FormatFloat(col[r], 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("sample: write row %d: %w", r, err)
		}
	}
	cw.Flush()

	return cw.Error()
}
