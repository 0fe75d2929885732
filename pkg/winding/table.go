package winding

import "math"

// Invalid marks an unassigned winding number.
const Invalid = math.MaxInt

// Table is a flat integer table with a fixed number of columns per
// row. Per-patch and per-face winding tables hold 2*numLabels columns
// (front, back per label); per-cell tables hold numLabels.
type Table struct {
	Rows, Cols int
	v          []int
}

// NewTable returns a Rows x Cols table with every entry Invalid.
func NewTable(rows, cols int) Table {
	t := Table{Rows: rows, Cols: cols, v: make([]int, rows*cols)}
	for i := range t.v {
		t.v[i] = Invalid
	}
	return t
}

// NewZeroTable returns a Rows x Cols table with every entry zero.
func NewZeroTable(rows, cols int) Table {
	return Table{Rows: rows, Cols: cols, v: make([]int, rows*cols)}
}

// At returns the entry at (r, c).
func (t Table) At(r, c int) int {
	return t.v[r*t.Cols+c]
}

// Set stores x at (r, c).
func (t Table) Set(r, c, x int) {
	t.v[r*t.Cols+c] = x
}

// Row returns row r as a slice sharing the table's storage.
func (t Table) Row(r int) []int {
	return t.v[r*t.Cols : (r+1)*t.Cols]
}

// ZeroRow sets every entry of row r to zero.
func (t Table) ZeroRow(r int) {
	row := t.Row(r)
	for i := range row {
		row[i] = 0
	}
}

// RowAssigned reports whether no entry of row r is Invalid.
func (t Table) RowAssigned(r int) bool {
	for _, x := range t.Row(r) {
		if x == Invalid {
			return false
		}
	}
	return true
}

// Assigned reports whether no entry of the whole table is Invalid.
func (t Table) Assigned() bool {
	for _, x := range t.v {
		if x == Invalid {
			return false
		}
	}
	return true
}

// Front returns the winding number on the front side of row r for the
// given label.
func (t Table) Front(r, label int) int {
	return t.At(r, 2*label)
}

// Back returns the winding number on the back side of row r for the
// given label.
func (t Table) Back(r, label int) int {
	return t.At(r, 2*label+1)
}
