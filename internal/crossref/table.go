// Package crossref implements a generic two-dimensional lookup table
// keyed by a row key and a column key.
//
// Both axes keep their keys in insertion order and reject duplicates.
// Every (row, column) pair on the current axes has exactly one value;
// this holds after every call, including calls that fail. All point
// access takes its arguments in (row, column) order.
//
// A Table is not safe for concurrent use. Callers that share one must
// synchronize access themselves.
package crossref

import (
	"fmt"
	"strings"
)

// Table is a cross-reference table with row keys of type R, column keys
// of type C, and cells of type V. The zero value is an empty table using
// the Wipe policy.
type Table[R, C comparable, V any] struct {
	rows    axis[R]
	columns axis[C]
	data    map[R]map[C]V
	policy  RebuildPolicy
}

// New returns an empty table with no rows and no columns.
func New[R, C comparable, V any](opts ...Option) *Table[R, C, V] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	return &Table[R, C, V]{policy: o.policy}
}

// NewWithRows returns a table with the given rows and no columns.
func NewWithRows[R, C comparable, V any](rows []R, opts ...Option) (*Table[R, C, V], error) {
	t := New[R, C, V](opts...)
	if err := t.SetRows(rows); err != nil {
		return nil, err
	}
	return t, nil
}

// NewWithAxes returns a table with the given rows and columns, with every
// cell set to the zero value of V.
func NewWithAxes[R, C comparable, V any](rows []R, columns []C, opts ...Option) (*Table[R, C, V], error) {
	t := New[R, C, V](opts...)
	if err := t.SetColumns(columns); err != nil {
		return nil, err
	}
	if err := t.SetRows(rows); err != nil {
		return nil, err
	}
	return t, nil
}

// Policy returns the rebuild policy of the table.
func (t *Table[R, C, V]) Policy() RebuildPolicy {
	return t.policy
}

// SetRows replaces the row axis. Nil keys and repeated keys are
// skipped; zero values such as 0 or "" are ordinary keys. A nil slice is rejected with ErrInvalidArgument; an empty one
// leaves the table with no rows. The cells are rebuilt according to the
// table's rebuild policy.
func (t *Table[R, C, V]) SetRows(rows []R) error {
	if rows == nil {
		return invalidArgumentf("nil row list")
	}
	t.rows = newAxis(rows)
	t.rebuild(t.policy == Preserve)
	return nil
}

// SetColumns replaces the column axis. It follows the same rules as
// SetRows.
func (t *Table[R, C, V]) SetColumns(columns []C) error {
	if columns == nil {
		return invalidArgumentf("nil column list")
	}
	t.columns = newAxis(columns)
	t.rebuild(t.policy == Preserve)
	return nil
}

// AddRows replaces the row axis with first followed by rest and returns
// the number of rows the table now has. Despite the name, the previous
// rows are discarded; use AppendRows to grow the axis.
func (t *Table[R, C, V]) AddRows(first R, rest ...R) int {
	t.rows = newAxis(append([]R{first}, rest...))
	t.rebuild(t.policy == Preserve)
	return t.rows.len()
}

// AddColumns replaces the column axis with first followed by rest. See
// AddRows.
func (t *Table[R, C, V]) AddColumns(first C, rest ...C) int {
	t.columns = newAxis(append([]C{first}, rest...))
	t.rebuild(t.policy == Preserve)
	return t.columns.len()
}

// AppendRows adds rows to the end of the row axis, keeping every existing
// cell regardless of the rebuild policy. It returns the number of rows
// actually added; nil and already present keys are skipped.
func (t *Table[R, C, V]) AppendRows(rows ...R) int {
	n := 0
	for _, r := range rows {
		if t.rows.add(r) {
			n++
		}
	}
	if n > 0 {
		t.rebuild(true)
	}
	return n
}

// AppendColumns adds columns to the end of the column axis. See
// AppendRows.
func (t *Table[R, C, V]) AppendColumns(columns ...C) int {
	n := 0
	for _, c := range columns {
		if t.columns.add(c) {
			n++
		}
	}
	if n > 0 {
		t.rebuild(true)
	}
	return n
}

// Clear removes all rows, columns and cells.
func (t *Table[R, C, V]) Clear() {
	t.rows.reset()
	t.columns.reset()
	t.data = nil
}

// rebuild regenerates the cell map from the current axes. When keep is
// set, cells present in the previous map are carried over.
func (t *Table[R, C, V]) rebuild(keep bool) {
	prev := t.data
	data := make(map[R]map[C]V, t.rows.len())
	for _, r := range t.rows.keys {
		old := prev[r]
		row := make(map[C]V, t.columns.len())
		for _, c := range t.columns.keys {
			var v V
			if keep {
				if ov, ok := old[c]; ok {
					v = ov
				}
			}
			row[c] = v
		}
		data[r] = row
	}
	t.data = data
}

// check returns a *KeyNotFoundError if either key is missing. The row is
// checked first.
func (t *Table[R, C, V]) check(row R, column C) error {
	if !t.rows.contains(row) {
		return &KeyNotFoundError{Axis: RowAxis, Key: row}
	}
	if !t.columns.contains(column) {
		return &KeyNotFoundError{Axis: ColumnAxis, Key: column}
	}
	return nil
}

// Get returns the value stored at (row, column). If either key is not on
// its axis, it returns a *KeyNotFoundError naming that axis.
func (t *Table[R, C, V]) Get(row R, column C) (V, error) {
	if err := t.check(row, column); err != nil {
		var zv V
		return zv, err
	}
	return t.data[row][column], nil
}

// MustGet is like Get but panics on a missing key.
func (t *Table[R, C, V]) MustGet(row R, column C) V {
	v, err := t.Get(row, column)
	if err != nil {
		panic(err)
	}
	return v
}

// Set stores value at (row, column). Set never adds keys: if either key
// is missing, it returns the same *KeyNotFoundError as Get and the table
// is not modified.
func (t *Table[R, C, V]) Set(row R, column C, value V) error {
	if err := t.check(row, column); err != nil {
		return err
	}
	t.data[row][column] = value
	return nil
}

// ContainsRowKey reports whether key is on the row axis.
func (t *Table[R, C, V]) ContainsRowKey(key R) bool {
	return t.rows.contains(key)
}

// ContainsColumnKey reports whether key is on the column axis.
func (t *Table[R, C, V]) ContainsColumnKey(key C) bool {
	return t.columns.contains(key)
}

// Rows returns a copy of the row keys in order.
func (t *Table[R, C, V]) Rows() []R {
	return t.rows.list()
}

// Columns returns a copy of the column keys in order.
func (t *Table[R, C, V]) Columns() []C {
	return t.columns.list()
}

func (t *Table[R, C, V]) NumRows() int { return t.rows.len() }

func (t *Table[R, C, V]) NumColumns() int { return t.columns.len() }

// RowIndex returns the position of key on the row axis, or -1.
func (t *Table[R, C, V]) RowIndex(key R) int {
	return t.rows.index(key)
}

// ColumnIndex returns the position of key on the column axis, or -1.
func (t *Table[R, C, V]) ColumnIndex(key C) int {
	return t.columns.index(key)
}

// Range calls fn for every cell in row-major axis order, stopping early
// if fn returns false. fn must not change the table's axes.
func (t *Table[R, C, V]) Range(fn func(row R, column C, value V) bool) {
	for _, r := range t.rows.keys {
		for _, c := range t.columns.keys {
			if !fn(r, c, t.data[r][c]) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the table, including its policy.
func (t *Table[R, C, V]) Clone() *Table[R, C, V] {
	c := &Table[R, C, V]{
		rows:    t.rows.clone(),
		columns: t.columns.clone(),
		policy:  t.policy,
	}
	c.data = make(map[R]map[C]V, len(t.data))
	for r, row := range t.data {
		cr := make(map[C]V, len(row))
		for k, v := range row {
			cr[k] = v
		}
		c.data[r] = cr
	}
	return c
}

// String returns a compact representation of the table for debugging.
func (t *Table[R, C, V]) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, r := range t.rows.keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v: {", r)
		for j, c := range t.columns.keys {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v: %v", c, t.data[r][c])
		}
		sb.WriteString("}")
	}
	sb.WriteString("}")
	return sb.String()
}
