package crossref

import "fmt"

// SetGrid replaces the whole table from a rectangular grid laid out with
// a header row and a header column:
//
//	[[nil,  c1,  c2 ],
//	 [r1,   v11, v12],
//	 [r2,   v21, v22]]
//
// grid[0][0] is ignored. grid[0][1:] are the column keys, grid[1:][0] the
// row keys, and the remaining cells are loaded as values. A nil grid
// clears the table.
//
// Nil header cells are skipped on both axes,
// together with the values in their row or column. A repeated header is
// skipped the same way, so its first occurrence wins. A nil value cell
// loads as the zero value of V.
//
// A ragged grid, or a header or value of the wrong dynamic type, fails
// with ErrInvalidArgument and leaves the table unchanged. The rebuild
// policy does not apply: every cell comes from the grid.
func (t *Table[R, C, V]) SetGrid(grid [][]any) error {
	if grid == nil {
		t.Clear()
		return nil
	}

	var (
		rows    axis[R]
		columns axis[C]
		colAt   []int
	)
	rows.indexes = make(map[R]int)
	columns.indexes = make(map[C]int)
	if len(grid) == 0 {
		t.rows, t.columns, t.data = rows, columns, map[R]map[C]V{}
		return nil
	}

	width := len(grid[0])
	for i := 1; i < width; i++ {
		key, ok, err := gridKey[C](grid[0][i])
		if err != nil {
			return invalidArgumentf("column header %d: %v", i, err)
		}
		if ok && columns.add(key) {
			colAt = append(colAt, i)
		}
	}

	data := make(map[R]map[C]V, len(grid)-1)
	for r := 1; r < len(grid); r++ {
		line := grid[r]
		if len(line) != width {
			return invalidArgumentf("grid row %d has %d cells, want %d", r, len(line), width)
		}
		if width == 0 {
			continue
		}
		key, ok, err := gridKey[R](line[0])
		if err != nil {
			return invalidArgumentf("row header %d: %v", r, err)
		}
		values := make(map[C]V, len(colAt))
		for j, c := range colAt {
			cell := line[c]
			if cell == nil {
				var zv V
				values[columns.keys[j]] = zv
				continue
			}
			v, isV := cell.(V)
			if !isV {
				return invalidArgumentf("cell [%d][%d] is %T", r, c, cell)
			}
			values[columns.keys[j]] = v
		}
		if ok && rows.add(key) {
			data[key] = values
		}
	}

	t.rows, t.columns, t.data = rows, columns, data
	return nil
}

// gridKey converts a header cell to a key. ok is false for nil, including
// a typed nil pointer.
func gridKey[K comparable](cell any) (K, bool, error) {
	var zk K
	if cell == nil {
		return zk, false, nil
	}
	key, isK := cell.(K)
	if !isK {
		return zk, false, fmt.Errorf("got %T, want %T", cell, zk)
	}
	return key, !isNilKey(key), nil
}

// Grid returns the table in the layout accepted by SetGrid. grid[0][0] is
// nil. The result shares no memory with the table.
func (t *Table[R, C, V]) Grid() [][]any {
	grid := make([][]any, 0, t.rows.len()+1)
	header := make([]any, 0, t.columns.len()+1)
	header = append(header, nil)
	for _, c := range t.columns.keys {
		header = append(header, c)
	}
	grid = append(grid, header)
	for _, r := range t.rows.keys {
		line := make([]any, 0, t.columns.len()+1)
		line = append(line, r)
		for _, c := range t.columns.keys {
			line = append(line, t.data[r][c])
		}
		grid = append(grid, line)
	}
	return grid
}

// GridReader is implemented by sources that can produce a grid.
type GridReader interface {
	Grid() [][]any
}

// GridWriter is implemented by sinks that accept a grid.
type GridWriter interface {
	SetGrid(grid [][]any) error
}

// CopyGrid loads dst from src. It returns ErrUnsupported if src cannot
// produce a grid.
func CopyGrid(dst GridWriter, src any) error {
	r, ok := src.(GridReader)
	if !ok {
		return fmt.Errorf("%w: %T has no grid read-back", ErrUnsupported, src)
	}
	return dst.SetGrid(r.Grid())
}
