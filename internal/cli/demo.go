package cli

import (
	"github.com/replit/xref/internal/crossref"
)

var (
	checklistRows    = []string{"alpha", "beta", "gamma"}
	checklistColumns = []int{1, 2, 3}
)

// buildChecklist returns a 3x3 table of tasks by day with the diagonal
// ticked.
func buildChecklist(policy crossref.RebuildPolicy) (*crossref.Table[string, int, bool], error) {
	t, err := crossref.NewWithAxes[string, int, bool](
		checklistRows, checklistColumns, crossref.WithRebuildPolicy(policy),
	)
	if err != nil {
		return nil, err
	}
	for i, r := range checklistRows {
		if err := t.Set(r, checklistColumns[i], true); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// shiftChecklist replaces the columns of t with 2, 3 and 4. Whether the
// ticks on days 2 and 3 survive depends on the table's policy.
func shiftChecklist(t *crossref.Table[string, int, bool]) int {
	return t.AddColumns(2, 3, 4)
}

// buildMultiplication returns the n by n multiplication table.
func buildMultiplication(n int) (*crossref.Table[int, int, int], error) {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i + 1
	}
	t, err := crossref.NewWithAxes[int, int, int](keys, keys)
	if err != nil {
		return nil, err
	}
	for _, r := range keys {
		for _, c := range keys {
			if err := t.Set(r, c, r*c); err != nil {
				return nil, err
			}
		}
	}
	return t, nil
}

// buildGridExample loads a small table from a grid with a null corner.
func buildGridExample() (*crossref.Table[string, int, int], error) {
	t := crossref.New[string, int, int]()
	err := t.SetGrid([][]any{
		{nil, 1, 2},
		{"r1", 10, 20},
		{"r2", 30, 40},
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// bitRateGrid holds audio bit rates in kbit/s by bitrate index (rows)
// and version and layer bits (columns). -1 marks a bad index.
var bitRateGrid = [][]any{
	{nil, 1111, 1110, 1101, 1011, 1010, 1001},
	{0, 0, 0, 0, 0, 0, 0},
	{1, 32, 32, 32, 32, 8, 8},
	{10, 64, 48, 40, 48, 16, 16},
	{11, 96, 56, 48, 56, 24, 24},
	{100, 128, 64, 56, 64, 32, 32},
	{101, 160, 80, 64, 80, 40, 40},
	{110, 192, 96, 80, 96, 48, 48},
	{111, 224, 112, 96, 112, 56, 56},
	{1000, 256, 128, 112, 128, 64, 64},
	{1001, 288, 160, 128, 144, 80, 80},
	{1010, 320, 192, 160, 160, 96, 96},
	{1011, 352, 224, 192, 176, 112, 112},
	{1100, 384, 256, 224, 192, 128, 128},
	{1101, 416, 320, 256, 224, 144, 144},
	{1110, 448, 384, 320, 256, 160, 160},
	{1111, -1, -1, -1, -1, -1, -1},
}

// buildBitRates loads bitRateGrid into a table.
func buildBitRates() (*crossref.Table[int, int, int], error) {
	t := crossref.New[int, int, int]()
	if err := t.SetGrid(bitRateGrid); err != nil {
		return nil, err
	}
	return t, nil
}

// buildWeights returns an X/Y/Z table with its anti-diagonal set to 1.5.
func buildWeights(policy crossref.RebuildPolicy) (*crossref.Table[string, string, float64], error) {
	t := crossref.New[string, string, float64](crossref.WithRebuildPolicy(policy))
	t.AddColumns("X", "Y", "Z")
	t.AddRows("X", "Y", "Z")
	for _, cell := range [][2]string{{"X", "Z"}, {"Y", "Y"}, {"Z", "X"}} {
		if err := t.Set(cell[0], cell[1], 1.5); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// rekeyWeights replaces the columns of t with A, B and C and sets the
// new diagonal to 2.1. None of the old cells survive, whatever the
// policy, because no column key is kept.
func rekeyWeights(t *crossref.Table[string, string, float64]) error {
	t.AddColumns("A", "B", "C")
	for _, cell := range [][2]string{{"X", "A"}, {"Y", "B"}, {"Z", "C"}} {
		if err := t.Set(cell[0], cell[1], 2.1); err != nil {
			return err
		}
	}
	return nil
}
