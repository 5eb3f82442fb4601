package crossref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGridRoundTrip(t *testing.T) {
	tbl := New[string, int, int]()

	err := tbl.SetGrid([][]any{
		{nil, 1, 2},
		{"r1", 10, 20},
		{"r2", 30, 40},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"r1", "r2"}, tbl.Rows())
	assert.Equal(t, []int{1, 2}, tbl.Columns())
	assert.Equal(t, 20, tbl.MustGet("r1", 2))
	assert.Equal(t, 30, tbl.MustGet("r2", 1))

	assert.Equal(t, [][]any{
		{nil, 1, 2},
		{"r1", 10, 20},
		{"r2", 30, 40},
	}, tbl.Grid())
}

func TestSetGridReplacesPreviousContent(t *testing.T) {
	tbl := newChecklist(t, WithRebuildPolicy(Preserve))
	require.NoError(t, tbl.Set("alpha", 1, true))

	require.NoError(t, tbl.SetGrid([][]any{
		{nil, 1, 5},
		{"alpha", nil, true},
	}))

	assert.Equal(t, []string{"alpha"}, tbl.Rows())
	assert.Equal(t, []int{1, 5}, tbl.Columns())
	// the grid wins over the preserve policy
	assert.False(t, tbl.MustGet("alpha", 1))
	assert.True(t, tbl.MustGet("alpha", 5))
}

func TestSetGridSkipsNullHeaders(t *testing.T) {
	tbl := New[string, string, int]()

	// Row headers are skipped like column headers, along with their cells.
	require.NoError(t, tbl.SetGrid([][]any{
		{"ignored", "a", nil, "b"},
		{"r1", 1, 2, 4},
		{nil, 5, 6, 8},
		{"r2", 13, 14, 16},
	}))

	assert.Equal(t, []string{"r1", "r2"}, tbl.Rows())
	assert.Equal(t, []string{"a", "b"}, tbl.Columns())
	assert.Equal(t, 4, tbl.MustGet("r1", "b"))
	assert.Equal(t, 13, tbl.MustGet("r2", "a"))
	assert.Len(t, allCells(tbl), 4)
}

func TestSetGridKeepsZeroKeys(t *testing.T) {
	tbl := New[string, int, int]()

	require.NoError(t, tbl.SetGrid([][]any{
		{nil, 0, 1},
		{"", 1, 2},
		{"r", 3, 4},
	}))

	assert.Equal(t, []string{"", "r"}, tbl.Rows())
	assert.Equal(t, []int{0, 1}, tbl.Columns())
	assert.Equal(t, 1, tbl.MustGet("", 0))
	assert.Equal(t, 4, tbl.MustGet("r", 1))
}

func TestSetGridBitRates(t *testing.T) {
	tbl := New[int, int, int]()

	require.NoError(t, tbl.SetGrid(bitRateGrid))

	assert.Equal(t, []int{0, 1, 10, 11, 100, 101, 110, 111, 1000, 1001, 1010, 1011, 1100, 1101, 1110, 1111}, tbl.Rows())
	assert.Equal(t, []int{1111, 1110, 1101, 1011, 1010, 1001}, tbl.Columns())
	assert.Equal(t, 0, tbl.MustGet(0, 1111))
	assert.Equal(t, 32, tbl.MustGet(1, 1101))
	assert.Equal(t, 448, tbl.MustGet(1110, 1111))
	assert.Equal(t, 56, tbl.MustGet(11, 1011))
	assert.Equal(t, -1, tbl.MustGet(1111, 1001))
	assert.Equal(t, bitRateGrid, tbl.Grid())
}

func TestSetGridTypedNilHeader(t *testing.T) {
	a := "a"
	tbl := New[*string, string, int]()

	require.NoError(t, tbl.SetGrid([][]any{
		{nil, "x"},
		{(*string)(nil), 1},
		{&a, 2},
	}))

	assert.Equal(t, []*string{&a}, tbl.Rows())
	assert.Equal(t, 2, tbl.MustGet(&a, "x"))
}

func TestSetGridDuplicateHeadersFirstWins(t *testing.T) {
	tbl := New[string, string, int]()

	require.NoError(t, tbl.SetGrid([][]any{
		{nil, "a", "a", "b"},
		{"r1", 1, 2, 3},
		{"r1", 4, 5, 6},
	}))

	assert.Equal(t, []string{"r1"}, tbl.Rows())
	assert.Equal(t, []string{"a", "b"}, tbl.Columns())
	assert.Equal(t, 1, tbl.MustGet("r1", "a"))
	assert.Equal(t, 3, tbl.MustGet("r1", "b"))
}

func TestSetGridNilClears(t *testing.T) {
	tbl := newChecklist(t)

	require.NoError(t, tbl.SetGrid(nil))

	assert.Empty(t, tbl.Rows())
	assert.Empty(t, tbl.Columns())
	assert.False(t, tbl.ContainsRowKey("alpha"))
	assert.Equal(t, [][]any{{nil}}, tbl.Grid())
}

func TestSetGridEmpty(t *testing.T) {
	tbl := newChecklist(t)

	require.NoError(t, tbl.SetGrid([][]any{}))
	assert.Empty(t, tbl.Rows())
	assert.Empty(t, tbl.Columns())

	require.NoError(t, tbl.SetGrid([][]any{{nil, 1, 2}}))
	assert.Empty(t, tbl.Rows())
	assert.Equal(t, []int{1, 2}, tbl.Columns())

	require.NoError(t, tbl.SetGrid([][]any{{}, {}}))
	assert.Empty(t, tbl.Rows())
	assert.Empty(t, tbl.Columns())
}

func TestSetGridErrorsLeaveTable(t *testing.T) {
	tests := []struct {
		name string
		grid [][]any
	}{
		{"ragged", [][]any{{nil, 1, 2}, {"alpha", true}}},
		{"bad column header", [][]any{{nil, "one"}, {"alpha", true}}},
		{"bad row header", [][]any{{nil, 1}, {7, true}}},
		{"bad cell", [][]any{{nil, 1}, {"alpha", "yes"}}},
		{"bad cell in skipped row", [][]any{{nil, 1}, {nil, "yes"}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tbl := newChecklist(t)
			require.NoError(t, tbl.Set("beta", 3, true))
			before := tbl.Grid()

			err := tbl.SetGrid(tc.grid)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.Equal(t, before, tbl.Grid())
		})
	}
}

func TestGridOfEmptyTable(t *testing.T) {
	tbl := New[string, string, string]()
	assert.Equal(t, [][]any{{nil}}, tbl.Grid())
}

func TestCopyGrid(t *testing.T) {
	src := New[string, string, int]()
	require.NoError(t, src.SetGrid([][]any{{nil, "c"}, {"r", 3}}))

	dst := New[string, string, int]()
	require.NoError(t, CopyGrid(dst, src))
	assert.Equal(t, 3, dst.MustGet("r", "c"))

	err := CopyGrid(dst, struct{}{})
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Equal(t, 3, dst.MustGet("r", "c"))
}

// Audio bit rates in kbit/s by bitrate index (rows) and version and
// layer bits (columns). -1 marks a bad index.
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
