package table

// Style selects how a cell is coloured when printed to a terminal that
// supports it. Styles are ignored on plain output.
type Style int

const (
	// Plain cells are printed as is.
	Plain Style = iota

	// Heading is used for the header row.
	Heading

	// Key is used for the row-header column of a cross-reference
	// table.
	Key

	// Positive is used for true booleans.
	Positive

	// Negative is used for false booleans.
	Negative

	// Muted is used for cells holding a zero value.
	Muted
)

// Cell is one styled table cell.
type Cell struct {
	Text  string
	Style Style
}

// Table represents a set of simple tabular data. Tables have a list
// of header cells and a list of rows. Each row must be the same
// length as the list of header cells. Tables can be formatted nicely
// to stdout. Construct a table with New, FromStructs or FromCrossRef,
// and then use the AddRow, SortBy, and Print methods.
type Table struct {
	headers []string
	rows    [][]Cell
}
