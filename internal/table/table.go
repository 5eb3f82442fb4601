// Package table provides a simple API for outputting tabular data to
// stdout. It is used to implement --format=table.
package table

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"reflect"
	"sort"
	"strings"

	"github.com/muesli/termenv"
	"github.com/replit/xref/internal/config"
	"github.com/replit/xref/internal/crossref"
	"github.com/replit/xref/internal/util"
	"golang.org/x/term"
)

// New creates a new table with the given headers. The table has no
// rows; add them with AddRow. The headers should all be unique.
func New(headers ...string) Table {
	seen := map[string]bool{}
	for _, header := range headers {
		if seen[header] {
			util.Panicf("duplicate table header: %s", header)
		} else {
			seen[header] = true
		}
	}
	return Table{headers: headers}
}

// FromStructs creates a new table from the given slice of structs.
// The table headers are generated from the struct field reflection
// metadata: each struct field must have a reflection metadata key
// "pretty" whose value is the header to display. Fields that are empty
// in every struct are left out. String fields are used as table cells
// directly, slices are joined with commas, and anything else goes
// through fmt.
func FromStructs(structs interface{}) Table {
	sv := reflect.ValueOf(structs)
	st := reflect.TypeOf(structs).Elem()

	indices := []int{}
	headers := []string{}
	for i := 0; i < st.NumField(); i++ {
		nonempty := false
		for j := 0; j < sv.Len(); j++ {
			if !sv.Index(j).Field(i).IsZero() {
				nonempty = true
				break
			}
		}
		if !nonempty {
			continue
		}
		indices = append(indices, i)
		header := st.Field(i).Tag.Get("pretty")
		headers = append(headers, header)
	}

	t := New(headers...)
	for j := 0; j < sv.Len(); j++ {
		row := []string{}
		for _, i := range indices {
			var value string
			rfield := sv.Index(j).Field(i)
			switch rfield.Kind() {
			case reflect.String:
				value = rfield.String()
			case reflect.Slice:
				parts := []string{}
				for j := 0; j < rfield.Len(); j++ {
					parts = append(parts, fmt.Sprint(rfield.Index(j).Interface()))
				}
				value = strings.Join(parts, ", ")
			default:
				value = fmt.Sprint(rfield.Interface())
			}
			row = append(row, value)
		}
		t.AddRow(row...)
	}
	return t
}

// FromCrossRef creates a table showing every cell of xt. The first
// header is corner, followed by the column keys; each row starts with
// its row key. Cells are styled by value: booleans are Positive or
// Negative and other zero values are Muted.
func FromCrossRef[R, C comparable, V any](xt *crossref.Table[R, C, V], corner string) Table {
	headers := []string{corner}
	for _, c := range xt.Columns() {
		header := fmt.Sprint(c)
		if header == corner {
			header = fmt.Sprintf("%q", header)
		}
		headers = append(headers, header)
	}
	t := New(headers...)
	for _, r := range xt.Rows() {
		row := []Cell{{Text: fmt.Sprint(r), Style: Key}}
		for _, c := range xt.Columns() {
			row = append(row, valueCell(xt.MustGet(r, c)))
		}
		t.AddCells(row...)
	}
	return t
}

func valueCell(v any) Cell {
	cell := Cell{Text: fmt.Sprint(v)}
	rv := reflect.ValueOf(v)
	switch {
	case rv.Kind() == reflect.Bool && rv.Bool():
		cell.Style = Positive
	case rv.Kind() == reflect.Bool:
		cell.Style = Negative
	case !rv.IsValid() || rv.IsZero():
		cell.Style = Muted
	}
	return cell
}

// AddRow adds a row of plain cells at the end of a table. The length of
// the row must be the same as the number of headers in the table, or a
// panic will be generated.
func (t *Table) AddRow(row ...string) {
	cells := make([]Cell, len(row))
	for i, text := range row {
		cells[i] = Cell{Text: text}
	}
	t.AddCells(cells...)
}

// AddCells is like AddRow but keeps the style of each cell.
func (t *Table) AddCells(row ...Cell) {
	if len(row) != len(t.headers) {
		util.Panicf(
			"wrong number of columns in table row (%d != %d)",
			len(row), len(t.headers),
		)
	}
	t.rows = append(t.rows, row)
}

// Len returns the number of rows, not counting the header.
func (t *Table) Len() int {
	return len(t.rows)
}

// SortBy sorts a table by the column with the given header. The
// header must exist in the table, or a panic is generated. Since
// tables cannot have duplicate headers, any column can be specified
// unambiguously. Rows that compare equal keep their order.
func (t *Table) SortBy(header string) {
	index := -1
	for i := range t.headers {
		if t.headers[i] == header {
			index = i
			break
		}
	}
	if index < 0 {
		util.Panicf("no such header: %s", header)
	}
	sort.SliceStable(t.rows, func(i, j int) bool {
		return t.rows[i][index].Text < t.rows[j][index].Text
	})
}

// HasHeader reports whether header names a column of the table.
func (t *Table) HasHeader(header string) bool {
	for _, h := range t.headers {
		if h == header {
			return true
		}
	}
	return false
}

// ColorProfile returns the colour profile to print with, according to
// config.Color. In "auto" mode colour is used only when stdout is a
// terminal and the environment (NO_COLOR, TERM) allows it.
func ColorProfile() termenv.Profile {
	switch config.Color {
	case "never":
		return termenv.Ascii
	case "always":
		p := termenv.NewOutput(os.Stdout).ColorProfile()
		if p == termenv.Ascii {
			return termenv.ANSI
		}
		return p
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return termenv.Ascii
	}
	return termenv.NewOutput(os.Stdout).EnvColorProfile()
}

// Render formats the table as text, aligning columns by inserting
// whitespace. Styles are applied with the given profile; padding is
// computed on the unstyled text. It returns the text and the width of
// the widest line.
func (t *Table) Render(profile termenv.Profile) (string, int) {
	out := termenv.NewOutput(io.Discard, termenv.WithProfile(profile))

	widths := make([]int, len(t.headers))
	for j := range t.headers {
		widths[j] = len([]rune(t.headers[j]))
	}
	for i := range t.rows {
		for j := range t.rows[i] {
			if n := len([]rune(t.rows[i][j].Text)); n > widths[j] {
				widths[j] = n
			}
		}
	}

	lines := []string{}
	fields := make([]string, len(t.headers))
	for j := range t.headers {
		fields[j] = pad(out, Cell{Text: t.headers[j], Style: Heading}, widths[j])
	}
	lines = append(lines, strings.TrimRight(strings.Join(fields, "   "), " "))
	for j := range t.headers {
		fields[j] = strings.Repeat("-", widths[j])
	}
	lines = append(lines, strings.Join(fields, "   "))
	for i := range t.rows {
		for j := range t.rows[i] {
			fields[j] = pad(out, t.rows[i][j], widths[j])
		}
		lines = append(lines, strings.TrimRight(strings.Join(fields, "   "), " "))
	}

	// The dashed rule is always the widest line.
	totalWidth := len([]rune(lines[1]))
	return strings.Join(lines, "\n") + "\n", totalWidth
}

func pad(out *termenv.Output, cell Cell, width int) string {
	padding := width - len([]rune(cell.Text))
	return styled(out, cell) + strings.Repeat(" ", padding)
}

func styled(out *termenv.Output, cell Cell) string {
	s := out.String(cell.Text)
	switch cell.Style {
	case Heading:
		s = s.Bold()
	case Key:
		s = s.Foreground(out.Color("6"))
	case Positive:
		s = s.Foreground(out.Color("2"))
	case Negative:
		s = s.Foreground(out.Color("1"))
	case Muted:
		s = s.Faint()
	default:
		return cell.Text
	}
	return s.String()
}

// printOrPage either prints text to stdout or invokes the 'less'
// utility to display it. 'less' is invoked if stdout is connected to
// a tty, the provided width is too wide for the tty, and 'less' is
// actually installed.
func printOrPage(text string, width int) {
	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < termWidth {
		fmt.Print(text)
		return
	}

	less, err := exec.LookPath("less")
	if err != nil {
		fmt.Print(text)
		return
	}

	args := []string{"less", "-S", "-R"}
	util.ProgressMsg(util.QuoteCmd(args))

	cmd := exec.Cmd{
		Path: less,
		Args: args,
		// Normally, LANG or equivalent environment variables
		// will be set, so less will use the right charset out
		// of the box. Unfortunately this doesn't happen in
		// Docker, so we have to configure less manually
		// (otherwise it will display some non-ASCII
		// characters as escape sequences). See the man page
		// for less.
		Env:    append(os.Environ(), "LESSCHARSET=utf-8"),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	stdin, err := cmd.StdinPipe()
	if err != nil {
		util.Die("connecting pipe to pager stdin: %s", err)
	}

	if err := cmd.Start(); err != nil {
		util.Die("starting pager: %s", err)
	}

	if _, err := io.WriteString(stdin, text); err != nil {
		util.Die("writing to pager: %s", err)
	}
	if err := stdin.Close(); err != nil {
		util.Die("closing pipe to pager stdin: %s", err)
	}

	if err := cmd.Wait(); err != nil {
		util.Die("running pager: %s", err)
	}
}

// Print writes the table to stdout. If the table is too wide for the
// current terminal, and the 'less' utility is installed, Print invokes
// it with the -S option to truncate long lines and allow horizontal
// scrolling.
func (t *Table) Print() {
	text, width := t.Render(ColorProfile())
	printOrPage(text, width)
}
