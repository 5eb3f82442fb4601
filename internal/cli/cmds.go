package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/replit/xref/internal/crossref"
	"github.com/replit/xref/internal/store"
	"github.com/replit/xref/internal/table"
	"github.com/replit/xref/internal/util"
)

// printJSON writes v to stdout as one line of JSON.
func printJSON(v any) {
	outputB, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(outputB))
}

// sortOrder says how 'xref show' orders rows in table output.
type sortOrder struct {
	byRowKey bool
	column   string
}

// printCrossRef prints t under the given name. Rows are ordered by
// order in table output; JSON output always keeps the table's own
// order.
func printCrossRef[R, C comparable, V any](
	name string, t *crossref.Table[R, C, V], outputFormat outputFormat, order sortOrder,
) {
	switch outputFormat {
	case outputFormatTable:
		if name != "" {
			fmt.Println(name)
		}
		pretty := table.FromCrossRef(t, "")
		if order.column != "" {
			if !pretty.HasHeader(order.column) {
				util.Die("no such column: %s", order.column)
			}
			pretty.SortBy(order.column)
		} else if order.byRowKey {
			pretty.SortBy("")
		}
		if pretty.Len() == 0 {
			util.Log("(no rows)")
			return
		}
		pretty.Print()

	case outputFormatJSON:
		printJSON(namedGrid{Name: name, Grid: t.Grid()})
	}
}

// readDocument loads filename, or the default document if it is empty,
// and dies on failure.
func readDocument(filename string) (string, *store.Document) {
	filename = store.Location(filename)
	if !util.FileExists(filename) {
		util.Die("no such document: %s", filename)
	}
	doc, err := store.Read(filename)
	if err != nil {
		util.Die("%s", err)
	}
	return filename, doc
}

// documentTable loads doc into a string table and dies on failure.
func documentTable(doc *store.Document) *crossref.Table[string, string, string] {
	t, err := doc.Table()
	if err != nil {
		util.Die("%s", err)
	}
	return t
}

// runDemo implements 'xref demo'.
func runDemo(policy crossref.RebuildPolicy, outputFormat outputFormat) {
	rates, err := buildBitRates()
	if err != nil {
		util.Panicf("loading bit rates: %s", err)
	}
	printCrossRef("bit rates", rates, outputFormat, sortOrder{})

	checklist, err := buildChecklist(policy)
	if err != nil {
		util.Panicf("building checklist: %s", err)
	}
	printCrossRef("checklist", checklist, outputFormat, sortOrder{})

	n := shiftChecklist(checklist)
	util.Logger().Debugw("replaced checklist columns", "policy", policy, "columns", n)
	printCrossRef(
		fmt.Sprintf("checklist after replacing columns (%s)", policy),
		checklist, outputFormat, sortOrder{},
	)

	if _, err := checklist.Get("delta", 2); err != nil && outputFormat == outputFormatTable {
		util.ProgressMsg(fmt.Sprintf("get(delta, 2): %s", err))
	}

	weights, err := buildWeights(policy)
	if err != nil {
		util.Panicf("building weights: %s", err)
	}
	printCrossRef("weights", weights, outputFormat, sortOrder{})
	if err := rekeyWeights(weights); err != nil {
		util.Panicf("rekeying weights: %s", err)
	}
	printCrossRef("weights after columns A, B, C", weights, outputFormat, sortOrder{})

	products, err := buildMultiplication(5)
	if err != nil {
		util.Panicf("building multiplication table: %s", err)
	}
	printCrossRef("multiplication", products, outputFormat, sortOrder{})

	example, err := buildGridExample()
	if err != nil {
		util.Panicf("loading grid example: %s", err)
	}
	printCrossRef("grid", example, outputFormat, sortOrder{})
}

// runShow implements 'xref show'.
func runShow(filename string, outputFormat outputFormat, order sortOrder) {
	_, doc := readDocument(filename)
	printCrossRef(doc.Title, documentTable(doc), outputFormat, order)
}

// runInfo implements 'xref info'.
func runInfo(filename string, outputFormat outputFormat) {
	filename, doc := readDocument(filename)
	t := documentTable(doc)
	format, _ := store.FormatOf(filename)

	lines := []infoLine{
		{Field: "File", Value: filename},
		{Field: "Format", Value: format.String()},
		{Field: "Version", Value: doc.Version},
		{Field: "Title", Value: doc.Title},
		{Field: "Rows", Value: fmt.Sprint(t.NumRows())},
		{Field: "Columns", Value: fmt.Sprint(t.NumColumns())},
		{Field: "Row keys", Value: strings.Join(t.Rows(), ", ")},
		{Field: "Column keys", Value: strings.Join(t.Columns(), ", ")},
	}

	switch outputFormat {
	case outputFormatTable:
		nonempty := []infoLine{}
		for _, line := range lines {
			if line.Value != "" {
				nonempty = append(nonempty, line)
			}
		}
		pretty := table.FromStructs(nonempty)
		pretty.Print()

	case outputFormatJSON:
		printJSON(lines)
	}
}

// runGet implements 'xref get'.
func runGet(filename, row, column string) {
	_, doc := readDocument(filename)
	value, err := documentTable(doc).Get(row, column)
	if err != nil {
		util.Die("%s", err)
	}
	fmt.Println(value)
}

// runSet implements 'xref set'. The file is rewritten only if both keys
// exist.
func runSet(filename, row, column, value string) {
	filename, doc := readDocument(filename)
	t := documentTable(doc)
	if err := t.Set(row, column, value); err != nil {
		util.Die("%s", err)
	}

	updated := store.FromTable(doc.Title, t)
	updated.Version = doc.Version
	if err := store.Write(filename, updated); err != nil {
		util.Die("%s", err)
	}
	util.ProgressMsg(fmt.Sprintf("%s: set %s/%s", filename, row, column))
}

// runConvert implements 'xref convert'.
func runConvert(src, dst string) {
	if _, err := store.FormatOf(dst); err != nil {
		util.Die("%s", err)
	}
	_, doc := readDocument(src)
	if err := store.Write(dst, doc); err != nil {
		util.Die("%s", err)
	}
	util.ProgressMsg(util.QuoteCmd([]string{"convert", src, dst}))
}
