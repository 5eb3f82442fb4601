// Package store reads and writes cross-reference tables as documents on
// disk. The format is chosen by file extension.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/replit/xref/internal/crossref"
	"github.com/replit/xref/internal/util"
)

// Read loads the document in filename and checks its version.
func Read(filename string) (*Document, error) {
	format, err := FormatOf(filename)
	if err != nil {
		return nil, err
	}

	var doc *Document
	if format == FormatSQLite {
		doc, err = readSQLite(filename)
	} else {
		doc, err = readText(filename, format)
	}
	if err != nil {
		return nil, err
	}

	if doc.Version == "" {
		doc.Version = CurrentVersion
	}
	if err := checkVersion(doc.Version); err != nil {
		return nil, errors.Wrap(err, filename)
	}
	util.Logger().Debugw("read document", "file", filename, "format", format, "lines", len(doc.Data))
	return doc, nil
}

func readText(filename string, format Format) (*Document, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "reading document")
	}
	doc, err := Decode(content, format)
	if err != nil {
		return nil, errors.Wrap(err, filename)
	}
	return doc, nil
}

// Decode parses a text document. FormatSQLite is not a text format.
func Decode(content []byte, format Format) (*Document, error) {
	var doc Document
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(content, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(content, &doc)
	case FormatJSON:
		err = json.Unmarshal(content, &doc)
	default:
		return nil, errors.Errorf("cannot decode %s documents from text", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", format)
	}
	return &doc, nil
}

// Encode renders doc in a text format. FormatSQLite is not a text
// format.
func Encode(doc *Document, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
			return nil, errors.Wrap(err, "encoding toml")
		}
		return buf.Bytes(), nil
	case FormatYAML:
		content, err := yaml.Marshal(doc)
		if err != nil {
			return nil, errors.Wrap(err, "encoding yaml")
		}
		return content, nil
	case FormatJSON:
		content, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "encoding json")
		}
		return append(content, '\n'), nil
	default:
		return nil, errors.Errorf("cannot encode %s documents as text", format)
	}
}

// Write stores doc in filename, replacing any existing file atomically
// and creating parent directories as needed. An empty version is
// written as CurrentVersion.
func Write(filename string, doc *Document) error {
	format, err := FormatOf(filename)
	if err != nil {
		return err
	}

	filename, err = filepath.Abs(filename)
	if err != nil {
		return errors.Wrap(err, "resolving document path")
	}
	directory, _ := filepath.Split(filename)
	if err := os.MkdirAll(directory, 0777); err != nil {
		return errors.Wrap(err, directory)
	}

	out := *doc
	if out.Version == "" {
		out.Version = CurrentVersion
	}

	if format == FormatSQLite {
		err = writeSQLite(filename, &out)
	} else {
		var content []byte
		content, err = Encode(&out, format)
		if err == nil {
			err = util.TryWriteAtomic(filename, content)
		}
	}
	if err != nil {
		return errors.Wrapf(err, "writing %s", filename)
	}
	util.Logger().Debugw("wrote document", "file", filename, "format", format)
	return nil
}

// Grid returns the document data in the layout of crossref.Table.Grid,
// so a Document can be passed to crossref.CopyGrid. An empty header
// cell means there is no key, so it becomes nil; empty values stay
// empty strings.
func (d *Document) Grid() [][]any {
	grid := make([][]any, len(d.Data))
	for i, line := range d.Data {
		grid[i] = make([]any, len(line))
		for j, text := range line {
			if text == "" && (i == 0 || j == 0) {
				continue
			}
			grid[i][j] = text
		}
	}
	return grid
}

// SetGrid replaces the document data with grid. nil cells become empty
// strings and everything else is formatted with fmt.
func (d *Document) SetGrid(grid [][]any) error {
	data := make([][]string, len(grid))
	for i, line := range grid {
		data[i] = make([]string, len(line))
		for j, cell := range line {
			if cell != nil {
				data[i][j] = fmt.Sprint(cell)
			}
		}
	}
	d.Data = data
	return nil
}

// Table loads the document into a new string table.
func (d *Document) Table(opts ...crossref.Option) (*crossref.Table[string, string, string], error) {
	t := crossref.New[string, string, string](opts...)
	if err := crossref.CopyGrid(t, d); err != nil {
		return nil, err
	}
	return t, nil
}

// FromTable returns a document holding every cell of t, with keys and
// values formatted with fmt.
func FromTable[R, C comparable, V any](title string, t *crossref.Table[R, C, V]) *Document {
	doc := &Document{Version: CurrentVersion, Title: title}
	doc.SetGrid(t.Grid())
	return doc
}
