package store

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/replit/xref/internal/crossref"
)

func sampleDocument() *Document {
	return &Document{
		Title: "ports",
		Data: [][]string{
			{"", "http", "https"},
			{"dev", "8080", "8443"},
			{"prod", "80", "443"},
		},
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	for _, name := range []string{"doc.toml", "doc.yaml", "doc.yml", "doc.json", "doc.sqlite"} {
		t.Run(name, func(t *testing.T) {
			filename := filepath.Join(t.TempDir(), "nested", name)

			require.NoError(t, Write(filename, sampleDocument()))
			doc, err := Read(filename)
			require.NoError(t, err)

			assert.Equal(t, CurrentVersion, doc.Version)
			assert.Equal(t, "ports", doc.Title)
			assert.Equal(t, sampleDocument().Data, doc.Data)
		})
	}
}

func TestWriteSQLiteNormalizesKeys(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "doc.db")
	doc := &Document{Data: [][]string{
		{"", "a", "a", ""},
		{"r", "1", "2", "3"},
		{"", "4", "5", "6"},
	}}

	require.NoError(t, Write(filename, doc))
	got, err := Read(filename)
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"", "a"}, {"r", "1"}}, got.Data)
	assert.Equal(t, "", got.Title)
}

func TestWriteReplacesExisting(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "doc.sqlite")
	require.NoError(t, Write(filename, sampleDocument()))

	doc := sampleDocument()
	doc.Data[1][1] = "3000"
	require.NoError(t, Write(filename, doc))

	got, err := Read(filename)
	require.NoError(t, err)
	assert.Equal(t, "3000", got.Data[1][1])
}

func TestReadMissingFile(t *testing.T) {
	dir := t.TempDir()

	_, err := Read(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Read(filepath.Join(dir, "missing.sqlite"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadRejectsVersions(t *testing.T) {
	dir := t.TempDir()

	tests := map[string]string{
		"future.toml":  "version = \"2.1\"\ngrid = [[\"\"]]\n",
		"garbage.json": `{"version": "one", "grid": []}`,
	}
	for name, content := range tests {
		filename := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(filename, []byte(content), 0666))

		_, err := Read(filename)
		assert.Error(t, err, name)
	}
}

func TestReadDefaultsVersion(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "doc.yaml")
	content := "grid:\n- [\"\", c]\n- [r, v]\n"
	require.NoError(t, os.WriteFile(filename, []byte(content), 0666))

	doc, err := Read(filename)
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, doc.Version)
	assert.Equal(t, [][]string{{"", "c"}, {"r", "v"}}, doc.Data)
}

func TestReadMalformed(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "doc.toml")
	require.NoError(t, os.WriteFile(filename, []byte("grid = [[\n"), 0666))

	_, err := Read(filename)
	assert.Error(t, err)
}

func TestFormatOf(t *testing.T) {
	tests := map[string]Format{
		"a.toml":    FormatTOML,
		"a.YAML":    FormatYAML,
		"a.yml":     FormatYAML,
		"a.json":    FormatJSON,
		"a.sqlite3": FormatSQLite,
		"a.db":      FormatSQLite,
	}
	for name, want := range tests {
		got, err := FormatOf(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := FormatOf("a.csv")
	assert.Error(t, err)
	assert.Equal(t, "sqlite", FormatSQLite.String())
	assert.Equal(t, "unknown", Format(9).String())
}

func TestEncodeDecodeRejectSQLite(t *testing.T) {
	_, err := Encode(sampleDocument(), FormatSQLite)
	assert.Error(t, err)
	_, err = Decode(nil, FormatSQLite)
	assert.Error(t, err)
}

func TestLocation(t *testing.T) {
	t.Setenv("XREF_DOCUMENT", "")
	assert.Equal(t, "xref.toml", Location(""))
	assert.Equal(t, "given.json", Location("given.json"))

	t.Setenv("XREF_DOCUMENT", "/tmp/env.yaml")
	assert.Equal(t, "/tmp/env.yaml", Location(""))
}

func TestDocumentTable(t *testing.T) {
	tbl, err := sampleDocument().Table()
	require.NoError(t, err)

	assert.Equal(t, []string{"dev", "prod"}, tbl.Rows())
	assert.Equal(t, []string{"http", "https"}, tbl.Columns())
	assert.Equal(t, "443", tbl.MustGet("prod", "https"))

	_, err = (&Document{Data: [][]string{{"", "a"}, {"r"}}}).Table()
	assert.ErrorIs(t, err, crossref.ErrInvalidArgument)
}

func TestDocumentGridEmptyHeadersAreNil(t *testing.T) {
	doc := &Document{Data: [][]string{
		{"", "a", ""},
		{"", "1", ""},
		{"r", "", "2"},
	}}

	assert.Equal(t, [][]any{
		{nil, "a", nil},
		{nil, "1", ""},
		{"r", "", "2"},
	}, doc.Grid())

	tbl, err := doc.Table()
	require.NoError(t, err)
	assert.Equal(t, []string{"r"}, tbl.Rows())
	assert.Equal(t, []string{"a"}, tbl.Columns())
	assert.Equal(t, "", tbl.MustGet("r", "a"))
}

func TestReadSQLiteMissingMeta(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "doc.sqlite")
	require.NoError(t, Write(filename, sampleDocument()))

	db, err := sql.Open("sqlite3", filename)
	require.NoError(t, err)
	_, err = db.Exec(`DROP TABLE meta`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = Read(filename)
	assert.ErrorContains(t, err, "reading meta")
}

func TestFromTable(t *testing.T) {
	tbl, err := crossref.NewWithAxes[string, int, bool]([]string{"x"}, []int{1, 2})
	require.NoError(t, err)
	require.NoError(t, tbl.Set("x", 2, true))

	doc := FromTable("flags", tbl)

	assert.Equal(t, CurrentVersion, doc.Version)
	assert.Equal(t, "flags", doc.Title)
	assert.Equal(t, [][]string{{"", "1", "2"}, {"x", "false", "true"}}, doc.Data)
}
