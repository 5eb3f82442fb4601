package store

// Format is a file format for a Document.
type Format int

// Values for Format.
const (
	FormatTOML Format = iota
	FormatYAML
	FormatJSON
	FormatSQLite
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	case FormatSQLite:
		return "sqlite"
	default:
		return "unknown"
	}
}

// Document is a cross-reference table as written to disk. Data uses the
// header-row and header-column layout of crossref.Table.SetGrid: the
// first line holds the column keys after a placeholder cell, and every
// following line starts with its row key.
type Document struct {

	// The version of the document format. Documents outside
	// SupportedVersions are rejected when read. An empty version is
	// read as CurrentVersion.
	Version string `json:"version" toml:"version" yaml:"version"`

	// A free-form title, shown by 'xref info'.
	Title string `json:"title,omitempty" toml:"title,omitempty" yaml:"title,omitempty"`

	// The grid of keys and values.
	Data [][]string `json:"grid" toml:"grid" yaml:"grid"`
}
