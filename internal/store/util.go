package store

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-version"
	"github.com/pkg/errors"
)

// CurrentVersion is the document version written by this program.
const CurrentVersion = "1.0"

// SupportedVersions is the constraint a document version must satisfy
// to be read.
const SupportedVersions = ">= 1.0, < 2.0"

var supported = version.MustConstraints(version.NewConstraint(SupportedVersions))

// checkVersion returns an error unless v satisfies SupportedVersions.
func checkVersion(v string) error {
	parsed, err := version.NewVersion(v)
	if err != nil {
		return errors.Wrapf(err, "document version %q", v)
	}
	if !supported.Check(parsed) {
		return errors.Errorf("document version %s is not supported (want %s)", parsed, SupportedVersions)
	}
	return nil
}

// FormatOf picks the format of filename from its extension.
func FormatOf(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".sqlite", ".sqlite3", ".db":
		return FormatSQLite, nil
	default:
		return 0, errors.Errorf("%s: unknown document format (use .toml, .yaml, .json or .sqlite)", filename)
	}
}

// Location returns the document to use when filename is empty: the
// value of XREF_DOCUMENT, or xref.toml in the working directory.
func Location(filename string) string {
	if filename != "" {
		return filename
	}
	loc, ok := os.LookupEnv("XREF_DOCUMENT")
	if ok && loc != "" {
		return loc
	}
	return "xref.toml"
}
