package store

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"github.com/pkg/errors"

	// Registers the "sqlite3" driver.
	_ "github.com/mattn/go-sqlite3"
)

const sqliteSchema = `
CREATE TABLE meta (
	name  TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE row_keys (
	pos     INTEGER PRIMARY KEY,
	row_key TEXT NOT NULL UNIQUE
);
CREATE TABLE column_keys (
	pos        INTEGER PRIMARY KEY,
	column_key TEXT NOT NULL UNIQUE
);
CREATE TABLE cells (
	row_key    TEXT NOT NULL REFERENCES row_keys (row_key),
	column_key TEXT NOT NULL REFERENCES column_keys (column_key),
	value      TEXT NOT NULL,
	PRIMARY KEY (row_key, column_key)
);
`

// writeSQLite writes doc as a SQLite database. Keys are normalized the
// way crossref.Table normalizes them, so the row_keys and column_keys
// tables hold each key once. The database is built in a temporary file
// next to filename and then moved into place.
func writeSQLite(filename string, doc *Document) error {
	t, err := doc.Table()
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(filename), ".xref-*.sqlite")
	if err != nil {
		return errors.Wrap(err, "creating temporary database")
	}
	tmpName := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpName)

	db, err := sql.Open("sqlite3", tmpName)
	if err != nil {
		return errors.Wrap(err, "opening database")
	}

	err = func() error {
		defer db.Close()
		if _, err := db.Exec(sqliteSchema); err != nil {
			return errors.Wrap(err, "creating schema")
		}
		tx, err := db.Begin()
		if err != nil {
			return err
		}
		defer tx.Rollback()

		if _, err := tx.Exec(`INSERT INTO meta (name, value) VALUES ('version', ?), ('title', ?)`, doc.Version, doc.Title); err != nil {
			return errors.Wrap(err, "inserting meta")
		}
		for i, r := range t.Rows() {
			if _, err := tx.Exec(`INSERT INTO row_keys (pos, row_key) VALUES (?, ?)`, i, r); err != nil {
				return errors.Wrapf(err, "inserting row %q", r)
			}
		}
		for i, c := range t.Columns() {
			if _, err := tx.Exec(`INSERT INTO column_keys (pos, column_key) VALUES (?, ?)`, i, c); err != nil {
				return errors.Wrapf(err, "inserting column %q", c)
			}
		}
		var cellErr error
		t.Range(func(r, c, v string) bool {
			_, cellErr = tx.Exec(`INSERT INTO cells (row_key, column_key, value) VALUES (?, ?, ?)`, r, c, v)
			return cellErr == nil
		})
		if cellErr != nil {
			return errors.Wrap(cellErr, "inserting cells")
		}
		return tx.Commit()
	}()
	if err != nil {
		return err
	}

	return atomic.ReplaceFile(tmpName, filename)
}

// readSQLite reads a database written by writeSQLite.
func readSQLite(filename string) (*Document, error) {
	if _, err := os.Stat(filename); err != nil {
		return nil, errors.Wrap(err, "reading document")
	}
	db, err := sql.Open("sqlite3", "file:"+filename+"?mode=ro")
	if err != nil {
		return nil, errors.Wrap(err, filename)
	}
	defer db.Close()

	doc := &Document{}
	meta, err := db.Query(`SELECT name, value FROM meta`)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: reading meta", filename)
	}
	for meta.Next() {
		var name, value string
		if err := meta.Scan(&name, &value); err != nil {
			meta.Close()
			return nil, errors.Wrapf(err, "%s: reading meta", filename)
		}
		switch name {
		case "version":
			doc.Version = value
		case "title":
			doc.Title = value
		}
	}
	err = meta.Err()
	meta.Close()
	if err != nil {
		return nil, errors.Wrapf(err, "%s: reading meta", filename)
	}

	rows, err := queryKeys(db, `SELECT row_key FROM row_keys ORDER BY pos`)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: reading rows", filename)
	}
	columns, err := queryKeys(db, `SELECT column_key FROM column_keys ORDER BY pos`)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: reading columns", filename)
	}

	rowAt := make(map[string]int, len(rows))
	colAt := make(map[string]int, len(columns))
	doc.Data = make([][]string, len(rows)+1)
	doc.Data[0] = append([]string{""}, columns...)
	for i, r := range rows {
		rowAt[r] = i + 1
		doc.Data[i+1] = make([]string, len(columns)+1)
		doc.Data[i+1][0] = r
	}
	for j, c := range columns {
		colAt[c] = j + 1
	}

	cells, err := db.Query(`SELECT row_key, column_key, value FROM cells`)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: reading cells", filename)
	}
	defer cells.Close()
	for cells.Next() {
		var r, c, v string
		if err := cells.Scan(&r, &c, &v); err != nil {
			return nil, errors.Wrapf(err, "%s: reading cells", filename)
		}
		i, okR := rowAt[r]
		j, okC := colAt[c]
		if !okR || !okC {
			return nil, errors.Errorf("%s: cell (%q, %q) has no row or column", filename, r, c)
		}
		doc.Data[i][j] = v
	}
	if err := cells.Err(); err != nil {
		return nil, errors.Wrapf(err, "%s: reading cells", filename)
	}
	return doc, nil
}

func queryKeys(db *sql.DB, query string) ([]string, error) {
	res, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer res.Close()
	keys := []string{}
	for res.Next() {
		var k string
		if err := res.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, res.Err()
}
