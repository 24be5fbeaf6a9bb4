// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteLoader reads every row of one table from a SQLite database file.
type SQLiteLoader struct {
	Path    string
	Table   string
	Missing MissingSet
}

// NewSQLiteLoader returns a SQLiteLoader for table in the database at path.
func NewSQLiteLoader(path, table string, missing []string) (*SQLiteLoader, error) {
	if table == "" {
		return nil, fmt.Errorf("sqlite source %s: table name required", path)
	}
	return &SQLiteLoader{
		Path:    path,
		Table:   table,
		Missing: NewMissingSet(missing),
	}, nil
}

// Load opens the database read-only and reads the table in rowid order.
// SQL NULL is missing; numeric cells are rendered as canonical text.
func (l *SQLiteLoader) Load(ctx context.Context) (*RecordSet, error) {
	// sqlite would otherwise report a bare "unable to open database file".
	if _, err := os.Stat(l.Path); err != nil {
		return nil, &SourceLoadError{Path: l.Path, Err: err}
	}

	dsn := "file:" + (&url.URL{Path: l.Path}).EscapedPath() + "?mode=ro"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, &SourceLoadError{Path: l.Path, Err: fmt.Errorf("opening database: %w", err)}
	}
	defer db.Close()

	rs, err := l.read(ctx, db)
	if err != nil {
		return nil, &SourceLoadError{Path: l.Path, Err: err}
	}
	return rs, nil
}

func (l *SQLiteLoader) read(ctx context.Context, db *sql.DB) (*RecordSet, error) {
	rows, err := db.QueryContext(ctx, `SELECT * FROM `+quoteIdent(l.Table))
	if err != nil {
		return nil, fmt.Errorf("querying table %s: %w", l.Table, err)
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading columns: %w", err)
	}

	rs := &RecordSet{Source: l.Path + "#" + l.Table, Header: header}
	raw := make([]any, len(header))
	ptrs := make([]any, len(header))
	for i := range raw {
		ptrs[i] = &raw[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scanning row %d: %w", len(rs.Rows)+1, err)
		}
		row := make([]Value, len(header))
		for i, v := range raw {
			row[i] = l.cell(v)
		}
		rs.Rows = append(rs.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}
	return rs, nil
}

func (l *SQLiteLoader) cell(v any) Value {
	switch x := v.(type) {
	case nil:
		return Missing()
	case []byte:
		return l.Missing.Cell(string(x))
	case string:
		return l.Missing.Cell(x)
	case int64:
		return Text(strconv.FormatInt(x, 10))
	case float64:
		if math.IsNaN(x) {
			return Missing()
		}
		return Text(strconv.FormatFloat(x, 'g', -1, 64))
	case bool:
		return Text(strconv.FormatBool(x))
	case time.Time:
		return Text(x.Format(time.RFC3339))
	default:
		return Text(fmt.Sprint(x))
	}
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
