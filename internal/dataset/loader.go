// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pdiddy/hospital-extract/pkg/types"
)

// Loader produces a RecordSet from a tabular source.
type Loader interface {
	Load(ctx context.Context) (*RecordSet, error)
}

// NewLoader selects a backend for cfg. An empty format is resolved from the
// path extension: .db, .sqlite and .sqlite3 are SQLite, anything else is CSV.
func NewLoader(cfg types.SourceConfig) (Loader, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("source path is required")
	}
	missing := cfg.MissingValues
	if missing == nil {
		missing = types.DefaultMissingValues
	}

	switch resolveFormat(cfg) {
	case types.FormatCSV:
		l, err := NewCSVLoader(cfg.Path, cfg.Delimiter, missing)
		if err != nil {
			return nil, err
		}
		return l, nil
	case types.FormatSQLite:
		table := cfg.Table
		if table == "" {
			table = types.DefaultTable
		}
		l, err := NewSQLiteLoader(cfg.Path, table, missing)
		if err != nil {
			return nil, err
		}
		return l, nil
	default:
		return nil, fmt.Errorf("unsupported source format %q: use csv or sqlite", cfg.Format)
	}
}

func resolveFormat(cfg types.SourceConfig) types.SourceFormat {
	if cfg.Format != types.FormatAuto {
		return types.SourceFormat(strings.ToLower(string(cfg.Format)))
	}
	switch strings.ToLower(filepath.Ext(cfg.Path)) {
	case ".db", ".sqlite", ".sqlite3":
		return types.FormatSQLite
	default:
		return types.FormatCSV
	}
}
