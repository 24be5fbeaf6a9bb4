// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

const utf8BOM = "\uFEFF"

// CSVLoader reads a delimited text file whose first record is the header.
type CSVLoader struct {
	Path      string
	Delimiter rune
	Missing   MissingSet
}

// NewCSVLoader returns a CSVLoader for path. delimiter must be a single
// character; an empty delimiter means ','.
func NewCSVLoader(path, delimiter string, missing []string) (*CSVLoader, error) {
	comma := ','
	if delimiter != "" {
		r, size := utf8.DecodeRuneInString(delimiter)
		if size != len(delimiter) || r == utf8.RuneError {
			return nil, fmt.Errorf("delimiter %q must be a single character", delimiter)
		}
		comma = r
	}
	return &CSVLoader{
		Path:      path,
		Delimiter: comma,
		Missing:   NewMissingSet(missing),
	}, nil
}

// Load reads the whole file. Blank lines are skipped and a quote inside an
// unquoted cell is kept as text. Rows shorter than the
// header are padded with Missing; rows longer than the header are malformed.
func (l *CSVLoader) Load(ctx context.Context) (*RecordSet, error) {
	f, err := os.Open(l.Path)
	if err != nil {
		return nil, &SourceLoadError{Path: l.Path, Err: err}
	}
	defer f.Close()

	rs, err := l.read(ctx, f)
	if err != nil {
		return nil, &SourceLoadError{Path: l.Path, Err: err}
	}
	return rs, nil
}

func (l *CSVLoader) read(ctx context.Context, r io.Reader) (*RecordSet, error) {
	cr := csv.NewReader(r)
	cr.Comma = l.Delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("no columns to parse: file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	header[0] = strings.TrimPrefix(header[0], utf8BOM)

	rs := &RecordSet{Source: l.Path, Header: header}
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) > len(header) {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d: expected %d fields, saw %d", line, len(header), len(record))
		}

		row := make([]Value, len(header))
		for i := range row {
			if i < len(record) {
				row[i] = l.Missing.Cell(record[i])
			} else {
				row[i] = Missing()
			}
		}
		rs.Rows = append(rs.Rows, row)
	}
	return rs, nil
}
