// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset loads tabular sources into an in-memory record set with an
// explicit missing-value sentinel.
package dataset

// Value is a single cell. A Value with Valid == false is missing.
type Value struct {
	Str   string
	Valid bool
}

// Missing returns the missing sentinel.
func Missing() Value {
	return Value{}
}

// Text returns a present value holding s.
func Text(s string) Value {
	return Value{Str: s, Valid: true}
}

// IsMissing reports whether v is the missing sentinel.
func (v Value) IsMissing() bool {
	return !v.Valid
}

// String returns the cell text, or "<missing>" for the sentinel.
func (v Value) String() string {
	if !v.Valid {
		return "<missing>"
	}
	return v.Str
}

// RecordSet is an ordered sequence of rows over a fixed header. It is not
// modified after loading.
type RecordSet struct {
	// Source names where the rows came from (file path, optionally with table).
	Source string
	Header []string
	Rows   [][]Value
}

// Len returns the number of rows.
func (rs *RecordSet) Len() int {
	return len(rs.Rows)
}

// ColumnIndex returns the position of name in the header, or -1. When the
// header repeats a name, the first occurrence wins.
func (rs *RecordSet) ColumnIndex(name string) int {
	for i, h := range rs.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Column returns the values of the named column in row order, missing cells
// included. Rows shorter than the header yield Missing for absent cells.
func (rs *RecordSet) Column(name string) ([]Value, error) {
	idx := rs.ColumnIndex(name)
	if idx < 0 {
		return nil, &ColumnNotFoundError{Column: name, Available: rs.Header}
	}
	out := make([]Value, len(rs.Rows))
	for i, row := range rs.Rows {
		if idx < len(row) {
			out[i] = row[idx]
		} else {
			out[i] = Missing()
		}
	}
	return out, nil
}

// MissingSet holds the raw cell strings read as missing.
type MissingSet map[string]struct{}

// NewMissingSet builds a MissingSet from markers.
func NewMissingSet(markers []string) MissingSet {
	s := make(MissingSet, len(markers))
	for _, m := range markers {
		s[m] = struct{}{}
	}
	return s
}

// Cell converts a raw string into a Value, mapping markers to Missing.
// Markers match exactly; "  NA" is text.
func (s MissingSet) Cell(raw string) Value {
	if _, ok := s[raw]; ok {
		return Missing()
	}
	return Text(raw)
}
