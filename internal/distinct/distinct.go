// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package distinct derives the ordered set of distinct, non-missing values of
// one record set column.
package distinct

import (
	"strings"

	"github.com/pdiddy/hospital-extract/internal/dataset"
)

// Options tunes how column values are compared.
type Options struct {
	// Normalize trims surrounding whitespace and one trailing comma before
	// comparing. Values that normalize to "" are treated as missing.
	Normalize bool

	// Missing is checked again after normalizing, so " NA " and "NA," are
	// missing when "NA" is a marker. Unused without Normalize.
	Missing dataset.MissingSet
}

// Stats counts what Values saw.
type Stats struct {
	Total    int
	Missing  int
	Distinct int
}

// Extract returns the distinct non-missing values of column in
// first-occurrence order.
func Extract(records *dataset.RecordSet, column string, opts Options) ([]string, Stats, error) {
	vals, err := records.Column(column)
	if err != nil {
		return nil, Stats{}, err
	}
	out, stats := Values(vals, opts)
	return out, stats, nil
}

// Values deduplicates vals, skipping missing entries. Each distinct value
// appears once, at the position of its first occurrence.
func Values(vals []dataset.Value, opts Options) ([]string, Stats) {
	stats := Stats{Total: len(vals)}
	seen := make(map[string]struct{}, len(vals))
	out := make([]string, 0)

	for _, v := range vals {
		if v.IsMissing() {
			stats.Missing++
			continue
		}
		s := v.Str
		if opts.Normalize {
			s = normalize(s)
			if s == "" || opts.Missing.Cell(s).IsMissing() {
				stats.Missing++
				continue
			}
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	stats.Distinct = len(out)
	return out, stats
}

func normalize(s string) string {
	s = strings.TrimSpace(s)
	return strings.TrimSuffix(s, ",")
}
