// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"fmt"
	"strings"
)

// SourceLoadError reports a source that is missing, unreadable, or malformed.
type SourceLoadError struct {
	Path string
	Err  error
}

func (e *SourceLoadError) Error() string {
	return fmt.Sprintf("loading source %s: %v", e.Path, e.Err)
}

func (e *SourceLoadError) Unwrap() error {
	return e.Err
}

// ColumnNotFoundError reports a column absent from the record set header.
type ColumnNotFoundError struct {
	Column    string
	Available []string
}

func (e *ColumnNotFoundError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("column %q not found: source has no columns", e.Column)
	}
	return fmt.Sprintf("column %q not found (available: %s)", e.Column, strings.Join(e.Available, ", "))
}
