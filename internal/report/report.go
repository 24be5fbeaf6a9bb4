// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes distinct values to the console and to a text file.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// OutputWriteError reports a destination file that could not be created or
// written.
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("writing output %s: %v", e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error {
	return e.Err
}

// WriteConsole prints header followed by one value per line.
func WriteConsole(w io.Writer, header string, values []string) error {
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	for _, v := range values {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile creates or truncates path and writes each value on its own
// newline-terminated line, with no header. Missing parent directories are
// created.
func WriteFile(path string, values []string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &OutputWriteError{Path: path, Err: fmt.Errorf("creating directory: %w", err)}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return &OutputWriteError{Path: path, Err: err}
	}

	if err := writeLines(f, values); err != nil {
		f.Close()
		return &OutputWriteError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &OutputWriteError{Path: path, Err: err}
	}
	return nil
}

func writeLines(w io.Writer, values []string) error {
	bw := bufio.NewWriter(w)
	for _, v := range values {
		if _, err := bw.WriteString(v); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
