// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs one extraction: load the source, derive the distinct
// values of the configured column, print them, and write them to a file.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/hospital-extract/internal/dataset"
	"github.com/pdiddy/hospital-extract/internal/distinct"
	"github.com/pdiddy/hospital-extract/internal/report"
	"github.com/pdiddy/hospital-extract/pkg/types"
)

// Result summarises a completed run.
type Result struct {
	Source     string
	Rows       int
	Missing    int
	Values     []string
	OutputPath string
}

// Run executes the pipeline described by cfg. The console report goes to
// stdout and progress lines go to log. The output file is written last, so a
// load or column error leaves any existing file untouched.
func Run(ctx context.Context, cfg types.ExtractConfig, stdout, log io.Writer) (Result, error) {
	loader, err := dataset.NewLoader(cfg.Source)
	if err != nil {
		return Result{}, err
	}
	return RunWith(ctx, loader, cfg, stdout, log)
}

// RunWith is Run with an explicit loader.
func RunWith(ctx context.Context, loader dataset.Loader, cfg types.ExtractConfig, stdout, log io.Writer) (Result, error) {
	records, err := loader.Load(ctx)
	if err != nil {
		return Result{}, err
	}
	fmt.Fprintf(log, "loaded  %s (%d rows, %d columns)\n", records.Source, records.Len(), len(records.Header))

	missing := cfg.Source.MissingValues
	if missing == nil {
		missing = types.DefaultMissingValues
	}
	opts := distinct.Options{
		Normalize: cfg.Normalize,
		Missing:   dataset.NewMissingSet(missing),
	}
	values, stats, err := distinct.Extract(records, cfg.Column, opts)
	if err != nil {
		return Result{}, err
	}
	fmt.Fprintf(log, "extracted %d distinct %q values (%d missing skipped)\n", stats.Distinct, cfg.Column, stats.Missing)

	if err := report.WriteConsole(stdout, cfg.Output.Header, values); err != nil {
		return Result{}, fmt.Errorf("printing report: %w", err)
	}

	if err := report.WriteFile(cfg.Output.Path, values); err != nil {
		return Result{}, err
	}
	fmt.Fprintf(log, "wrote   %s (%d lines)\n", cfg.Output.Path, len(values))

	return Result{
		Source:     records.Source,
		Rows:       records.Len(),
		Missing:    stats.Missing,
		Values:     values,
		OutputPath: cfg.Output.Path,
	}, nil
}
