// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/hospital-extract/internal/pipeline"
)

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := cmd.ErrOrStderr()
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		log = io.Discard
	}

	_, err = pipeline.Run(context.Background(), cfg, cmd.OutOrStdout(), log)
	return err
}
