// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the hospital-extract CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/hospital-extract/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd runs the extraction when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "hospital-extract",
	Short: "List the distinct hospitals in a healthcare dataset",
	Long: `hospital-extract reads a tabular dataset (CSV, or a SQLite table),
collects the distinct non-missing values of one column in the order they
first appear, prints them, and writes them one per line to a text file.

With no flags it reads data/healthcare_dataset.csv, extracts the Hospital
column, and writes distinct_hospitals.txt. Every setting can also come from
hospital-extract.yaml or HOSPITAL_EXTRACT_* environment variables.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runExtract,
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := types.DefaultExtractConfig()
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./hospital-extract.yaml or ~/.config/hospital-extract/config.yaml)")
	flags.String("input", defaults.Source.Path, "CSV file or SQLite database to read")
	flags.String("format", string(defaults.Source.Format), "source format: csv or sqlite (default: from file extension)")
	flags.String("table", defaults.Source.Table, "table to read from a SQLite source")
	flags.String("delimiter", defaults.Source.Delimiter, "CSV field delimiter")
	flags.StringSlice("missing", defaults.Source.MissingValues, "cell values treated as missing")
	flags.String("column", defaults.Column, "column to extract distinct values from")
	flags.Bool("normalize", defaults.Normalize, "trim whitespace and a trailing comma before comparing values")
	flags.String("output", defaults.Output.Path, "text file to write, one value per line")
	flags.String("header", defaults.Output.Header, "first line of the console report")
	flags.BoolP("quiet", "q", false, "suppress progress messages on stderr")

	bindings := map[string]string{
		"source.path":           "input",
		"source.format":         "format",
		"source.table":          "table",
		"source.delimiter":      "delimiter",
		"source.missing_values": "missing",
		"column":                "column",
		"normalize":             "normalize",
		"output.path":           "output",
		"output.header":         "header",
	}
	for key, flag := range bindings {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("binding flag %s: %v", flag, err))
		}
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("hospital-extract")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "hospital-extract"))
		}
	}

	viper.SetEnvPrefix("HOSPITAL_EXTRACT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig decodes the merged flag, env, and file settings. Struct fields
// are matched by their yaml tags so the config file uses the same keys that
// the config command prints.
func loadConfig() (types.ExtractConfig, error) {
	var cfg types.ExtractConfig
	err := viper.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "yaml"
	})
	if err != nil {
		return cfg, fmt.Errorf("decoding configuration: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
