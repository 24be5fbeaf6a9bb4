// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SourceFormat identifies the tabular source backend.
type SourceFormat string

const (
	// FormatAuto picks the backend from the source path extension.
	FormatAuto   SourceFormat = ""
	FormatCSV    SourceFormat = "csv"
	FormatSQLite SourceFormat = "sqlite"
)

// Default values reproduce the behavior of the original extraction script.
const (
	DefaultSourcePath = "data/healthcare_dataset.csv"
	DefaultTable      = "records"
	DefaultDelimiter  = ","
	DefaultColumn     = "Hospital"
	DefaultOutputPath = "distinct_hospitals.txt"
	DefaultHeader     = "Hôpitaux distincts :"
)

// DefaultMissingValues lists the cell strings read as missing when no
// override is configured. It matches the NA markers recognised by pandas.
var DefaultMissingValues = []string{
	"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None",
	"n/a", "nan", "null",
}

// SourceConfig describes where the record set is loaded from.
type SourceConfig struct {
	// Path is the CSV file or SQLite database to read.
	Path string `json:"path" yaml:"path"`

	// Format selects the backend: csv, sqlite, or empty for auto-detection.
	Format SourceFormat `json:"format" yaml:"format"`

	// Table is the SQLite table to read. Ignored for CSV sources.
	Table string `json:"table" yaml:"table"`

	// Delimiter is the CSV field separator (a single character).
	Delimiter string `json:"delimiter" yaml:"delimiter"`

	// MissingValues lists raw cell strings treated as missing.
	MissingValues []string `json:"missing_values" yaml:"missing_values"`
}

// OutputConfig describes the console report and the text file sink.
type OutputConfig struct {
	// Path is the newline-delimited text file written on every run.
	Path string `json:"path" yaml:"path"`

	// Header is the first line of the console report.
	Header string `json:"header" yaml:"header"`
}

// ExtractConfig groups all settings for one extraction run.
type ExtractConfig struct {
	Source SourceConfig `json:"source" yaml:"source"`

	// Column is the column whose distinct values are extracted.
	Column string `json:"column" yaml:"column"`

	// Normalize trims whitespace and a trailing comma from each value
	// before deduplication.
	Normalize bool `json:"normalize" yaml:"normalize"`

	Output OutputConfig `json:"output" yaml:"output"`
}

// DefaultExtractConfig returns the configuration used when nothing is
// overridden.
func DefaultExtractConfig() ExtractConfig {
	missing := make([]string, len(DefaultMissingValues))
	copy(missing, DefaultMissingValues)
	return ExtractConfig{
		Source: SourceConfig{
			Path:          DefaultSourcePath,
			Table:         DefaultTable,
			Delimiter:     DefaultDelimiter,
			MissingValues: missing,
		},
		Column: DefaultColumn,
		Output: OutputConfig{
			Path:   DefaultOutputPath,
			Header: DefaultHeader,
		},
	}
}
