package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultRegion is the ISO 3166-1 alpha-2 region assumed for numbers
	// entered without a country code. The built-in prefix tables cover the
	// Indonesian numbering plan, so ID is the natural default.
	DefaultRegion = "ID"

	// DefaultBatchSize of 10 concurrent analyses balances throughput with
	// resource usage when processing number lists. Analysis is CPU-bound
	// and cheap, so this mainly caps enrichment fan-out.
	DefaultBatchSize = 10

	// AppName is the application name used for XDG directory paths.
	AppName = "phonescan"

	// DefaultCountryName is the display name for the default region's
	// numbering plan, used in the report's location section.
	DefaultCountryName = "Indonesia"
)

// Config holds all configuration options for phonescan.
// This struct is designed to be populated from CLI flags and passed through
// the application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// for simplicity. The number of options is manageable, and nesting would
// add complexity without significant benefit.
type Config struct {
	// Region is the default region for parsing numbers without an explicit
	// country code.
	Region string

	// CountryName is the display name for the numbering plan's country.
	CountryName string

	// Targets is the list of phone numbers to analyze.
	// Must contain at least one entry.
	Targets []string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// BatchSize is the number of concurrent analyses when processing
	// multiple targets.
	BatchSize int

	// JSONReport enables JSON report output instead of human-readable format.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of human-readable
	// format. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string

	// ConfigFilePath is the path to the directory file.
	// If empty, the tool searches for .phonescan.yml in the current
	// directory, the user's home directory, and the XDG config directory.
	ConfigFilePath string

	// Directory holds numbering-table overrides loaded from the directory
	// file. This is populated by LoadDirectoryFile and used to configure
	// the classifier.
	Directory *DirectoryFile

	// DBDir is the directory path for storing the SQLite history database.
	// When set, analysis results are appended to the history for later
	// retrieval. When empty, results are not persisted.
	// Defaults to the XDG data directory (~/.local/share/phonescan on Linux).
	DBDir string

	// SaveToDB indicates whether to append analysis results to the history.
	// This is automatically set to true when DBDir is configured.
	SaveToDB bool

	// EnrichmentFile is a path to a JSON file with externally resolved
	// enrichment payloads keyed by source name. The payloads are attached
	// to the report as-is.
	EnrichmentFile string
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most use cases.
// Users can override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because several defaults are non-zero (region, batch size).
// This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		Region:      DefaultRegion,
		CountryName: DefaultCountryName,
		BatchSize:   DefaultBatchSize,
	}
}

// XDGDataDir returns the XDG data directory for phonescan.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.local/share/phonescan
// On macOS: ~/Library/Application Support/phonescan
// On Windows: %LOCALAPPDATA%\phonescan
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for phonescan.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.config/phonescan
// On macOS: ~/Library/Application Support/phonescan
// On Windows: %APPDATA%\phonescan
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any analysis begins.
//
// We chose to return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	// We must have at least one number to analyze
	if len(c.Targets) == 0 {
		return ErrNoTarget
	}

	// Region must be set; parsing needs it for numbers without country codes
	if c.Region == "" {
		return ErrEmptyRegion
	}

	// BatchSize must be positive; zero would mean no analyses
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	// JSONReport and MarkdownReport are mutually exclusive
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}
