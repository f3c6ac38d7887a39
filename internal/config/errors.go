package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages. Using errors.New() here rather than fmt.Errorf()
// because we don't need to include dynamic values in these messages.
var (
	// ErrNoTarget is returned when no phone number is specified.
	// This error occurs when neither --file nor a positional argument provides a target.
	ErrNoTarget = errors.New("no target specified: provide a phone number or use --file")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	// A batch size of zero would mean no concurrent analyses, effectively
	// stopping batch processing.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrEmptyRegion is returned when the default region is empty.
	// Parsing needs a region to interpret numbers without a country code.
	ErrEmptyRegion = errors.New("invalid region: must not be empty")
)
