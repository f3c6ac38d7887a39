package numbering

import "errors"

// Numbering errors.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances at each failure site. This allows callers
// to use errors.Is() for programmatic error handling while still wrapping
// the underlying metadata-engine error for context.
var (
	// ErrMalformedInput is returned when the input cannot be parsed as a
	// phone number. This covers empty input, input without any digits, and
	// input the numbering-plan metadata rejects outright.
	ErrMalformedInput = errors.New("malformed phone number input")

	// ErrUnknownRegion is returned when the configured default region has
	// no country calling code in the numbering-plan metadata.
	ErrUnknownRegion = errors.New("unknown default region")

	// ErrFormatFailed is returned when formatting is requested for a
	// zero-value parsed number. Formatting a successfully parsed number
	// never fails.
	ErrFormatFailed = errors.New("cannot format an empty parsed number")
)
