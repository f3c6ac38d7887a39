// Package log provides secure logging functionality with automatic sanitization
// of sensitive information, built on top of the standard slog package.
//
// This package extends slog to provide:
//   - Automatic sanitization of sensitive values (tokens, secrets, API keys)
//   - Configurable log levels with verbose mode support
//   - Consistent log formatting across the application
//
// # Security Features
//
// The SecureHandler automatically sanitizes sensitive information in log output:
//   - HTTP headers (Authorization, Cookie, X-Api-Key)
//   - Enrichment-provider credentials (API keys for lookup services)
//   - Secret values detected by pattern matching (passwords, tokens, keys)
//
// Even in verbose mode, sensitive values are masked to prevent accidental
// exposure of secrets in logs that may be shared or stored. Phone numbers
// themselves are intentionally not masked: they are the subject of the
// analysis and appear throughout the output by design.
//
// # Usage
//
//	// Create a secure logger
//	logger := log.NewSecureLogger(os.Stderr, true) // verbose=true
//
//	// Use as a standard slog.Logger
//	logger.Info("enrichment request sent",
//	    "api_key", "abc123",  // Will be sanitized to "***REDACTED***"
//	    "source", "numverify",
//	)
//
//	// Set as default logger
//	slog.SetDefault(logger)
package log
