// Package model defines the core data structures used throughout phonescan.
//
// This package contains the following main types:
//   - ParsedNumber: Canonical numbering-plan representation of a phone number
//   - ValidationResult: Validity and plausibility of a parsed number
//   - ProviderIdentity / ProviderProfile: Carrier identity and directory metadata
//   - AnalysisReport: The main analysis result structure
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (numbering, classify, pipeline, report,
// database) need to use these types, so centralizing them prevents import
// cycles.
//
// The models are designed to be serializable to JSON for report output and
// database storage.
package model
