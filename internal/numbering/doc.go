// Package numbering wraps the numbering-plan metadata engine behind a
// small parse, validate, and format surface. It owns the canonicalization
// rules that turn arbitrary user input into a ParsedNumber and the
// projections of the metadata engine's verdicts into report fields.
package numbering
