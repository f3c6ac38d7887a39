// Package pipeline orchestrates the analysis of phone numbers.
// An analysis is a sequence of steps (parse, validate, classify, format,
// enrich) that each fill part of the report. The package also provides a
// batch processor for analyzing number lists concurrently.
package pipeline
