// Package enrich collects externally resolved data about a number and
// attaches it to the analysis report. Sources are best-effort: a failing
// source is logged and skipped, never failing the analysis.
package enrich
