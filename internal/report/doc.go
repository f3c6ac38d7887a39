// Package report renders analysis reports in multiple output formats.
// It provides human-readable text for terminal display, JSON for tool
// integration, and GitHub-flavored Markdown for documentation.
package report
