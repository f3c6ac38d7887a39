package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/nao1215/phonescan/internal/model"
)

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display with clear section
// formatting.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// verbose enables additional detail in the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		verbose:    false,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the report in human-readable format.
func (w *SimpleWriter) Write(report *model.AnalysisReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)

	// A failed analysis renders only the header and the error.
	if report.ErrorMessage == "" {
		w.writeNumber(&sb, report)
		w.writeValidation(&sb, report)
		w.writeProvider(&sb, report)
		w.writeLocation(&sb, report)
		w.writeTechnical(&sb, report)
		w.writeEnrichment(&sb, report)
	}

	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with analysis information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.AnalysisReport) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                      PHONE NUMBER ANALYSIS\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Input:          %s\n", report.OriginalInput))
	sb.WriteString(fmt.Sprintf("Analyzed At:    %s\n", report.AnalyzedAt.Format("2006-01-02 15:04:05 MST")))

	if report.ErrorMessage != "" {
		sb.WriteString(fmt.Sprintf("Status:         ERROR - %s\n", report.ErrorMessage))
	} else {
		sb.WriteString("Status:         Complete\n")
	}

	sb.WriteString("\n")
}

// writeNumber writes the canonical number formats and category.
func (w *SimpleWriter) writeNumber(sb *strings.Builder, report *model.AnalysisReport) {
	w.sectionHeader(sb, "NUMBER")

	sb.WriteString(fmt.Sprintf("  National:      %s\n", report.Number.National))
	sb.WriteString(fmt.Sprintf("  International: %s\n", report.Number.International))
	sb.WriteString(fmt.Sprintf("  E.164:         %s\n", report.Number.E164))
	sb.WriteString(fmt.Sprintf("  Cleaned:       %s\n", report.Number.Cleaned))
	sb.WriteString(fmt.Sprintf("  Local Prefix:  %s\n", report.Number.LocalPrefix))
	sb.WriteString(fmt.Sprintf("  Category:      %s\n", report.Number.Category))
	sb.WriteString("\n")
}

// writeValidation writes the numbering-plan validation section.
func (w *SimpleWriter) writeValidation(sb *strings.Builder, report *model.AnalysisReport) {
	w.sectionHeader(sb, "VALIDATION")

	sb.WriteString(fmt.Sprintf("  Valid:         %s\n", yesNo(report.Validation.IsValid)))
	sb.WriteString(fmt.Sprintf("  Possible:      %s\n", yesNo(report.Validation.IsPossible)))
	sb.WriteString(fmt.Sprintf("  Number Type:   %s\n", report.Validation.NumberTypeText))
	sb.WriteString("\n")
}

// writeProvider writes the carrier identity and directory profile.
func (w *SimpleWriter) writeProvider(sb *strings.Builder, report *model.AnalysisReport) {
	w.sectionHeader(sb, "PROVIDER")

	sb.WriteString(fmt.Sprintf("  Name:          %s\n", report.Provider.Identity.Name))
	sb.WriteString(fmt.Sprintf("  Network Type:  %s\n", report.Provider.Identity.NetworkType))

	profile := report.Provider.Profile
	if profile.IsZero() {
		sb.WriteString("\n")
		return
	}

	sb.WriteString(fmt.Sprintf("  Full Name:     %s\n", profile.FullName))
	sb.WriteString(fmt.Sprintf("  Website:       %s\n", profile.Website))
	sb.WriteString(fmt.Sprintf("  Hotline:       %s\n", profile.CustomerService))
	sb.WriteString(fmt.Sprintf("  Network Tech:  %s\n", strings.Join(profile.NetworkTech, ", ")))
	sb.WriteString(fmt.Sprintf("  Founded:       %d\n", profile.Founded))
	sb.WriteString(fmt.Sprintf("  Market Share:  %s\n", profile.MarketShare))
	sb.WriteString(fmt.Sprintf("  Parent:        %s\n", profile.ParentCompany))
	sb.WriteString("\n")
}

// writeLocation writes the geographic information section.
func (w *SimpleWriter) writeLocation(sb *strings.Builder, report *model.AnalysisReport) {
	w.sectionHeader(sb, "LOCATION")

	sb.WriteString(fmt.Sprintf("  Country:       %s (%s)\n", report.Location.Country, report.Location.CountryCode))
	sb.WriteString(fmt.Sprintf("  Region:        %s\n", report.Location.Region))
	if len(report.Location.Timezones) > 0 {
		sb.WriteString(fmt.Sprintf("  Timezones:     %s\n", strings.Join(report.Location.Timezones, ", ")))
	}
	if report.Location.CarrierRegion != "" {
		sb.WriteString(fmt.Sprintf("  Plan Region:   %s\n", report.Location.CarrierRegion))
	}
	sb.WriteString("\n")
}

// writeTechnical writes the raw numbering-plan fields.
func (w *SimpleWriter) writeTechnical(sb *strings.Builder, report *model.AnalysisReport) {
	if !w.verbose {
		return
	}

	w.sectionHeader(sb, "TECHNICAL")

	sb.WriteString(fmt.Sprintf("  Country Code:    %d\n", report.Technical.CountryCode))
	sb.WriteString(fmt.Sprintf("  National Number: %d\n", report.Technical.NationalNumber))
	sb.WriteString(fmt.Sprintf("  Area Code:       %s\n", report.Technical.AreaCode))
	sb.WriteString("\n")
}

// writeEnrichment writes externally supplied enrichment payloads.
func (w *SimpleWriter) writeEnrichment(sb *strings.Builder, report *model.AnalysisReport) {
	if len(report.Enrichment) == 0 {
		return
	}

	w.sectionHeader(sb, "ENRICHMENT")

	// Stable output order for maps.
	sources := make([]string, 0, len(report.Enrichment))
	for source := range report.Enrichment {
		sources = append(sources, source)
	}
	sort.Strings(sources)

	for _, source := range sources {
		sb.WriteString(fmt.Sprintf("  [%s]\n", source))
		if payload, ok := report.Enrichment[source].(map[string]any); ok {
			keys := make([]string, 0, len(payload))
			for key := range payload {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				sb.WriteString(fmt.Sprintf("    %s: %v\n", key, payload[key]))
			}
		} else {
			sb.WriteString(fmt.Sprintf("    %v\n", report.Enrichment[source]))
		}
	}
	sb.WriteString("\n")
}

// sectionHeader writes a dashed section header.
func (w *SimpleWriter) sectionHeader(sb *strings.Builder, title string) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")
}

// writeFooter writes the report footer.
func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("Report generated by phonescan\n")
	sb.WriteString("https://github.com/nao1215/phonescan\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}

// yesNo renders a boolean for terminal display.
func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
