package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/nao1215/phonescan/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.AnalysisReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)

	if report.ErrorMessage == "" {
		w.writeNumber(md, report)
		w.writeValidation(md, report)
		w.writeProvider(md, report)
		w.writeLocation(md, report)
		w.writeTechnical(md, report)
		w.writeEnrichment(md, report)
	}

	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with analysis information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.AnalysisReport) {
	md.H1("Phone Number Analysis")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Input", "`" + report.OriginalInput + "`"},
			{"Analyzed At", report.AnalyzedAt.Format("2006-01-02 15:04:05 MST")},
			{"Status", w.getStatusText(report)},
		},
	})
	md.PlainText("")
}

// getStatusText returns the status text based on report state.
func (w *MarkdownWriter) getStatusText(report *model.AnalysisReport) string {
	if report.ErrorMessage != "" {
		return "❌ Error - " + report.ErrorMessage
	}
	return "✅ Complete"
}

// writeNumber writes the canonical number formats and category.
func (w *MarkdownWriter) writeNumber(md *markdown.Markdown, report *model.AnalysisReport) {
	md.H2("Number")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Format", "Value"},
		Rows: [][]string{
			{"National", report.Number.National},
			{"International", report.Number.International},
			{"E.164", "`" + report.Number.E164 + "`"},
			{"Cleaned", report.Number.Cleaned},
			{"Local Prefix", report.Number.LocalPrefix},
			{"Category", string(report.Number.Category)},
		},
	})
	md.PlainText("")
}

// writeValidation writes the validation section with an alert.
func (w *MarkdownWriter) writeValidation(md *markdown.Markdown, report *model.AnalysisReport) {
	md.H2("Validation")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Check", "Result"},
		Rows: [][]string{
			{"Valid", checkMark(report.Validation.IsValid)},
			{"Possible", checkMark(report.Validation.IsPossible)},
			{"Number Type", report.Validation.NumberTypeText},
		},
	})
	md.PlainText("")

	if report.Validation.IsValid {
		md.Tip("The number conforms to the numbering plan.")
	} else {
		md.Warningf("The number does not conform to the numbering plan.")
	}
	md.PlainText("")
}

// writeProvider writes the carrier identity and directory profile.
func (w *MarkdownWriter) writeProvider(md *markdown.Markdown, report *model.AnalysisReport) {
	md.H2("Provider")
	md.PlainText("")

	rows := [][]string{
		{"Name", report.Provider.Identity.Name},
		{"Network Type", string(report.Provider.Identity.NetworkType)},
	}

	profile := report.Provider.Profile
	if !profile.IsZero() {
		rows = append(rows,
			[]string{"Full Name", profile.FullName},
			[]string{"Website", profile.Website},
			[]string{"Hotline", profile.CustomerService},
			[]string{"Network Tech", strings.Join(profile.NetworkTech, ", ")},
			[]string{"Founded", strconv.Itoa(profile.Founded)},
			[]string{"Market Share", profile.MarketShare},
			[]string{"Parent Company", profile.ParentCompany},
		)
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeLocation writes the geographic information section.
func (w *MarkdownWriter) writeLocation(md *markdown.Markdown, report *model.AnalysisReport) {
	md.H2("Location")
	md.PlainText("")

	rows := [][]string{
		{"Country", report.Location.Country + " (" + report.Location.CountryCode + ")"},
		{"Region", report.Location.Region},
	}
	if len(report.Location.Timezones) > 0 {
		rows = append(rows, []string{"Timezones", strings.Join(report.Location.Timezones, ", ")})
	}
	if report.Location.CarrierRegion != "" {
		rows = append(rows, []string{"Plan Region", report.Location.CarrierRegion})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeTechnical writes the raw numbering-plan fields.
func (w *MarkdownWriter) writeTechnical(md *markdown.Markdown, report *model.AnalysisReport) {
	md.H2("Technical")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Country Code", strconv.Itoa(report.Technical.CountryCode)},
			{"National Number", strconv.FormatUint(report.Technical.NationalNumber, 10)},
			{"Area Code", report.Technical.AreaCode},
		},
	})
	md.PlainText("")
}

// writeEnrichment writes externally supplied enrichment payloads.
func (w *MarkdownWriter) writeEnrichment(md *markdown.Markdown, report *model.AnalysisReport) {
	if len(report.Enrichment) == 0 {
		return
	}

	md.H2("Enrichment")
	md.PlainText("")

	// Stable output order for maps.
	sources := make([]string, 0, len(report.Enrichment))
	for source := range report.Enrichment {
		sources = append(sources, source)
	}
	sort.Strings(sources)

	for _, source := range sources {
		md.H3(source)
		md.PlainText("")

		payload, ok := report.Enrichment[source].(map[string]any)
		if !ok {
			md.PlainTextf("%v", report.Enrichment[source])
			md.PlainText("")
			continue
		}

		keys := make([]string, 0, len(payload))
		for key := range payload {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		rows := make([][]string, 0, len(keys))
		for _, key := range keys {
			rows = append(rows, []string{key, fmt.Sprintf("%v", payload[key])})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Key", "Value"},
			Rows:   rows,
		})
		md.PlainText("")
	}
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [phonescan](https://github.com/nao1215/phonescan)*")
}

// checkMark renders a boolean as a markdown-friendly symbol.
func checkMark(v bool) string {
	if v {
		return "✅"
	}
	return "❌"
}
