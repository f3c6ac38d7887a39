package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nao1215/phonescan/internal/classify"
	"github.com/nao1215/phonescan/internal/enrich"
	"github.com/nao1215/phonescan/internal/model"
	"github.com/nao1215/phonescan/internal/numbering"
)

// ParseStep canonicalizes the raw input into a ParsedNumber.
// It must run first; every later step reads report.Parsed.
type ParseStep struct {
	parser *numbering.Parser
}

// NewParseStep creates a ParseStep backed by the given parser.
func NewParseStep(parser *numbering.Parser) *ParseStep {
	return &ParseStep{parser: parser}
}

// Name returns the step name.
func (s *ParseStep) Name() string {
	return "parse"
}

// Do parses the report's original input. On failure the validation
// section is set to the worst case so the report still renders, and the
// parse error is returned for the pipeline to record.
func (s *ParseStep) Do(_ context.Context, report *model.AnalysisReport) error {
	parsed, err := s.parser.Parse(report.OriginalInput)
	if err != nil {
		report.Validation = model.WorstCaseValidation()
		return fmt.Errorf("parse step: %w", err)
	}
	report.Parsed = parsed
	return nil
}

// ValidateStep fills the validation section from the numbering-plan
// metadata. It is total and never fails.
type ValidateStep struct {
	validator *numbering.Validator
}

// NewValidateStep creates a ValidateStep backed by the given validator.
func NewValidateStep(validator *numbering.Validator) *ValidateStep {
	return &ValidateStep{validator: validator}
}

// Name returns the step name.
func (s *ValidateStep) Name() string {
	return "validate"
}

// Do validates the parsed number.
func (s *ValidateStep) Do(_ context.Context, report *model.AnalysisReport) error {
	report.Validation = s.validator.Validate(report.Parsed)
	return nil
}

// ClassifyStep resolves carrier identity, directory profile, region, and
// usage category from the prefix tables. All lookups have fallbacks, so
// the step never fails.
type ClassifyStep struct {
	classifier *classify.Classifier
}

// NewClassifyStep creates a ClassifyStep backed by the given classifier.
func NewClassifyStep(classifier *classify.Classifier) *ClassifyStep {
	return &ClassifyStep{classifier: classifier}
}

// Name returns the step name.
func (s *ClassifyStep) Name() string {
	return "classify"
}

// Do classifies the parsed number.
func (s *ClassifyStep) Do(_ context.Context, report *model.AnalysisReport) error {
	identity := s.classifier.Provider(report.Parsed)
	report.Provider = model.ProviderDetail{
		Identity: identity,
		Profile:  s.classifier.Profile(identity),
	}
	report.Location.Region = s.classifier.Region(report.Parsed).Region
	report.Number.Category = s.classifier.Category(report.Parsed)
	return nil
}

// FormatStep fills the canonical number formats and the location and
// technical sections.
type FormatStep struct {
	formatter   *numbering.Formatter
	countryName string
}

// NewFormatStep creates a FormatStep. countryName is the display name for
// the numbering plan's country (e.g. "Indonesia").
func NewFormatStep(formatter *numbering.Formatter, countryName string) *FormatStep {
	return &FormatStep{formatter: formatter, countryName: countryName}
}

// Name returns the step name.
func (s *FormatStep) Name() string {
	return "format"
}

// Do renders the parsed number and fills the derived sections.
func (s *FormatStep) Do(_ context.Context, report *model.AnalysisReport) error {
	formats, err := s.formatter.Formats(report.Parsed)
	if err != nil {
		return fmt.Errorf("format step: %w", err)
	}

	report.Number.National = formats.National
	report.Number.International = formats.International
	report.Number.E164 = formats.E164
	report.Number.LocalPrefix = report.Parsed.LocalPrefix()
	report.Number.Cleaned = report.Parsed.DomesticNumber()

	report.Location.Country = s.countryName
	report.Location.CountryCode = fmt.Sprintf("+%d", report.Parsed.CountryCode())
	report.Location.Timezones = s.formatter.Timezones(report.Parsed)
	report.Location.CarrierRegion = s.formatter.CarrierRegion(report.Parsed)

	report.Technical = model.TechnicalDetail{
		CountryCode:    report.Parsed.CountryCode(),
		NationalNumber: report.Parsed.NationalNumber(),
		AreaCode:       report.Parsed.LocalPrefix(),
	}
	return nil
}

// EnrichStep attaches externally resolved payloads to the report.
// Sources are best-effort; the step itself never fails.
type EnrichStep struct {
	sources []enrich.Source
	logger  *slog.Logger
}

// NewEnrichStep creates an EnrichStep with the given sources.
func NewEnrichStep(logger *slog.Logger, sources ...enrich.Source) *EnrichStep {
	return &EnrichStep{sources: sources, logger: logger}
}

// Name returns the step name.
func (s *EnrichStep) Name() string {
	return "enrich"
}

// Do collects enrichment payloads into the report.
func (s *EnrichStep) Do(ctx context.Context, report *model.AnalysisReport) error {
	enrich.Collect(ctx, s.logger, report, s.sources...)
	return nil
}

// DefaultSteps returns the standard analysis step sequence.
// Enrichment sources are optional; with none, the enrich step is omitted.
func DefaultSteps(
	parser *numbering.Parser,
	validator *numbering.Validator,
	classifier *classify.Classifier,
	formatter *numbering.Formatter,
	countryName string,
	logger *slog.Logger,
	sources ...enrich.Source,
) []Step {
	steps := []Step{
		NewParseStep(parser),
		NewValidateStep(validator),
		NewClassifyStep(classifier),
		NewFormatStep(formatter, countryName),
	}
	if len(sources) > 0 {
		steps = append(steps, NewEnrichStep(logger, sources...))
	}
	return steps
}
