package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/nao1215/phonescan/internal/classify"
	"github.com/nao1215/phonescan/internal/enrich"
	"github.com/nao1215/phonescan/internal/model"
	"github.com/nao1215/phonescan/internal/numbering"
)

// newAnalysisPipeline wires the default steps for tests.
func newAnalysisPipeline(t *testing.T, sources ...enrich.Source) *Pipeline {
	t.Helper()

	parser, err := numbering.NewParser("ID")
	if err != nil {
		t.Fatalf("failed to create parser: %v", err)
	}

	p := New(WithLogger(testLogger()))
	p.AddSteps(DefaultSteps(
		parser,
		numbering.NewValidator(),
		classify.NewClassifier(),
		numbering.NewFormatter(),
		"Indonesia",
		testLogger(),
		sources...,
	)...)
	return p
}

func TestAnalysisPipeline_FullRun(t *testing.T) {
	t.Parallel()

	p := newAnalysisPipeline(t)
	report := model.NewAnalysisReport("+62812-3456-7890")

	if err := p.Execute(context.Background(), report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Number.E164 != "+6281234567890" {
		t.Errorf("expected E164 +6281234567890, got %s", report.Number.E164)
	}
	if report.Number.Cleaned != "081234567890" {
		t.Errorf("expected cleaned number 081234567890, got %s", report.Number.Cleaned)
	}
	if report.Number.LocalPrefix != "812" {
		t.Errorf("expected local prefix 812, got %s", report.Number.LocalPrefix)
	}
	if report.Number.Category != model.CategoryRegularMobile {
		t.Errorf("expected regular mobile category, got %s", report.Number.Category)
	}
	if !report.Validation.IsValid {
		t.Error("expected number to be valid")
	}
	if report.Provider.Identity.Name != "Telkomsel" {
		t.Errorf("expected provider Telkomsel, got %s", report.Provider.Identity.Name)
	}
	if report.Provider.Profile.FullName != "PT Telekomunikasi Selular" {
		t.Errorf("expected Telkomsel profile, got %s", report.Provider.Profile.FullName)
	}
	if report.Location.Country != "Indonesia" {
		t.Errorf("expected country Indonesia, got %s", report.Location.Country)
	}
	if report.Location.CountryCode != "+62" {
		t.Errorf("expected country code +62, got %s", report.Location.CountryCode)
	}
	if report.Technical.CountryCode != 62 {
		t.Errorf("expected technical country code 62, got %d", report.Technical.CountryCode)
	}
	if report.Technical.NationalNumber != 81234567890 {
		t.Errorf("expected national number 81234567890, got %d", report.Technical.NationalNumber)
	}

	wantSteps := []string{"parse", "validate", "classify", "format"}
	if len(report.PerformedSteps) != len(wantSteps) {
		t.Fatalf("expected %d performed steps, got %v", len(wantSteps), report.PerformedSteps)
	}
	for i, name := range wantSteps {
		if report.PerformedSteps[i] != name {
			t.Errorf("expected step %s at position %d, got %s", name, i, report.PerformedSteps[i])
		}
	}
}

func TestAnalysisPipeline_PremiumRate(t *testing.T) {
	t.Parallel()

	p := newAnalysisPipeline(t)
	report := model.NewAnalysisReport("089912345678")

	if err := p.Execute(context.Background(), report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Number.Category != model.CategoryPremiumRate {
		t.Errorf("expected premium rate category, got %s", report.Number.Category)
	}
	if report.Provider.Identity.Name != "Three" {
		t.Errorf("expected provider Three, got %s", report.Provider.Identity.Name)
	}
}

func TestAnalysisPipeline_ParseFailure(t *testing.T) {
	t.Parallel()

	p := newAnalysisPipeline(t)
	report := model.NewAnalysisReport("not a number")

	err := p.Execute(context.Background(), report)
	if !errors.Is(err, numbering.ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}

	if report.ErrorMessage == "" {
		t.Error("expected error message to be recorded")
	}
	if report.Validation.IsValid {
		t.Error("expected worst-case validation on parse failure")
	}
	if report.Validation.NumberType != model.NumberTypeUnknown {
		t.Errorf("expected unknown number type, got %v", report.Validation.NumberType)
	}
}

func TestAnalysisPipeline_WithEnrichment(t *testing.T) {
	t.Parallel()

	p := newAnalysisPipeline(t,
		enrich.NewStaticSource("reputation", map[string]any{"spam_score": 10}),
	)
	report := model.NewAnalysisReport("+6281234567890")

	if err := p.Execute(context.Background(), report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := report.Enrichment["reputation"]; !ok {
		t.Error("expected reputation payload to be attached")
	}
	if len(report.PerformedSteps) != 5 {
		t.Errorf("expected 5 performed steps, got %v", report.PerformedSteps)
	}
}
