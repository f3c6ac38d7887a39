package enrich

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/nao1215/phonescan/internal/model"
	"github.com/nao1215/phonescan/internal/numbering"
)

// discardLogger returns a logger that drops everything.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// parseFixture parses a known-good number for enrichment tests.
func parseFixture(t *testing.T) model.ParsedNumber {
	t.Helper()

	parser, err := numbering.NewParser("ID")
	if err != nil {
		t.Fatalf("failed to create parser: %v", err)
	}
	p, err := parser.Parse("+6281234567890")
	if err != nil {
		t.Fatalf("failed to parse fixture number: %v", err)
	}
	return p
}

// failingSource always errors.
type failingSource struct{}

func (failingSource) Name() string { return "failing" }

func (failingSource) Enrich(context.Context, model.ParsedNumber) (map[string]any, error) {
	return nil, errors.New("upstream unavailable")
}

func TestCollect(t *testing.T) {
	t.Parallel()

	report := model.NewAnalysisReport("+6281234567890")
	report.Parsed = parseFixture(t)

	Collect(context.Background(), discardLogger(), report,
		NewStaticSource("reputation", map[string]any{"spam_score": 10}),
		failingSource{},
		NewStaticSource("empty", nil),
	)

	if len(report.Enrichment) != 1 {
		t.Fatalf("expected 1 enrichment payload, got %d", len(report.Enrichment))
	}
	if _, ok := report.Enrichment["reputation"]; !ok {
		t.Error("expected reputation payload to be collected")
	}
	if _, ok := report.Enrichment["failing"]; ok {
		t.Error("expected failing source to be skipped")
	}
}

func TestFileSource_Enrich(t *testing.T) {
	t.Parallel()

	t.Run("number keyed file", func(t *testing.T) {
		t.Parallel()

		content := `{
  "+6281234567890": {
    "reputation": {"spam_score": 10}
  },
  "+6289912345678": {
    "reputation": {"spam_score": 90}
  }
}`
		path := filepath.Join(t.TempDir(), "enrichment.json")
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("failed to write test file: %v", err)
		}

		payload, err := NewFileSource(path).Enrich(context.Background(), parseFixture(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := payload["reputation"]; !ok {
			t.Errorf("expected reputation payload for the fixture number, got %v", payload)
		}
	})

	t.Run("number keyed file without entry", func(t *testing.T) {
		t.Parallel()

		content := `{"+6289912345678": {"reputation": {"spam_score": 90}}}`
		path := filepath.Join(t.TempDir(), "enrichment.json")
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("failed to write test file: %v", err)
		}

		payload, err := NewFileSource(path).Enrich(context.Background(), parseFixture(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payload != nil {
			t.Errorf("expected no payload, got %v", payload)
		}
	})

	t.Run("shared payload file", func(t *testing.T) {
		t.Parallel()

		content := `{"geolocation": {"latitude": -6.2, "longitude": 106.8}}`
		path := filepath.Join(t.TempDir(), "enrichment.json")
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("failed to write test file: %v", err)
		}

		payload, err := NewFileSource(path).Enrich(context.Background(), parseFixture(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := payload["geolocation"]; !ok {
			t.Errorf("expected shared geolocation payload, got %v", payload)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := NewFileSource(filepath.Join(t.TempDir(), "nope.json")).
			Enrich(context.Background(), parseFixture(t))
		if err == nil {
			t.Error("expected error for missing file")
		}
	})
}

func TestMetadataSource_Enrich(t *testing.T) {
	t.Parallel()

	source := NewMetadataSource(numbering.NewFormatter())

	payload, err := source.Enrich(context.Background(), parseFixture(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload["region_code"] != "ID" {
		t.Errorf("expected region_code ID, got %v", payload["region_code"])
	}

	empty, err := source.Enrich(context.Background(), model.ParsedNumber{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if empty != nil {
		t.Errorf("expected no payload for zero value, got %v", empty)
	}
}
