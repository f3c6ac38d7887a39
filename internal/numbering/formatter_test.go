package numbering

import (
	"errors"
	"testing"

	"github.com/nao1215/phonescan/internal/model"
)

func TestFormatter_Formats(t *testing.T) {
	t.Parallel()

	parser, err := NewParser("ID")
	if err != nil {
		t.Fatalf("failed to create parser: %v", err)
	}
	formatter := NewFormatter()

	parsed, err := parser.Parse("081234567890")
	if err != nil {
		t.Fatalf("failed to parse test number: %v", err)
	}

	got, err := formatter.Formats(parsed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.E164 != "+6281234567890" {
		t.Errorf("expected E164 +6281234567890, got %s", got.E164)
	}
	if got.National == "" {
		t.Error("expected non-empty national format")
	}
	if got.International == "" {
		t.Error("expected non-empty international format")
	}
}

// TestFormatter_E164RoundTrip verifies that re-parsing a number from its
// E.164 form preserves the validation result of the original input.
func TestFormatter_E164RoundTrip(t *testing.T) {
	t.Parallel()

	parser, err := NewParser("ID")
	if err != nil {
		t.Fatalf("failed to create parser: %v", err)
	}
	formatter := NewFormatter()
	validator := NewValidator()

	tests := []struct {
		name  string
		input string
	}{
		{name: "valid mobile in domestic form", input: "081234567890"},
		{name: "overlong number", input: "+62123456789012"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			parsed, err := parser.Parse(tt.input)
			if err != nil {
				t.Fatalf("failed to parse %s: %v", tt.input, err)
			}
			want := validator.Validate(parsed)

			formats, err := formatter.Formats(parsed)
			if err != nil {
				t.Fatalf("failed to format %s: %v", tt.input, err)
			}

			reparsed, err := parser.Parse(formats.E164)
			if err != nil {
				t.Fatalf("failed to re-parse %s: %v", formats.E164, err)
			}
			got := validator.Validate(reparsed)

			if got.IsValid != want.IsValid {
				t.Errorf("expected IsValid=%v after round trip, got %v", want.IsValid, got.IsValid)
			}
			if got.IsPossible != want.IsPossible {
				t.Errorf("expected IsPossible=%v after round trip, got %v", want.IsPossible, got.IsPossible)
			}
			if got.NumberType != want.NumberType {
				t.Errorf("expected number type %v after round trip, got %v", want.NumberType, got.NumberType)
			}
		})
	}
}

func TestFormatter_FormatsZeroValue(t *testing.T) {
	t.Parallel()

	_, err := NewFormatter().Formats(model.ParsedNumber{})
	if !errors.Is(err, ErrFormatFailed) {
		t.Errorf("expected ErrFormatFailed, got %v", err)
	}
}

func TestFormatter_CarrierRegion(t *testing.T) {
	t.Parallel()

	parser, err := NewParser("ID")
	if err != nil {
		t.Fatalf("failed to create parser: %v", err)
	}
	formatter := NewFormatter()

	parsed, err := parser.Parse("+6281234567890")
	if err != nil {
		t.Fatalf("failed to parse test number: %v", err)
	}

	if got := formatter.CarrierRegion(parsed); got != "ID" {
		t.Errorf("expected carrier region ID, got %s", got)
	}
	if got := formatter.CarrierRegion(model.ParsedNumber{}); got != "" {
		t.Errorf("expected empty region for zero value, got %s", got)
	}
}

func TestFormatter_TimezonesZeroValue(t *testing.T) {
	t.Parallel()

	if got := NewFormatter().Timezones(model.ParsedNumber{}); got != nil {
		t.Errorf("expected nil timezones for zero value, got %v", got)
	}
}

func TestFormatter_CarrierNameZeroValue(t *testing.T) {
	t.Parallel()

	if got := NewFormatter().CarrierName(model.ParsedNumber{}); got != "" {
		t.Errorf("expected empty carrier name for zero value, got %s", got)
	}
}
