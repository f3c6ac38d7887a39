package model

import (
	"errors"
	"testing"

	"github.com/nyaruka/phonenumbers"
)

// mustParseMeta parses a known-good number into numbering-plan metadata.
func mustParseMeta(t *testing.T, number string) *phonenumbers.PhoneNumber {
	t.Helper()

	meta, err := phonenumbers.Parse(number, "ID")
	if err != nil {
		t.Fatalf("failed to parse test number %s: %v", number, err)
	}
	return meta
}

func TestNewParsedNumber(t *testing.T) {
	t.Parallel()

	meta, err := phonenumbers.Parse("+6281234567890", "ID")
	if err != nil {
		t.Fatalf("failed to parse test number: %v", err)
	}

	tests := []struct {
		name      string
		meta      *phonenumbers.PhoneNumber
		rawDigits string
		domestic  string
		wantErr   error
	}{
		{
			name:      "valid number",
			meta:      meta,
			rawDigits: "6281234567890",
			domestic:  "081234567890",
			wantErr:   nil,
		},
		{
			name:      "nil metadata",
			meta:      nil,
			rawDigits: "6281234567890",
			domestic:  "081234567890",
			wantErr:   ErrNilNumberMetadata,
		},
		{
			name:      "empty raw digits",
			meta:      meta,
			rawDigits: "",
			domestic:  "",
			wantErr:   ErrEmptyRawDigits,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := NewParsedNumber(tt.meta, tt.rawDigits, tt.domestic)

			if tt.wantErr != nil {
				if err == nil {
					t.Errorf("expected error %v, got nil", tt.wantErr)
				} else if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}

			if p.CountryCode() != 62 {
				t.Errorf("expected country code 62, got %d", p.CountryCode())
			}
			if p.NationalNumber() != 81234567890 {
				t.Errorf("expected national number 81234567890, got %d", p.NationalNumber())
			}
			if p.RawDigits() != tt.rawDigits {
				t.Errorf("expected raw digits %s, got %s", tt.rawDigits, p.RawDigits())
			}
			if p.IsZero() {
				t.Error("expected non-zero ParsedNumber")
			}
		})
	}
}

func TestParsedNumber_LocalPrefix(t *testing.T) {
	t.Parallel()

	meta := mustParseMeta(t, "+6281234567890")

	tests := []struct {
		name     string
		domestic string
		want     string
	}{
		{
			name:     "regular mobile number",
			domestic: "081234567890",
			want:     "812",
		},
		{
			name:     "toll free number",
			domestic: "08001234567",
			want:     "800",
		},
		{
			name:     "too short for a prefix",
			domestic: "081",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := NewParsedNumber(meta, "6281234567890", tt.domestic)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got := p.LocalPrefix(); got != tt.want {
				t.Errorf("expected local prefix %q, got %q", tt.want, got)
			}
		})
	}
}

func TestParsedNumber_IsZero(t *testing.T) {
	t.Parallel()

	var zero ParsedNumber
	if !zero.IsZero() {
		t.Error("expected zero value to report IsZero")
	}
	if zero.Metadata() != nil {
		t.Error("expected nil metadata on zero value")
	}
}
