package classify

import (
	"testing"

	"github.com/nyaruka/phonenumbers"

	"github.com/nao1215/phonescan/internal/model"
)

// parsedWithDomestic builds a ParsedNumber whose domestic form is under
// test. The metadata itself is irrelevant to classification.
func parsedWithDomestic(t *testing.T, domestic string) model.ParsedNumber {
	t.Helper()

	meta, err := phonenumbers.Parse("+6281234567890", "ID")
	if err != nil {
		t.Fatalf("failed to parse fixture number: %v", err)
	}
	p, err := model.NewParsedNumber(meta, "6281234567890", domestic)
	if err != nil {
		t.Fatalf("failed to build parsed number: %v", err)
	}
	return p
}

func TestClassifier_Provider(t *testing.T) {
	t.Parallel()

	c := NewClassifier()

	tests := []struct {
		name     string
		domestic string
		want     string
	}{
		{name: "telkomsel block", domestic: "081234567890", want: "Telkomsel"},
		{name: "indosat block", domestic: "081512345678", want: "Indosat"},
		{name: "xl block", domestic: "087812345678", want: "XL"},
		{name: "axis block", domestic: "083812345678", want: "AXIS"},
		{name: "three block", domestic: "089912345678", want: "Three"},
		{name: "smart block", domestic: "088112345678", want: "Smart"},
		{name: "unassigned prefix", domestic: "084012345678", want: model.UnknownProviderName},
		{name: "too short for a prefix", domestic: "081", want: model.UnknownProviderName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := c.Provider(parsedWithDomestic(t, tt.domestic))

			if got.Name != tt.want {
				t.Errorf("expected provider %s, got %s", tt.want, got.Name)
			}
			if got.Name != model.UnknownProviderName && got.NetworkType != model.NetworkTypeGSM {
				t.Errorf("expected GSM network type, got %s", got.NetworkType)
			}
		})
	}
}

func TestClassifier_Region(t *testing.T) {
	t.Parallel()

	c := NewClassifier()

	tests := []struct {
		name     string
		domestic string
		want     string
	}{
		{name: "jakarta", domestic: "021512345678", want: "Jakarta"},
		{name: "bandung", domestic: "022012345678", want: "Bandung"},
		{name: "surabaya", domestic: "031812345678", want: "Surabaya"},
		{name: "mobile prefix falls into papua block", domestic: "081234567890", want: "Papua"},
		{name: "no matching rule", domestic: "099912345678", want: model.UnknownRegionName},
		{name: "too short for a prefix", domestic: "081", want: model.UnknownRegionName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := c.Region(parsedWithDomestic(t, tt.domestic))

			if got.Region != tt.want {
				t.Errorf("expected region %s, got %s", tt.want, got.Region)
			}
		})
	}
}

// TestClassifier_RegionMatchOrder pins the first-match semantics: a rule
// earlier in the table wins even when a later rule matches more digits.
func TestClassifier_RegionMatchOrder(t *testing.T) {
	t.Parallel()

	c := NewClassifier(WithRegionRules([]RegionRule{
		{Prefix: "2", Region: "Broad"},
		{Prefix: "21", Region: "Specific"},
	}))

	got := c.Region(parsedWithDomestic(t, "021512345678"))
	if got.Region != "Broad" {
		t.Errorf("expected first declared rule to win, got %s", got.Region)
	}
}

func TestClassifier_Category(t *testing.T) {
	t.Parallel()

	c := NewClassifier()

	tests := []struct {
		name     string
		domestic string
		want     model.Category
	}{
		{name: "toll free", domestic: "08001234567", want: model.CategoryTollFree},
		{name: "premium rate", domestic: "089912345678", want: model.CategoryPremiumRate},
		{name: "personal number", domestic: "087812345678", want: model.CategoryPersonalNumber},
		{name: "regular mobile", domestic: "081234567890", want: model.CategoryRegularMobile},
		{name: "fixed line defaults to regular mobile", domestic: "021512345678", want: model.CategoryRegularMobile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := c.Category(parsedWithDomestic(t, tt.domestic)); got != tt.want {
				t.Errorf("expected category %s, got %s", tt.want, got)
			}
		})
	}
}

func TestClassifier_Profile(t *testing.T) {
	t.Parallel()

	c := NewClassifier()

	tests := []struct {
		name     string
		identity model.ProviderIdentity
		wantZero bool
		wantFull string
	}{
		{
			name:     "telkomsel profile",
			identity: model.ProviderIdentity{Name: "Telkomsel", NetworkType: model.NetworkTypeGSM},
			wantFull: "PT Telekomunikasi Selular",
		},
		{
			name:     "smart has prefixes but no profile",
			identity: model.ProviderIdentity{Name: "Smart", NetworkType: model.NetworkTypeGSM},
			wantZero: true,
		},
		{
			name:     "unknown identity",
			identity: model.UnknownProvider(),
			wantZero: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := c.Profile(tt.identity)

			if tt.wantZero {
				if !got.IsZero() {
					t.Errorf("expected zero profile, got %+v", got)
				}
				return
			}
			if got.FullName != tt.wantFull {
				t.Errorf("expected full name %s, got %s", tt.wantFull, got.FullName)
			}
		})
	}
}

func TestClassifier_Options(t *testing.T) {
	t.Parallel()

	c := NewClassifier(
		WithProviderPrefixes(map[string]string{"900": "TestCarrier"}),
		WithProfiles(map[string]model.ProviderProfile{
			"TestCarrier": {FullName: "PT Test Carrier"},
		}),
	)

	identity := c.Provider(parsedWithDomestic(t, "090012345678"))
	if identity.Name != "TestCarrier" {
		t.Errorf("expected TestCarrier, got %s", identity.Name)
	}
	if got := c.Profile(identity); got.FullName != "PT Test Carrier" {
		t.Errorf("expected overridden profile, got %+v", got)
	}

	// The built-in table was replaced, not merged.
	if got := c.Provider(parsedWithDomestic(t, "081234567890")); !got.IsUnknown() {
		t.Errorf("expected unknown provider after override, got %s", got.Name)
	}
}
