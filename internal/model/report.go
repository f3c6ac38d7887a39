package model

import (
	"time"
)

// AnalysisReport is the main analysis result structure.
// It aggregates everything the analysis pipeline learned about one number.
//
// Design decision: We use a single large struct rather than many small ones
// to simplify serialization and database storage. The section sub-structs
// group related fields the way the report is displayed.
//
// Lifecycle: constructed once per request, filled in by pipeline steps,
// immutable after the pipeline completes, then persisted by the history
// store. It is never mutated after persistence.
type AnalysisReport struct {
	// OriginalInput is the raw phone number string as entered by the user.
	OriginalInput string `json:"original_input"`

	// AnalyzedAt is the wall-clock timestamp when the analysis was performed.
	// It serializes in ISO-8601 (RFC 3339) form.
	AnalyzedAt time.Time `json:"analyzed_at"`

	// Number contains the canonical formatted representations and category.
	Number NumberDetail `json:"number"`

	// Validation contains the numbering-plan validation outcome.
	Validation ValidationResult `json:"validation"`

	// Provider contains the carrier identity and directory profile.
	Provider ProviderDetail `json:"provider"`

	// Location contains the geographic information for the number.
	Location LocationDetail `json:"location"`

	// Technical contains the raw numbering-plan fields.
	Technical TechnicalDetail `json:"technical"`

	// Enrichment holds externally supplied data (geolocation coordinates,
	// reputation scores, social-presence flags) keyed by source name.
	// The core treats these payloads as opaque pass-through data and never
	// validates their contents.
	Enrichment map[string]any `json:"enrichment,omitempty"`

	// Parsed is the canonical parsed number used by pipeline steps.
	// Excluded from JSON; the serializable projection lives in Technical.
	Parsed ParsedNumber `json:"-"`

	// PerformedSteps lists the pipeline steps that were actually executed.
	PerformedSteps []string `json:"performed_steps,omitempty"`

	// Error contains any error that occurred during analysis.
	// Only set if the analysis failed or partially failed.
	Error error `json:"-"` // Excluded from JSON

	// ErrorMessage is the string representation of Error for serialization.
	ErrorMessage string `json:"error,omitempty"` //nolint:tagliatelle // error is conventional
}

// NumberDetail contains the canonical formatted representations of a number.
type NumberDetail struct {
	// National is the number in national format (e.g. "0812-3456-7890").
	National string `json:"national_format"`

	// International is the number in international format (e.g. "+62 812-3456-7890").
	International string `json:"international_format"`

	// E164 is the number in E.164 canonical format (e.g. "+6281234567890").
	E164 string `json:"e164_format"`

	// LocalPrefix is the three digits following the domestic leading zero.
	LocalPrefix string `json:"local_prefix"`

	// Cleaned is the zero-prefixed domestic digit string.
	Cleaned string `json:"cleaned_number"`

	// Category is the usage category inferred from the leading digits.
	Category Category `json:"category"`
}

// ProviderDetail groups the carrier identity with its directory profile.
type ProviderDetail struct {
	// Identity is the carrier resolved from the prefix table.
	Identity ProviderIdentity `json:"identity"`

	// Profile is the directory metadata for the identity.
	// Empty when the identity has no directory entry.
	Profile ProviderProfile `json:"profile"`
}

// LocationDetail contains the geographic information for a number.
type LocationDetail struct {
	// Country is the country name for the numbering plan.
	Country string `json:"country"`

	// CountryCode is the country calling code with a leading plus (e.g. "+62").
	CountryCode string `json:"country_code"`

	// Region is the geographic label resolved from the region-prefix table.
	Region string `json:"region"`

	// Timezones lists the time zones associated with the number.
	Timezones []string `json:"timezones,omitempty"`

	// CarrierRegion is the ISO region code the metadata source assigns
	// to the number.
	CarrierRegion string `json:"carrier_region,omitempty"`
}

// TechnicalDetail contains the raw numbering-plan fields of a number.
type TechnicalDetail struct {
	// CountryCode is the numbering plan's country calling code.
	CountryCode int `json:"country_code"`

	// NationalNumber is the subscriber number after the country code.
	NationalNumber uint64 `json:"national_number"`

	// AreaCode is the local prefix used for carrier and region inference.
	AreaCode string `json:"area_code"`
}

// NewAnalysisReport creates a new report for the given raw input.
// The analysis timestamp is stamped at creation time.
func NewAnalysisReport(originalInput string) *AnalysisReport {
	return &AnalysisReport{
		OriginalInput: originalInput,
		AnalyzedAt:    time.Now(),
	}
}

// MergeEnrichment attaches an externally produced payload to the report
// under the given source name. The payload is stored as-is; the core is
// agnostic to the enrichment schema.
func (r *AnalysisReport) MergeEnrichment(source string, payload any) {
	if r.Enrichment == nil {
		r.Enrichment = make(map[string]any)
	}
	r.Enrichment[source] = payload
}
