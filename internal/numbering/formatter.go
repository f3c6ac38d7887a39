package numbering

import (
	"github.com/nyaruka/phonenumbers"

	"github.com/nao1215/phonescan/internal/model"
)

// Formats holds the three canonical renderings of a phone number.
type Formats struct {
	// National is the national format (e.g. "0812-3456-7890").
	National string
	// International is the international format (e.g. "+62 812-3456-7890").
	International string
	// E164 is the E.164 canonical format (e.g. "+6281234567890").
	E164 string
}

// Formatter renders parsed numbers and exposes the metadata engine's
// geographic annotations (time zones, carrier name, carrier region).
type Formatter struct{}

// NewFormatter creates a Formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Formats renders the parsed number in all three canonical styles.
// It returns ErrFormatFailed only for a zero-value ParsedNumber;
// formatting a successfully parsed number never fails.
func (f *Formatter) Formats(p model.ParsedNumber) (Formats, error) {
	if p.IsZero() {
		return Formats{}, ErrFormatFailed
	}
	return Formats{
		National:      phonenumbers.Format(p.Metadata(), phonenumbers.NATIONAL),
		International: phonenumbers.Format(p.Metadata(), phonenumbers.INTERNATIONAL),
		E164:          phonenumbers.Format(p.Metadata(), phonenumbers.E164),
	}, nil
}

// Timezones returns the time zones the metadata engine associates with
// the parsed number. It returns nil when the number is empty or the
// metadata has no time zone information.
func (f *Formatter) Timezones(p model.ParsedNumber) []string {
	if p.IsZero() {
		return nil
	}
	zones, err := phonenumbers.GetTimezonesForNumber(p.Metadata())
	if err != nil {
		return nil
	}
	return zones
}

// CarrierRegion returns the ISO region code the metadata engine assigns
// to the parsed number, or "" when it cannot be determined.
func (f *Formatter) CarrierRegion(p model.ParsedNumber) string {
	if p.IsZero() {
		return ""
	}
	return phonenumbers.GetRegionCodeForNumber(p.Metadata())
}

// CarrierName returns the carrier name from the metadata engine's carrier
// mapping, or "" when the mapping has no entry for the number. This is
// independent of the prefix-table carrier resolution; the two can disagree
// for ported numbers.
func (f *Formatter) CarrierName(p model.ParsedNumber) string {
	if p.IsZero() {
		return ""
	}
	name, err := phonenumbers.GetCarrierForNumber(p.Metadata(), "en")
	if err != nil {
		return ""
	}
	return name
}
