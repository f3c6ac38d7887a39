package numbering

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/nao1215/phonescan/internal/model"
)

// Parser turns raw user input into a model.ParsedNumber.
//
// Parsing runs two canonicalizations side by side. The metadata engine
// receives the input as-is so its own heuristics (extensions, punctuation,
// RFC 3966 prefixes) apply. Independently the parser strips the input to
// bare digits and derives the zero-prefixed domestic form used by the
// prefix tables. Both views end up on the ParsedNumber.
type Parser struct {
	// region is the ISO 3166-1 alpha-2 region assumed for inputs without
	// an explicit country code.
	region string
	// callingCode is the country calling code of region, as a digit string.
	callingCode string
}

// NewParser creates a Parser that assumes the given default region.
// It returns ErrUnknownRegion if the metadata engine has no country
// calling code for the region.
func NewParser(region string) (*Parser, error) {
	code := phonenumbers.GetCountryCodeForRegion(region)
	if code == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRegion, region)
	}
	return &Parser{
		region:      region,
		callingCode: strconv.Itoa(code),
	}, nil
}

// Region returns the default region the parser assumes.
func (p *Parser) Region() string {
	return p.region
}

// Parse parses raw user input into a ParsedNumber.
// It returns ErrMalformedInput when the input contains no digits or the
// metadata engine rejects it.
func (p *Parser) Parse(raw string) (model.ParsedNumber, error) {
	digits := stripNonDigits(raw)
	if digits == "" {
		return model.ParsedNumber{}, fmt.Errorf("%w: no digits in %q", ErrMalformedInput, raw)
	}

	meta, err := phonenumbers.Parse(raw, p.region)
	if err != nil {
		return model.ParsedNumber{}, fmt.Errorf("%w: %q: %s", ErrMalformedInput, raw, err)
	}

	parsed, err := model.NewParsedNumber(meta, digits, p.domesticForm(digits))
	if err != nil {
		return model.ParsedNumber{}, fmt.Errorf("%w: %q: %s", ErrMalformedInput, raw, err)
	}
	return parsed, nil
}

// domesticForm rewrites a digit string that carries the default region's
// calling code into the zero-prefixed domestic form. Digit strings that
// do not start with the calling code pass through unchanged, so inputs
// already in domestic form keep their leading zero.
func (p *Parser) domesticForm(digits string) string {
	if strings.HasPrefix(digits, p.callingCode) && len(digits) > len(p.callingCode) {
		return "0" + digits[len(p.callingCode):]
	}
	return digits
}

// stripNonDigits removes everything but ASCII digits from s.
// A leading plus sign is dropped too; the calling code it introduces
// stays in the digit string.
func stripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
