package model

import (
	"errors"

	"github.com/nyaruka/phonenumbers"
)

// ParsedNumber errors.
var (
	// ErrEmptyRawDigits is returned when the raw input contains no digits.
	ErrEmptyRawDigits = errors.New("raw digits cannot be empty")
	// ErrInvalidCountryCode is returned when the country calling code is not positive.
	ErrInvalidCountryCode = errors.New("invalid country calling code")
	// ErrNilNumberMetadata is returned when the numbering-plan metadata is missing.
	ErrNilNumberMetadata = errors.New("number metadata cannot be nil")
)

// localPrefixLen is the number of digits following the domestic leading zero
// that identify a carrier numbering block.
const localPrefixLen = 3

// ParsedNumber is an immutable value object holding the canonical
// numbering-plan representation of a phone number. It is created once per
// analysis request by the parser and never modified afterwards.
type ParsedNumber struct {
	countryCode    int                       // Country calling code (e.g. 62)
	nationalNumber uint64                    // Digits after the country code
	rawDigits      string                    // Decimal digits extracted from raw input
	domestic       string                    // Zero-prefixed domestic form of rawDigits
	meta           *phonenumbers.PhoneNumber // Underlying numbering-plan metadata
}

// NewParsedNumber creates a ParsedNumber from parsed numbering-plan metadata,
// the digits extracted from the raw input, and the zero-prefixed domestic
// rendering of those digits. It enforces the ParsedNumber invariants:
// rawDigits is never empty and the country code is a positive calling code.
func NewParsedNumber(meta *phonenumbers.PhoneNumber, rawDigits, domestic string) (ParsedNumber, error) {
	if meta == nil {
		return ParsedNumber{}, ErrNilNumberMetadata
	}
	if rawDigits == "" {
		return ParsedNumber{}, ErrEmptyRawDigits
	}

	countryCode := int(meta.GetCountryCode())
	if countryCode <= 0 {
		return ParsedNumber{}, ErrInvalidCountryCode
	}

	return ParsedNumber{
		countryCode:    countryCode,
		nationalNumber: meta.GetNationalNumber(),
		rawDigits:      rawDigits,
		domestic:       domestic,
		meta:           meta,
	}, nil
}

// CountryCode returns the numbering plan's country calling code.
func (p ParsedNumber) CountryCode() int {
	return p.countryCode
}

// NationalNumber returns the digits after the country code.
func (p ParsedNumber) NationalNumber() uint64 {
	return p.nationalNumber
}

// RawDigits returns the decimal digits extracted from the raw input,
// with all non-digit characters discarded.
func (p ParsedNumber) RawDigits() string {
	return p.rawDigits
}

// DomesticNumber returns the zero-prefixed domestic form of the number
// (the country calling code rewritten to the domestic leading zero).
func (p ParsedNumber) DomesticNumber() string {
	return p.domestic
}

// LocalPrefix returns the three digits following the domestic leading zero.
// This prefix identifies the carrier numbering block. Returns an empty
// string if the domestic number is too short to carry a prefix.
func (p ParsedNumber) LocalPrefix() string {
	if len(p.domestic) < localPrefixLen+1 {
		return ""
	}
	return p.domestic[1 : localPrefixLen+1]
}

// Metadata returns the underlying numbering-plan metadata.
// It is nil only for the zero value.
func (p ParsedNumber) Metadata() *phonenumbers.PhoneNumber {
	return p.meta
}

// IsZero returns true if this is a zero value (empty) ParsedNumber.
func (p ParsedNumber) IsZero() bool {
	return p.meta == nil
}
