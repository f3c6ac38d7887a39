package model

// NumberType represents the usage class a numbering plan assigns to a number.
//
// Design decision: We use iota-based constants whose ordinals match the
// numbering-plan metadata source's type classifier, so an ordinal coming
// out of the classifier maps directly onto this enum. The String() method
// provides human-readable output when needed.
type NumberType int

const (
	// NumberTypeFixedLine is a landline number.
	NumberTypeFixedLine NumberType = iota
	// NumberTypeMobile is a mobile subscriber number.
	NumberTypeMobile
	// NumberTypeFixedLineOrMobile is a number that could be either fixed line
	// or mobile; some plans do not distinguish the two ranges.
	NumberTypeFixedLineOrMobile
	// NumberTypeTollFree is a freephone number paid for by the callee.
	NumberTypeTollFree
	// NumberTypePremiumRate is a number billed above standard rates.
	NumberTypePremiumRate
	// NumberTypeSharedCost is a number whose cost is split between parties.
	NumberTypeSharedCost
	// NumberTypeVOIP is a voice-over-IP number.
	NumberTypeVOIP
	// NumberTypePersonalNumber is a personal number service.
	NumberTypePersonalNumber
	// NumberTypePager is a pager number.
	NumberTypePager
	// NumberTypeUAN is a universal access number (company number).
	NumberTypeUAN
	// NumberTypeUnknown is the fallback for unclassifiable numbers.
	NumberTypeUnknown
)

// String returns a human-readable representation of the number type.
func (t NumberType) String() string {
	switch t {
	case NumberTypeFixedLine:
		return "FIXED_LINE"
	case NumberTypeMobile:
		return "MOBILE"
	case NumberTypeFixedLineOrMobile:
		return "FIXED_LINE_OR_MOBILE"
	case NumberTypeTollFree:
		return "TOLL_FREE"
	case NumberTypePremiumRate:
		return "PREMIUM_RATE"
	case NumberTypeSharedCost:
		return "SHARED_COST"
	case NumberTypeVOIP:
		return "VOIP"
	case NumberTypePersonalNumber:
		return "PERSONAL_NUMBER"
	case NumberTypePager:
		return "PAGER"
	case NumberTypeUAN:
		return "UAN"
	default:
		return "UNKNOWN"
	}
}

// NumberTypeFromOrdinal maps a metadata-source type ordinal onto NumberType.
// Any ordinal outside the known set maps to NumberTypeUnknown; this function
// never fails.
func NumberTypeFromOrdinal(ordinal int) NumberType {
	if ordinal < int(NumberTypeFixedLine) || ordinal > int(NumberTypeUnknown) {
		return NumberTypeUnknown
	}
	return NumberType(ordinal)
}

// ValidationResult holds the outcome of validating a parsed number against
// its numbering plan.
//
// Invariant: IsValid implies IsPossible. A number that matches an assigned,
// dialable pattern necessarily has a plausible length.
type ValidationResult struct {
	// IsValid is true if the number conforms exactly to the numbering plan's
	// rules for its region and type.
	IsValid bool `json:"is_valid"`

	// IsPossible is true if the number has a plausible length and structure,
	// even when it is not confirmed valid.
	IsPossible bool `json:"is_possible"`

	// NumberType is the usage class assigned by the numbering plan.
	NumberType NumberType `json:"number_type"`

	// NumberTypeText is the human-readable number type.
	NumberTypeText string `json:"number_type_text"`
}

// WorstCaseValidation returns the all-negative validation result used when
// classification is impossible.
func WorstCaseValidation() ValidationResult {
	return ValidationResult{
		IsValid:        false,
		IsPossible:     false,
		NumberType:     NumberTypeUnknown,
		NumberTypeText: NumberTypeUnknown.String(),
	}
}
