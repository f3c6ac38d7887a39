package numbering

import (
	"github.com/nyaruka/phonenumbers"

	"github.com/nao1215/phonescan/internal/model"
)

// Validator projects the metadata engine's verdicts for a parsed number
// into a model.ValidationResult.
type Validator struct{}

// NewValidator creates a Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate returns the validation verdicts for the parsed number.
// It is total: a zero-value ParsedNumber yields the worst-case result
// (invalid, not possible, unknown type) instead of an error, so callers
// can always render a validation section.
func (v *Validator) Validate(p model.ParsedNumber) model.ValidationResult {
	if p.IsZero() {
		return model.WorstCaseValidation()
	}

	numberType := model.NumberTypeFromOrdinal(int(phonenumbers.GetNumberType(p.Metadata())))
	return model.ValidationResult{
		IsValid:        phonenumbers.IsValidNumber(p.Metadata()),
		IsPossible:     phonenumbers.IsPossibleNumber(p.Metadata()),
		NumberType:     numberType,
		NumberTypeText: numberType.String(),
	}
}
