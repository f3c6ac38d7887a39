package model

// Category is the usage category inferred from the leading digits of the
// zero-prefixed national number.
type Category string

const (
	// CategoryTollFree covers numbers starting with 0800.
	CategoryTollFree Category = "Toll-Free"
	// CategoryPremiumRate covers numbers starting with 0899.
	CategoryPremiumRate Category = "Premium Rate"
	// CategoryPersonalNumber covers numbers starting with 0878.
	CategoryPersonalNumber Category = "Personal Number"
	// CategoryRegularMobile is the default category when no special
	// prefix matches.
	CategoryRegularMobile Category = "Regular Mobile"
)

// String returns the category label.
func (c Category) String() string {
	return string(c)
}
