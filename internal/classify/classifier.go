package classify

import (
	"strings"

	"github.com/nao1215/phonescan/internal/model"
)

// Classifier resolves carrier, region, and usage category from the
// domestic digit form of a parsed number.
//
// Design decision: classification is total and never returns errors.
// Every lookup has a documented fallback ("Unknown" carrier, "Unknown
// Region", "Regular Mobile" category) so a report can always be rendered
// even for numbers outside the tables.
type Classifier struct {
	providerPrefixes map[string]string
	regionRules      []RegionRule
	profiles         map[string]model.ProviderProfile
}

// ClassifierOption is a functional option for configuring a Classifier.
type ClassifierOption func(*Classifier)

// WithProviderPrefixes replaces the built-in carrier prefix table.
func WithProviderPrefixes(prefixes map[string]string) ClassifierOption {
	return func(c *Classifier) {
		if len(prefixes) > 0 {
			c.providerPrefixes = prefixes
		}
	}
}

// WithRegionRules replaces the built-in region table. The rules are
// matched in slice order, first match wins.
func WithRegionRules(rules []RegionRule) ClassifierOption {
	return func(c *Classifier) {
		if len(rules) > 0 {
			c.regionRules = rules
		}
	}
}

// WithProfiles replaces the built-in carrier directory.
func WithProfiles(profiles map[string]model.ProviderProfile) ClassifierOption {
	return func(c *Classifier) {
		if len(profiles) > 0 {
			c.profiles = profiles
		}
	}
}

// NewClassifier creates a Classifier with the built-in Indonesian tables,
// then applies the given options.
func NewClassifier(opts ...ClassifierOption) *Classifier {
	c := &Classifier{
		providerPrefixes: defaultProviderPrefixes(),
		regionRules:      defaultRegionRules(),
		profiles:         defaultProfiles(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Provider resolves the carrier identity for the parsed number from its
// local prefix. Unknown prefixes resolve to the "Unknown" identity; the
// network type is always the table default.
func (c *Classifier) Provider(p model.ParsedNumber) model.ProviderIdentity {
	name, ok := c.providerPrefixes[p.LocalPrefix()]
	if !ok {
		return model.UnknownProvider()
	}
	return model.ProviderIdentity{
		Name:        name,
		NetworkType: model.NetworkTypeGSM,
	}
}

// Region resolves the geographic label for the parsed number. The rules
// are scanned in declaration order and the first prefix match wins; a
// more specific rule later in the table never shadows an earlier one.
func (c *Classifier) Region(p model.ParsedNumber) model.RegionInfo {
	localPrefix := p.LocalPrefix()
	if localPrefix == "" {
		return model.UnknownRegion()
	}
	for _, rule := range c.regionRules {
		if strings.HasPrefix(localPrefix, rule.Prefix) {
			return model.RegionInfo{Region: rule.Region}
		}
	}
	return model.UnknownRegion()
}

// Category resolves the usage category from the leading digits of the
// zero-prefixed domestic number. The special-prefix checks run before
// the default so a premium-rate number is never reported as regular
// mobile.
func (c *Classifier) Category(p model.ParsedNumber) model.Category {
	domestic := p.DomesticNumber()
	switch {
	case strings.HasPrefix(domestic, "0800"):
		return model.CategoryTollFree
	case strings.HasPrefix(domestic, "0899"):
		return model.CategoryPremiumRate
	case strings.HasPrefix(domestic, "0878"):
		return model.CategoryPersonalNumber
	default:
		return model.CategoryRegularMobile
	}
}

// Profile returns the directory profile for the given identity, or the
// zero profile when the directory has no entry. Unknown identities never
// have a profile.
func (c *Classifier) Profile(identity model.ProviderIdentity) model.ProviderProfile {
	if identity.IsUnknown() {
		return model.ProviderProfile{}
	}
	return c.profiles[identity.Name]
}
