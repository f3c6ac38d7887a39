package model

// NetworkType represents the radio-access family a provider operates.
type NetworkType string

const (
	// NetworkTypeGSM is the default radio-access family. The reference
	// numbering data only covers GSM carriers, so unknown providers
	// also default to GSM.
	NetworkTypeGSM NetworkType = "GSM"
	// NetworkTypeCDMA is kept for directory entries loaded from external
	// configuration that describe legacy CDMA blocks.
	NetworkTypeCDMA NetworkType = "CDMA"
)

// Sentinel labels for unresolved lookups. Classifier lookups never fail;
// unmatched prefixes resolve to these values instead.
const (
	// UnknownProviderName is the provider identity used when no prefix matches.
	UnknownProviderName = "Unknown"
	// UnknownRegionName is the region label used when no prefix matches.
	UnknownRegionName = "Unknown Region"
)

// ProviderIdentity identifies the carrier that holds a numbering block.
// Many prefixes map to one identity; a provider holds multiple blocks.
type ProviderIdentity struct {
	// Name is the short provider identifier (e.g. "Telkomsel"), or the
	// UnknownProviderName sentinel when no prefix matched.
	Name string `json:"name"`

	// NetworkType is the provider's radio-access family.
	NetworkType NetworkType `json:"network_type"`
}

// UnknownProvider returns the sentinel identity for unmatched prefixes.
func UnknownProvider() ProviderIdentity {
	return ProviderIdentity{
		Name:        UnknownProviderName,
		NetworkType: NetworkTypeGSM,
	}
}

// IsUnknown returns true if this identity is the unmatched-prefix sentinel.
func (p ProviderIdentity) IsUnknown() bool {
	return p.Name == UnknownProviderName
}

// ProviderProfile holds descriptive directory metadata for a provider.
// Absence of a directory entry is not an error; all fields default to
// empty/unknown.
type ProviderProfile struct {
	// FullName is the provider's legal name.
	FullName string `json:"full_name,omitempty" yaml:"full_name,omitempty"`

	// Website is the provider's public website.
	Website string `json:"website,omitempty" yaml:"website,omitempty"`

	// CustomerService is the provider's hotline number.
	CustomerService string `json:"customer_service,omitempty" yaml:"customer_service,omitempty"`

	// NetworkTech lists the supported network generations in order (e.g. 2G..5G).
	NetworkTech []string `json:"network_tech,omitempty" yaml:"network_tech,omitempty"`

	// Founded is the provider's founding year.
	Founded int `json:"founded,omitempty" yaml:"founded,omitempty"`

	// MarketShare is the provider's market share (e.g. "46%").
	MarketShare string `json:"market_share,omitempty" yaml:"market_share,omitempty"`

	// ParentCompany is the provider's parent company or owners.
	ParentCompany string `json:"parent_company,omitempty" yaml:"parent_company,omitempty"`
}

// IsZero returns true if the profile carries no directory data.
func (p ProviderProfile) IsZero() bool {
	return p.FullName == "" && p.Website == "" && p.CustomerService == "" &&
		len(p.NetworkTech) == 0 && p.Founded == 0 && p.MarketShare == "" &&
		p.ParentCompany == ""
}

// RegionInfo holds the geographic label resolved from the region-prefix table.
type RegionInfo struct {
	// Region is the geographic label, or the UnknownRegionName sentinel
	// when no table entry matched.
	Region string `json:"region"`
}

// UnknownRegion returns the sentinel region for unmatched prefixes.
func UnknownRegion() RegionInfo {
	return RegionInfo{Region: UnknownRegionName}
}
