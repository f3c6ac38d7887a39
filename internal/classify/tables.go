package classify

import "github.com/nao1215/phonescan/internal/model"

// RegionRule pairs a digit prefix with the geographic label it resolves to.
type RegionRule struct {
	// Prefix is matched against the start of the local prefix.
	Prefix string `yaml:"prefix"`
	// Region is the geographic label (e.g. "Jakarta").
	Region string `yaml:"region"`
}

// defaultProviderPrefixes maps the three digits after the domestic leading
// zero to the carrier that owns the block.
func defaultProviderPrefixes() map[string]string {
	return map[string]string{
		"811": "Telkomsel", "812": "Telkomsel", "813": "Telkomsel",
		"821": "Telkomsel", "822": "Telkomsel", "823": "Telkomsel",
		"851": "Telkomsel", "852": "Telkomsel", "853": "Telkomsel",
		"814": "Indosat", "815": "Indosat", "816": "Indosat",
		"855": "Indosat", "856": "Indosat", "857": "Indosat", "858": "Indosat",
		"817": "XL", "818": "XL", "819": "XL",
		"859": "XL", "877": "XL", "878": "XL",
		"838": "AXIS", "831": "AXIS", "832": "AXIS", "833": "AXIS",
		"895": "Three", "896": "Three", "897": "Three", "898": "Three", "899": "Three",
		"881": "Smart", "882": "Smart", "883": "Smart",
		"884": "Smart", "885": "Smart", "886": "Smart",
		"887": "Smart", "888": "Smart", "889": "Smart",
	}
}

// defaultRegionRules returns the region table in match order. Region
// resolution scans the slice and takes the first rule whose prefix is a
// leading substring of the local prefix, so the order here is load-bearing:
// "62" must be tried after the city codes that start with "6".
func defaultRegionRules() []RegionRule {
	return []RegionRule{
		{Prefix: "21", Region: "Jakarta"},
		{Prefix: "22", Region: "Bandung"},
		{Prefix: "24", Region: "Semarang"},
		{Prefix: "31", Region: "Surabaya"},
		{Prefix: "61", Region: "Medan"},
		{Prefix: "62", Region: "Sumatra"},
		{Prefix: "63", Region: "Kalimantan"},
		{Prefix: "65", Region: "Kalimantan Timur"},
		{Prefix: "67", Region: "Maluku"},
		{Prefix: "71", Region: "Sulawesi"},
		{Prefix: "73", Region: "Sulawesi Selatan"},
		{Prefix: "81", Region: "Papua"},
	}
}

// defaultProfiles returns the directory profiles for the carriers the
// prefix table knows about. Smart has prefix blocks but no directory
// entry, matching the upstream data set.
func defaultProfiles() map[string]model.ProviderProfile {
	return map[string]model.ProviderProfile{
		"Telkomsel": {
			FullName:        "PT Telekomunikasi Selular",
			Website:         "www.telkomsel.com",
			CustomerService: "188",
			NetworkTech:     []string{"2G", "3G", "4G", "5G"},
			Founded:         1995,
			MarketShare:     "46%",
			ParentCompany:   "Telkom Indonesia & Singtel",
		},
		"Indosat": {
			FullName:        "PT Indosat Ooredoo Hutchison",
			Website:         "www.indosatooredoo.com",
			CustomerService: "185",
			NetworkTech:     []string{"2G", "3G", "4G"},
			Founded:         1967,
			MarketShare:     "16%",
			ParentCompany:   "Ooredoo & CK Hutchison",
		},
		"XL": {
			FullName:        "PT XL Axiata",
			Website:         "www.xl.co.id",
			CustomerService: "817",
			NetworkTech:     []string{"2G", "3G", "4G"},
			Founded:         1989,
			MarketShare:     "14%",
			ParentCompany:   "Axiata Group",
		},
		"AXIS": {
			FullName:        "PT AXIS Telekom Indonesia (Now XL Axiata)",
			Website:         "www.axis.co.id",
			CustomerService: "838",
			NetworkTech:     []string{"3G", "4G"},
			Founded:         2005,
			MarketShare:     "5%",
			ParentCompany:   "XL Axiata",
		},
		"Three": {
			FullName:        "PT Hutchison 3 Indonesia",
			Website:         "www.three.co.id",
			CustomerService: "123",
			NetworkTech:     []string{"3G", "4G"},
			Founded:         2007,
			MarketShare:     "12%",
			ParentCompany:   "CK Hutchison Holdings",
		},
	}
}
