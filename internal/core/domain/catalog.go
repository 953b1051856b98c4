package domain

// CatalogSection is one questionnaire with its questions in display order.
type CatalogSection struct {
	Section   Section    `json:"section"`
	Questions []Question `json:"questions"`
}

// Catalog describes everything a client needs to collect a complete input.
type Catalog struct {
	PolicyVersion  string           `json:"policyVersion"`
	Sections       []CatalogSection `json:"sections"`
	LineItemGroups []LineItemGroup  `json:"lineItemGroups"`
	BondTypes      []BondType       `json:"bondTypes"`
	EmployerTypes  []EmployerType   `json:"employerTypes"`
}

// NewCatalog assembles the catalog for a policy version.
func NewCatalog(policyVersion string) Catalog {
	sections := make([]CatalogSection, 0, len(Sections))
	for _, sec := range Sections {
		sections = append(sections, CatalogSection{Section: sec, Questions: Questions(sec)})
	}
	return Catalog{
		PolicyVersion:  policyVersion,
		Sections:       sections,
		LineItemGroups: LineItemGroups(),
		BondTypes:      append([]BondType(nil), BondTypes...),
		EmployerTypes:  []EmployerType{EmployerPrivate, EmployerStateOwned},
	}
}
