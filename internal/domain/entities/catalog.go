package entities

// ServiceType is the read-only catalog entry an estimate is classified under.
// BaseEstimationValueUnit is the per-area base charge applied to the area answer.
type ServiceType struct {
	ID                      string        `json:"id"`
	Name                    string        `json:"name"`
	BaseEstimationValueUnit float64       `json:"base_estimation_value_unit"`
	Subcategories           []Subcategory `json:"subcategories,omitempty"`
	Packages                []string      `json:"packages,omitempty"`
	Active                  bool          `json:"active"`
}

type Subcategory struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// HasSubcategory reports whether id names an active subcategory of the type.
func (t ServiceType) HasSubcategory(id string) bool {
	for _, s := range t.Subcategories {
		if s.ID == id && s.Active {
			return true
		}
	}
	return false
}

func (t ServiceType) HasPackage(id string) bool {
	for _, p := range t.Packages {
		if p == id {
			return true
		}
	}
	return false
}
