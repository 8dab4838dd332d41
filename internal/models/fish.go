package models

// Fish is a catalog listing. Photo and Video hold public upload paths;
// only Photo is mandatory.
type Fish struct {
	BaseModel
	Name  string  `json:"name"`
	Photo string  `json:"photo"`
	Video string  `json:"video"`
	Price float64 `json:"price"`
	Type  string  `json:"type"`
}
