package model

// Company is a trekking operator. Seeded as static reference data.
type Company struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Website     string `json:"website"`
	LogoURL     string `json:"logoUrl,omitempty"`
}
