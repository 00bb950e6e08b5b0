package models

// Industry groups companies by sector
type Industry struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Company is an employer referenced by alumni roles
type Company struct {
	ID           string       `json:"id" db:"id"`
	Name         string       `json:"name" db:"name"`
	Logo         *string      `json:"logo,omitempty" db:"logo"`
	LevelsFyiURL *string      `json:"levelsFyiUrl,omitempty" db:"levels_fyi_url"`
	Size         *CompanySize `json:"size,omitempty" db:"company_size"`
	Type         *CompanyType `json:"type,omitempty" db:"company_type"`
	Founded      *int         `json:"founded,omitempty" db:"founded"`

	// Relations (populated when needed)
	Industry *Industry `json:"industry,omitempty"`
	Location *Location `json:"location,omitempty"` // Headquarters
}
