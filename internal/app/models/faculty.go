package models

// Faculty represents a faculty of the university
type Faculty struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Acronym string `json:"acronym"`
}
