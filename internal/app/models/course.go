package models

// Course represents a degree programme taught by a faculty.
type Course struct {
	ID        string `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	Acronym   string `json:"acronym" db:"acronym"`
	FacultyID string `json:"facultyId" db:"faculty_id"`
	StartYear int    `json:"startYear" db:"start_year"`
	EndYear   *int   `json:"endYear,omitempty" db:"end_year"` // Nullable

	// Relations (populated when needed)
	Faculty *Faculty `json:"faculty,omitempty"`
}
