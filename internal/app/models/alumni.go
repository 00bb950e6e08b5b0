package models

// Alumni is a graduate together with their career and education history.
// Instances handed to the analytics engine are read-only snapshots.
type Alumni struct {
	ID                string  `json:"id" db:"id"`
	FullName          string  `json:"fullName" db:"full_name"`
	LinkedinURL       *string `json:"linkedinUrl,omitempty" db:"linkedin_url"`
	ProfilePictureURL *string `json:"profilePictureUrl,omitempty" db:"profile_picture_url"`

	Location    *Location    `json:"location,omitempty"`
	Roles       []Role       `json:"roles"`
	Graduations []Graduation `json:"graduations"`
}
