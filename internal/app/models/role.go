package models

import "time"

// EscoClassification is a node of the ESCO occupation taxonomy
type EscoClassification struct {
	Code    string  `json:"code" db:"code"`
	TitleEn string  `json:"titleEn" db:"title_en"`
	Level   int     `json:"level" db:"level"`
	EscoURL *string `json:"escoUrl,omitempty" db:"esco_url"`
}

// JobClassification links a role to an ESCO classification. Rank 1 is the
// primary classification of the role.
type JobClassification struct {
	RoleID               string             `json:"roleId" db:"role_id"`
	EscoClassificationID string             `json:"escoClassificationId" db:"esco_classification_id"`
	Rank                 int                `json:"rank" db:"rank"`
	Confidence           *float64           `json:"confidence,omitempty" db:"confidence"`
	WasAcceptedByUser    *bool              `json:"wasAcceptedByUser,omitempty" db:"was_accepted_by_user"`
	EscoClassification   EscoClassification `json:"escoClassification"`
}

// Role is one position held by an alumnus. EndDate is nil while the role is ongoing.
type Role struct {
	ID             string         `json:"id" db:"id"`
	AlumniID       string         `json:"alumniId" db:"alumni_id"`
	StartDate      time.Time      `json:"startDate" db:"start_date"`
	EndDate        *time.Time     `json:"endDate,omitempty" db:"end_date"`
	IsCurrent      bool           `json:"isCurrent" db:"is_current"`
	SeniorityLevel SeniorityLevel `json:"seniorityLevel" db:"seniority_level"`

	Location        *Location           `json:"location,omitempty"`
	Company         *Company            `json:"company,omitempty"`
	Classifications []JobClassification `json:"jobClassifications,omitempty"`
}

// EffectiveEnd returns the end date, or now for ongoing roles
func (r *Role) EffectiveEnd(now time.Time) time.Time {
	if r.EndDate == nil {
		return now
	}
	return *r.EndDate
}

// ActiveAt reports whether the role was held at instant t
func (r *Role) ActiveAt(t time.Time) bool {
	if r.StartDate.After(t) {
		return false
	}
	return r.EndDate == nil || !r.EndDate.Before(t)
}

// PrimaryClassification returns the rank-1 classification, or nil
func (r *Role) PrimaryClassification() *JobClassification {
	for i := range r.Classifications {
		if r.Classifications[i].Rank == 1 {
			return &r.Classifications[i]
		}
	}
	return nil
}

// Industry returns the industry of the role's company, or nil
func (r *Role) Industry() *Industry {
	if r.Company == nil {
		return nil
	}
	return r.Company.Industry
}
