package models

// Graduation records an alumnus concluding a course
type Graduation struct {
	ID             string `json:"id" db:"id"`
	AlumniID       string `json:"alumniId" db:"alumni_id"`
	CourseID       string `json:"courseId" db:"course_id"`
	ConclusionYear int    `json:"conclusionYear" db:"conclusion_year"`

	Course *Course `json:"course,omitempty"`
}

// Faculty returns the faculty the graduation belongs to, or nil when the
// course relation was not loaded.
func (g *Graduation) Faculty() *Faculty {
	if g.Course == nil {
		return nil
	}
	return g.Course.Faculty
}
