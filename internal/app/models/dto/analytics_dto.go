package dto

// DataPoint is one bucket of a trend series
type DataPoint struct {
	Label string `json:"label" example:"2020-01"`
	Value int    `json:"value" example:"3"`
}

// DimensionResult holds one page of an aggregated dimension. Count is the
// number of distinct grouped items before pagination.
type DimensionResult[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count" example:"42"`
}

// AlumniListItem is one row of the alumni listing
type AlumniListItem struct {
	ID                string  `json:"id" example:"7b0c..."`
	FullName          string  `json:"fullName" example:"Ana Silva"`
	LinkedinURL       *string `json:"linkedinUrl,omitempty"`
	ProfilePictureURL *string `json:"profilePictureUrl,omitempty"`
}

// CompanyListItem aggregates alumni per company
type CompanyListItem struct {
	ID           string      `json:"id"`
	Name         string      `json:"name" example:"Acme"`
	Logo         *string     `json:"logo,omitempty"`
	LevelsFyiURL *string     `json:"levelsFyiUrl,omitempty"`
	IndustryID   string      `json:"industryId,omitempty"`
	Industry     string      `json:"industry,omitempty" example:"Software Development"`
	Count        int         `json:"count" example:"12"`
	Trend        []DataPoint `json:"trend,omitempty"`
}

// IndustryListItem aggregates alumni and companies per industry
type IndustryListItem struct {
	ID           string      `json:"id"`
	Name         string      `json:"name" example:"Software Development"`
	Count        int         `json:"count" example:"30"`
	CompanyCount int         `json:"companyCount" example:"4"`
	Trend        []DataPoint `json:"trend,omitempty"`
}

// CountryListItem aggregates alumni and companies per role country. ID is the country code.
type CountryListItem struct {
	ID           string      `json:"id" example:"PT"`
	Name         string      `json:"name" example:"Portugal"`
	Code         string      `json:"code" example:"PT"`
	Latitude     *float64    `json:"latitude,omitempty"`
	Longitude    *float64    `json:"longitude,omitempty"`
	Count        int         `json:"count" example:"120"`
	CompanyCount int         `json:"companyCount" example:"35"`
	Trend        []DataPoint `json:"trend,omitempty"`
}

// CityListItem aggregates alumni and companies per role city (location id)
type CityListItem struct {
	ID           string      `json:"id"`
	Name         string      `json:"name" example:"Porto"`
	CountryCode  string      `json:"code" example:"PT"`
	Latitude     *float64    `json:"latitude,omitempty"`
	Longitude    *float64    `json:"longitude,omitempty"`
	Count        int         `json:"count" example:"80"`
	CompanyCount int         `json:"companyCount" example:"20"`
	Trend        []DataPoint `json:"trend,omitempty"`
}

// RoleListItem counts roles per ESCO classification
type RoleListItem struct {
	Code    string      `json:"code" example:"2512.4"`
	Name    string      `json:"name" example:"software developer"`
	Level   int         `json:"level" example:"5"`
	EscoURL *string     `json:"escoUrl,omitempty"`
	Count   int         `json:"count" example:"17"`
	Trend   []DataPoint `json:"trend,omitempty"`
}

// SeniorityListItem counts roles per seniority level
type SeniorityListItem struct {
	ID    string      `json:"id" example:"ENTRY_LEVEL"`
	Name  string      `json:"name" example:"ENTRY_LEVEL"`
	Count int         `json:"count" example:"9"`
	Trend []DataPoint `json:"trend,omitempty"`
}

// FacultyListItem counts graduations per faculty
type FacultyListItem struct {
	ID      string      `json:"id"`
	Name    string      `json:"name" example:"Faculty of Engineering"`
	Acronym string      `json:"acronym" example:"FEUP"`
	Count   int         `json:"count" example:"300"`
	Trend   []DataPoint `json:"trend,omitempty"`
}

// MajorListItem counts graduations per course. Acronym is the display
// label "[<faculty acronym>] <course acronym>".
type MajorListItem struct {
	ID             string      `json:"id"`
	Name           string      `json:"name" example:"Informatics and Computing Engineering"`
	Acronym        string      `json:"acronym" example:"[FEUP] L.EIC"`
	FacultyAcronym string      `json:"facultyAcronym" example:"FEUP"`
	Count          int         `json:"count" example:"150"`
	Trend          []DataPoint `json:"trend,omitempty"`
}

// GraduationListItem counts graduations per (course, conclusion year) cohort
type GraduationListItem struct {
	ID       string `json:"id" example:"L.EIC-2021"`
	CourseID string `json:"courseId"`
	Name     string `json:"name" example:"Informatics and Computing Engineering"`
	Acronym  string `json:"acronym" example:"[FEUP] L.EIC"`
	Year     int    `json:"year" example:"2021"`
	Count    int    `json:"count" example:"40"`
}

// AnalyticsResponse is the composite result; only requested dimensions are set.
type AnalyticsResponse struct {
	AlumniData     *DimensionResult[AlumniListItem]     `json:"alumniData,omitempty"`
	CompanyData    *DimensionResult[CompanyListItem]    `json:"companyData,omitempty"`
	IndustryData   *DimensionResult[IndustryListItem]   `json:"industryData,omitempty"`
	CountryData    *DimensionResult[CountryListItem]    `json:"countryData,omitempty"`
	CityData       *DimensionResult[CityListItem]       `json:"cityData,omitempty"`
	RoleData       *DimensionResult[RoleListItem]       `json:"roleData,omitempty"`
	SeniorityData  *DimensionResult[SeniorityListItem]  `json:"seniorityData,omitempty"`
	FacultyData    *DimensionResult[FacultyListItem]    `json:"facultyData,omitempty"`
	MajorData      *DimensionResult[MajorListItem]      `json:"majorData,omitempty"`
	GraduationData *DimensionResult[GraduationListItem] `json:"graduationData,omitempty"`
}

// RoleHierarchyItem is one ancestor of an ESCO code, root first
type RoleHierarchyItem struct {
	Code  string `json:"code" example:"25"`
	Name  string `json:"name" example:"Information and communications technology professionals"`
	Level int    `json:"level" example:"2"`
}

// CompanyInsights summarises the alumni career history at one company
type CompanyInsights struct {
	ID                    string  `json:"id"`
	Name                  string  `json:"name" example:"Acme"`
	Logo                  *string `json:"logo,omitempty"`
	LevelsFyiURL          *string `json:"levelsFyiUrl,omitempty"`
	CompanySize           string  `json:"companySize,omitempty" example:"51-200 employees"`
	CompanyType           string  `json:"companyType,omitempty" example:"PRIVATELY_HELD"`
	Founded               *int    `json:"founded,omitempty" example:"1998"`
	Industry              string  `json:"industry,omitempty" example:"Software Development"`
	Headquarters          string  `json:"headquarters,omitempty" example:"Porto, Portugal"`
	AlumniCount           int     `json:"alumniCount" example:"12"`
	CurrentAlumniCount    int     `json:"currentAlumniCount" example:"5"`
	AverageYearsInCompany string  `json:"averageYearsInCompany" example:"2 years and 4 months"`
	AverageYearsOfCareer  int     `json:"averageYearsOfCareer" example:"6"`
}

// Option is one value-label pair used to populate a filter input
type Option struct {
	ID      string `json:"id" example:"PT"`
	Name    string `json:"name" example:"Portugal"`
	Country string `json:"country,omitempty" example:"PT"`
}
