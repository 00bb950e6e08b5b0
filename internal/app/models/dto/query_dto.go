package dto

// AnalyticsQueryRequest carries the filter, sort, pagination and trend
// options of an analytics request. Slices are bound from repeated query
// parameters, e.g. ?courseIds=a&courseIds=b.
type AnalyticsQueryRequest struct {
	Selector string `form:"selector" example:"ALL"`

	// Date window on role activity (YYYY-MM-DD)
	StartDate        string `form:"startDate" binding:"omitempty,datetime=2006-01-02" example:"2015-01-01"`
	EndDate          string `form:"endDate" binding:"omitempty,datetime=2006-01-02" example:"2024-12-31"`
	CurrentRolesOnly bool   `form:"currentRolesOnly"`

	// Alumni and education filters
	AlumniIDs       []string `form:"alumniIds"`
	AlumniSearch    string   `form:"alumniSearch" binding:"omitempty,max=100"`
	CourseIDs       []string `form:"courseIds"`
	FacultyIDs      []string `form:"facultyIds"`
	GraduationYears []int    `form:"graduationYears" binding:"omitempty,dive,gte=1900,lte=2100"`

	// Role filters
	CompanyIDs                      []string `form:"companyIds"`
	IndustryIDs                     []string `form:"industryIds"`
	CountryCodes                    []string `form:"countryCodes" binding:"omitempty,dive,country_code"`
	CityIDs                         []string `form:"cityIds"`
	CompanyCountryCodes             []string `form:"companyCountryCodes" binding:"omitempty,dive,country_code"`
	CompanyCityIDs                  []string `form:"companyCityIds"`
	CompanySizes                    []string `form:"companySize" binding:"omitempty,dive,oneof=A B C D E F G H I"`
	CompanyTypes                    []string `form:"companyType" binding:"omitempty,dive,oneof=EDUCATIONAL GOVERNMENT_AGENCY NON_PROFIT PARTNERSHIP PRIVATELY_HELD PUBLIC_COMPANY SELF_EMPLOYED SELF_OWNED"`
	SeniorityLevels                 []string `form:"seniorityLevel" binding:"omitempty,dive,oneof=INTERN ENTRY_LEVEL ASSOCIATE MID_SENIOR_LEVEL DIRECTOR EXECUTIVE C_LEVEL"`
	OnlyInternational               bool     `form:"onlyInternational"`
	ExcludeResearchAndHighEducation bool     `form:"excludeResearchAndHighEducation"`
	CompanySearch                   string   `form:"companySearch" binding:"omitempty,max=100"`
	IndustrySearch                  string   `form:"industrySearch" binding:"omitempty,max=100"`
	EscoCodes                       []string `form:"escoCodes" binding:"omitempty,dive,esco_code"`
	EscoClassificationLevel         int      `form:"escoClassificationLevel" binding:"omitempty,min=1,max=8"`

	// Sorting and pagination
	Offset    int    `form:"offset" binding:"omitempty,min=0" example:"0"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100" example:"10"`
	SortBy    string `form:"sortBy" binding:"omitempty,oneof=name count year companyCount" example:"count"`
	SortOrder string `form:"sortOrder" binding:"omitempty,oneof=asc desc" example:"desc"`

	// Trends
	TrendGranularity      string `form:"trendGranularity" binding:"omitempty,oneof=monthly yearly" example:"monthly"`
	IncludeCompanyTrend   bool   `form:"includeCompanyTrend"`
	IncludeIndustryTrend  bool   `form:"includeIndustryTrend"`
	IncludeRoleTrend      bool   `form:"includeRoleTrend"`
	IncludeSeniorityTrend bool   `form:"includeSeniorityTrend"`
	IncludeGeoTrend       bool   `form:"includeGeoTrend"`
	IncludeEducationTrend bool   `form:"includeEducationTrend"`
}

// RoleHierarchyRequest selects the ESCO code whose ancestry is returned
type RoleHierarchyRequest struct {
	Code string `form:"code" binding:"required,esco_code" example:"2512.4"`
}

// OptionsRequest narrows the cities and courses option lists
type OptionsRequest struct {
	CountryCodes []string `form:"countryCodes" binding:"omitempty,dive,country_code"`
	FacultyIDs   []string `form:"facultyIds"`
}
