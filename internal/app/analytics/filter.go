package analytics

import (
	"slices"
	"strings"
	"time"

	"github.com/yigit/alumnisphere/internal/app/models"
)

// Criteria is the flat set of user supplied filters. Values are assumed to be
// validated already; Compile never fails.
type Criteria struct {
	StartDate        *time.Time
	EndDate          *time.Time
	CurrentRolesOnly bool

	AlumniIDs       []string
	AlumniSearch    string
	CourseIDs       []string
	FacultyIDs      []string
	GraduationYears []int

	CompanyIDs                      []string
	IndustryIDs                     []string
	RoleCountryCodes                []string
	RoleCityIDs                     []string
	CompanyHQCountryCodes           []string
	CompanyHQCityIDs                []string
	CompanySizes                    []models.CompanySize
	CompanyTypes                    []models.CompanyType
	SeniorityLevels                 []models.SeniorityLevel
	OnlyInternational               bool
	ExcludeResearchAndHighEducation bool
	CompanySearch                   string
	IndustrySearch                  string
	EscoCodes                       []string
}

// CompileOptions carries deployment specific knobs of the filter compiler
type CompileOptions struct {
	// HomeCountryCode is the country a role must leave to count as international
	HomeCountryCode string
	// ResearchIndustries are industry names dropped by ExcludeResearchAndHighEducation
	ResearchIndustries []string
	// ResearchEscoPrefixes are ESCO code prefixes dropped by ExcludeResearchAndHighEducation
	ResearchEscoPrefixes []string
}

// AlumniPredicate holds the clauses evaluated against the alumnus itself.
// The graduation clauses must all hold on one graduation record.
type AlumniPredicate struct {
	IDs             []string
	NameSearch      string
	CourseIDs       []string
	FacultyIDs      []string
	GraduationYears []int
}

// RolePredicate holds the clauses one single role must satisfy together.
type RolePredicate struct {
	CompanyIDs            []string
	IndustryIDs           []string
	CountryCodes          []string
	CityIDs               []string
	CompanyHQCountryCodes []string
	CompanyHQCityIDs      []string
	CompanySizes          []models.CompanySize
	CompanyTypes          []models.CompanyType
	SeniorityLevels       []models.SeniorityLevel
	CurrentOnly           bool
	// ExcludeCountryCode drops roles located in this country (international filter)
	ExcludeCountryCode string
	// ExcludeIndustries and ExcludeEscoPrefixes drop research and higher education roles
	ExcludeIndustries   []string
	ExcludeEscoPrefixes []string
	CompanySearch       string
	IndustrySearch      string
	EscoPrefixes        []string
}

// DateWindow is the in-process alumni filter on role activity
type DateWindow struct {
	Start       *time.Time
	End         *time.Time
	CurrentOnly bool
}

// CompiledFilter is the output of Compile.
//
// Placement: every Alumni and Role clause is pushed down to the Source, which
// must honour the existential rule (one role satisfies all role clauses).
// Window is always evaluated in-process by FilterWindow after the fetch.
// CurrentRolesOnly appears in both: as a role clause, so it combines with the
// other role clauses on the same role, and in the window.
type CompiledFilter struct {
	Alumni AlumniPredicate
	Role   RolePredicate
	Window DateWindow
}

// Compile splits criteria into the alumni group, the role group and the date window.
func Compile(c Criteria, opts CompileOptions) CompiledFilter {
	f := CompiledFilter{
		Alumni: AlumniPredicate{
			IDs:             c.AlumniIDs,
			NameSearch:      strings.TrimSpace(c.AlumniSearch),
			CourseIDs:       c.CourseIDs,
			FacultyIDs:      c.FacultyIDs,
			GraduationYears: c.GraduationYears,
		},
		Role: RolePredicate{
			CompanyIDs:            c.CompanyIDs,
			IndustryIDs:           c.IndustryIDs,
			CountryCodes:          upperAll(c.RoleCountryCodes),
			CityIDs:               c.RoleCityIDs,
			CompanyHQCountryCodes: upperAll(c.CompanyHQCountryCodes),
			CompanyHQCityIDs:      c.CompanyHQCityIDs,
			CompanySizes:          c.CompanySizes,
			CompanyTypes:          c.CompanyTypes,
			SeniorityLevels:       c.SeniorityLevels,
			CurrentOnly:           c.CurrentRolesOnly,
			CompanySearch:         strings.TrimSpace(c.CompanySearch),
			IndustrySearch:        strings.TrimSpace(c.IndustrySearch),
			EscoPrefixes:          c.EscoCodes,
		},
		Window: DateWindow{
			Start:       c.StartDate,
			End:         c.EndDate,
			CurrentOnly: c.CurrentRolesOnly,
		},
	}

	if c.OnlyInternational && opts.HomeCountryCode != "" {
		f.Role.ExcludeCountryCode = strings.ToUpper(opts.HomeCountryCode)
	}
	if c.ExcludeResearchAndHighEducation {
		f.Role.ExcludeIndustries = opts.ResearchIndustries
		f.Role.ExcludeEscoPrefixes = opts.ResearchEscoPrefixes
	}

	return f
}

// IsEmpty reports whether no graduation or alumni clause is set
func (p AlumniPredicate) IsEmpty() bool {
	return len(p.IDs) == 0 && p.NameSearch == "" && !p.HasGraduationClause()
}

// HasGraduationClause reports whether any graduation clause is set
func (p AlumniPredicate) HasGraduationClause() bool {
	return len(p.CourseIDs) > 0 || len(p.FacultyIDs) > 0 || len(p.GraduationYears) > 0
}

// Matches evaluates the alumni group in-process
func (p AlumniPredicate) Matches(a *models.Alumni) bool {
	if len(p.IDs) > 0 && !slices.Contains(p.IDs, a.ID) {
		return false
	}
	if p.NameSearch != "" && !containsFold(a.FullName, p.NameSearch) {
		return false
	}
	if !p.HasGraduationClause() {
		return true
	}
	for i := range a.Graduations {
		if p.matchesGraduation(&a.Graduations[i]) {
			return true
		}
	}
	return false
}

func (p AlumniPredicate) matchesGraduation(g *models.Graduation) bool {
	if len(p.CourseIDs) > 0 && !slices.Contains(p.CourseIDs, g.CourseID) {
		return false
	}
	if len(p.FacultyIDs) > 0 {
		f := g.Faculty()
		if f == nil || !slices.Contains(p.FacultyIDs, f.ID) {
			return false
		}
	}
	if len(p.GraduationYears) > 0 && !slices.Contains(p.GraduationYears, g.ConclusionYear) {
		return false
	}
	return true
}

// IsEmpty reports whether the role group has no clause
func (p RolePredicate) IsEmpty() bool {
	return len(p.CompanyIDs) == 0 &&
		len(p.IndustryIDs) == 0 &&
		len(p.CountryCodes) == 0 &&
		len(p.CityIDs) == 0 &&
		len(p.CompanyHQCountryCodes) == 0 &&
		len(p.CompanyHQCityIDs) == 0 &&
		len(p.CompanySizes) == 0 &&
		len(p.CompanyTypes) == 0 &&
		len(p.SeniorityLevels) == 0 &&
		!p.CurrentOnly &&
		p.ExcludeCountryCode == "" &&
		len(p.ExcludeIndustries) == 0 &&
		len(p.ExcludeEscoPrefixes) == 0 &&
		p.CompanySearch == "" &&
		p.IndustrySearch == "" &&
		len(p.EscoPrefixes) == 0
}

// Matches evaluates every role clause against a single role
func (p RolePredicate) Matches(r *models.Role) bool {
	company := r.Company
	industry := r.Industry()

	if len(p.CompanyIDs) > 0 && (company == nil || !slices.Contains(p.CompanyIDs, company.ID)) {
		return false
	}
	if len(p.IndustryIDs) > 0 && (industry == nil || !slices.Contains(p.IndustryIDs, industry.ID)) {
		return false
	}
	if len(p.CountryCodes) > 0 && !slices.Contains(p.CountryCodes, strings.ToUpper(r.Location.CountryCodeValue())) {
		return false
	}
	if len(p.CityIDs) > 0 && (r.Location == nil || !slices.Contains(p.CityIDs, r.Location.ID)) {
		return false
	}
	if len(p.CompanyHQCountryCodes) > 0 {
		if company == nil || !slices.Contains(p.CompanyHQCountryCodes, strings.ToUpper(company.Location.CountryCodeValue())) {
			return false
		}
	}
	if len(p.CompanyHQCityIDs) > 0 && (company == nil || company.Location == nil || !slices.Contains(p.CompanyHQCityIDs, company.Location.ID)) {
		return false
	}
	if len(p.CompanySizes) > 0 && (company == nil || company.Size == nil || !slices.Contains(p.CompanySizes, *company.Size)) {
		return false
	}
	if len(p.CompanyTypes) > 0 && (company == nil || company.Type == nil || !slices.Contains(p.CompanyTypes, *company.Type)) {
		return false
	}
	if len(p.SeniorityLevels) > 0 && !slices.Contains(p.SeniorityLevels, r.SeniorityLevel) {
		return false
	}
	if p.CurrentOnly && r.EndDate != nil {
		return false
	}
	if p.ExcludeCountryCode != "" {
		// roles without a known country are not international
		code := strings.ToUpper(r.Location.CountryCodeValue())
		if code == "" || code == p.ExcludeCountryCode {
			return false
		}
	}
	if len(p.ExcludeIndustries) > 0 && industry != nil && containsAnyFold(p.ExcludeIndustries, industry.Name) {
		return false
	}
	primary := primaryCode(r)
	if len(p.ExcludeEscoPrefixes) > 0 && primary != "" && hasAnyPrefix(primary, p.ExcludeEscoPrefixes) {
		return false
	}
	if p.CompanySearch != "" && (company == nil || !containsFold(company.Name, p.CompanySearch)) {
		return false
	}
	if p.IndustrySearch != "" && (industry == nil || !containsFold(industry.Name, p.IndustrySearch)) {
		return false
	}
	if len(p.EscoPrefixes) > 0 && (primary == "" || !hasAnyPrefix(primary, p.EscoPrefixes)) {
		return false
	}
	return true
}

// Matches applies the inclusion rule: alumni group AND (empty role group OR
// at least one role satisfying every role clause).
func (f CompiledFilter) Matches(a *models.Alumni) bool {
	if !f.Alumni.Matches(a) {
		return false
	}
	if f.Role.IsEmpty() {
		return true
	}
	for i := range a.Roles {
		if f.Role.Matches(&a.Roles[i]) {
			return true
		}
	}
	return false
}

func primaryCode(r *models.Role) string {
	if jc := r.PrimaryClassification(); jc != nil {
		return jc.EscoClassification.Code
	}
	return ""
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func containsAnyFold(values []string, s string) bool {
	for _, v := range values {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func upperAll(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToUpper(v)
	}
	return out
}
