package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/alumnisphere/internal/app/models"
)

func TestCompile_SplitsGroups(t *testing.T) {
	start := date(2020, 1, 1)
	f := Compile(Criteria{
		StartDate:        &start,
		CurrentRolesOnly: true,
		CourseIDs:        []string{leic.ID},
		GraduationYears:  []int{2021},
		CompanyIDs:       []string{companyX.ID},
		RoleCountryCodes: []string{"pt"},
		CompanySearch:    "  acme ",
	}, CompileOptions{})

	assert.Equal(t, []string{leic.ID}, f.Alumni.CourseIDs)
	assert.Equal(t, []int{2021}, f.Alumni.GraduationYears)
	assert.Equal(t, []string{companyX.ID}, f.Role.CompanyIDs)
	assert.Equal(t, []string{"PT"}, f.Role.CountryCodes)
	assert.Equal(t, "acme", f.Role.CompanySearch)
	assert.True(t, f.Role.CurrentOnly)
	assert.Equal(t, &start, f.Window.Start)
	assert.True(t, f.Window.CurrentOnly)
}

func TestCompile_OptionalClausesUseOptions(t *testing.T) {
	opts := CompileOptions{
		HomeCountryCode:      "pt",
		ResearchIndustries:   []string{"Research Services"},
		ResearchEscoPrefixes: []string{"231"},
	}

	f := Compile(Criteria{}, opts)
	assert.True(t, f.Role.IsEmpty())
	assert.True(t, f.Alumni.IsEmpty())

	f = Compile(Criteria{OnlyInternational: true, ExcludeResearchAndHighEducation: true}, opts)
	assert.Equal(t, "PT", f.Role.ExcludeCountryCode)
	assert.Equal(t, opts.ResearchIndustries, f.Role.ExcludeIndustries)
	assert.Equal(t, opts.ResearchEscoPrefixes, f.Role.ExcludeEscoPrefixes)
	assert.False(t, f.Role.IsEmpty())
}

func TestCompiledFilter_RoleClausesMustHoldOnOneRole(t *testing.T) {
	// X is in Portugal, Y in Spain: no single role is "Y located in Portugal"
	a := alumnus("a1", "Ana",
		role("r1", companyX, portugal, date(2015, 1, 1), ended2020),
		role("r2", companyY, spain, date(2020, 2, 1), nil),
	)

	f := Compile(Criteria{CompanyIDs: []string{companyY.ID}, RoleCountryCodes: []string{"PT"}}, CompileOptions{})
	assert.False(t, f.Matches(&a))

	f = Compile(Criteria{CompanyIDs: []string{companyY.ID}, RoleCountryCodes: []string{"ES"}}, CompileOptions{})
	assert.True(t, f.Matches(&a))

	f = Compile(Criteria{CompanyIDs: []string{companyX.ID}, CurrentRolesOnly: true}, CompileOptions{})
	assert.False(t, f.Matches(&a), "the X role has ended")
}

func TestCompiledFilter_GraduationClausesMustHoldOnOneGraduation(t *testing.T) {
	a := graduated(graduated(alumnus("a1", "Ana"), leic, 2019), meic, 2021)

	f := Compile(Criteria{CourseIDs: []string{leic.ID}, GraduationYears: []int{2021}}, CompileOptions{})
	assert.False(t, f.Matches(&a))

	f = Compile(Criteria{CourseIDs: []string{meic.ID}, GraduationYears: []int{2021}}, CompileOptions{})
	assert.True(t, f.Matches(&a))

	f = Compile(Criteria{FacultyIDs: []string{fcup.ID}}, CompileOptions{})
	assert.False(t, f.Matches(&a))
}

func TestCompiledFilter_EmptyRoleGroupKeepsAlumniWithoutRoles(t *testing.T) {
	a := alumnus("a3", "Carla Dias")
	assert.True(t, Compile(Criteria{}, CompileOptions{}).Matches(&a))
	assert.True(t, Compile(Criteria{AlumniSearch: "carla"}, CompileOptions{}).Matches(&a))
	assert.False(t, Compile(Criteria{AlumniIDs: []string{"a1"}}, CompileOptions{}).Matches(&a))
	assert.False(t, Compile(Criteria{CompanySearch: "x"}, CompileOptions{}).Matches(&a))
}

func TestRolePredicate_Matches(t *testing.T) {
	size := models.CompanySize51To200
	typ := models.CompanyTypePrivatelyHeld
	sized := &models.Company{ID: "c1", Name: "Sized Co", Industry: software, Location: spain, Size: &size, Type: &typ}

	r := withSeniority(withEsco(role("r1", sized, portugal, date(2020, 1, 1), nil), "2512.4", 5, "software developer"), models.SeniorityAssociate)
	lecturer := withEsco(role("r2", companyZ, lisbon, date(2020, 1, 1), nil), "2310.1", 5, "university lecturer")
	noCompany := role("r3", nil, nil, date(2020, 1, 1), nil)

	tests := []struct {
		name string
		pred RolePredicate
		role models.Role
		want bool
	}{
		{"company hq country", RolePredicate{CompanyHQCountryCodes: []string{"ES"}}, r, true},
		{"company hq city", RolePredicate{CompanyHQCityIDs: []string{portugal.ID}}, r, false},
		{"company size", RolePredicate{CompanySizes: []models.CompanySize{size}}, r, true},
		{"company type", RolePredicate{CompanyTypes: []models.CompanyType{models.CompanyTypePublicCompany}}, r, false},
		{"seniority", RolePredicate{SeniorityLevels: []models.SeniorityLevel{models.SeniorityAssociate}}, r, true},
		{"city", RolePredicate{CityIDs: []string{portugal.ID}}, r, true},
		{"industry", RolePredicate{IndustryIDs: []string{research.ID}}, r, false},
		{"company search is case insensitive", RolePredicate{CompanySearch: "SIZED"}, r, true},
		{"industry search", RolePredicate{IndustrySearch: "software"}, r, true},
		{"esco prefix", RolePredicate{EscoPrefixes: []string{"25"}}, r, true},
		{"esco prefix mismatch", RolePredicate{EscoPrefixes: []string{"23"}}, r, false},
		{"international excludes home country", RolePredicate{ExcludeCountryCode: "PT"}, r, false},
		{"international keeps abroad", RolePredicate{ExcludeCountryCode: "ES"}, r, true},
		{"international drops unknown country", RolePredicate{ExcludeCountryCode: "PT"}, noCompany, false},
		{"research industry excluded", RolePredicate{ExcludeIndustries: []string{"research services"}}, lecturer, false},
		{"research esco excluded", RolePredicate{ExcludeEscoPrefixes: []string{"231"}}, lecturer, false},
		{"research exclusion keeps others", RolePredicate{ExcludeIndustries: []string{"Research Services"}, ExcludeEscoPrefixes: []string{"231"}}, r, true},
		{"missing company fails company clause", RolePredicate{CompanyIDs: []string{"c1"}}, noCompany, false},
		{"missing location fails country clause", RolePredicate{CountryCodes: []string{"PT"}}, noCompany, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.False(t, tt.pred.IsEmpty())
			assert.Equal(t, tt.want, tt.pred.Matches(&tt.role))
		})
	}
}
