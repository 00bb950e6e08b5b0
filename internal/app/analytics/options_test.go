package analytics

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/alumnisphere/internal/app/models"
	"github.com/yigit/alumnisphere/internal/app/models/dto"
	"github.com/yigit/alumnisphere/internal/pkg/apperrors"
)

func optionAlumni() []models.Alumni {
	alumni := scenarioAlumni()
	alumni[0] = graduated(alumni[0], lcc, 2016)
	alumni[1] = graduated(alumni[1], leic, 2015)
	alumni[1].Roles[1] = withEsco(alumni[1].Roles[1], "2512.4", 5, "software developer")
	return alumni
}

func TestParseOptionKind(t *testing.T) {
	kind, err := ParseOptionKind(" Countries ")
	require.NoError(t, err)
	assert.Equal(t, OptionCountries, kind)

	_, err = ParseOptionKind("planets")
	assert.ErrorIs(t, err, apperrors.ErrUnknownDimension)
}

func TestDeriveOptions(t *testing.T) {
	tests := []struct {
		name   string
		kind   OptionKind
		filter OptionFilter
		want   []dto.Option
	}{
		{
			name: "companies",
			kind: OptionCompanies,
			want: []dto.Option{{ID: "company-x", Name: "Company X"}, {ID: "company-y", Name: "Company Y"}},
		},
		{
			name: "industries",
			kind: OptionIndustries,
			want: []dto.Option{{ID: "ind-software", Name: "Software Development"}},
		},
		{
			name: "countries by role location",
			kind: OptionCountries,
			want: []dto.Option{{ID: "PT", Name: "Portugal"}, {ID: "ES", Name: "Spain"}},
		},
		{
			name:   "cities narrowed by country",
			kind:   OptionCities,
			filter: OptionFilter{CountryCodes: []string{"pt"}},
			want:   []dto.Option{{ID: "loc-porto", Name: "Porto", Country: "PT"}},
		},
		{
			name: "roles",
			kind: OptionRoles,
			want: []dto.Option{{ID: "2512.4", Name: "software developer"}},
		},
		{
			name: "alumni by name",
			kind: OptionAlumni,
			want: []dto.Option{{ID: "a1", Name: "Ana Silva"}, {ID: "a2", Name: "Bruno Costa"}, {ID: "a3", Name: "Carla Dias"}},
		},
		{
			name:   "courses narrowed by faculty",
			kind:   OptionCourses,
			filter: OptionFilter{FacultyIDs: []string{feup.ID}},
			want:   []dto.Option{{ID: leic.ID, Name: leic.Name}},
		},
		{
			name: "faculties",
			kind: OptionFaculties,
			want: []dto.Option{{ID: feup.ID, Name: feup.Name}, {ID: fcup.ID, Name: fcup.Name}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveOptions(optionAlumni(), tt.kind, tt.filter))
		})
	}
}

func TestDeriveOptions_EmptySet(t *testing.T) {
	assert.Equal(t, []dto.Option{}, DeriveOptions(nil, OptionCompanies, OptionFilter{}))
}

type listingSource struct {
	countingSource
	options []dto.Option
	err     error
	kind    OptionKind
}

func (s *listingSource) Options(_ context.Context, kind OptionKind, _ OptionFilter) ([]dto.Option, error) {
	s.kind = kind
	return s.options, s.err
}

func TestEngine_Options(t *testing.T) {
	t.Run("derived from every alumni", func(t *testing.T) {
		src := &countingSource{inner: NewMemorySource(optionAlumni())}
		got, err := newTestEngine(src).Options(context.Background(), OptionCompanies, OptionFilter{})
		require.NoError(t, err)

		assert.Len(t, got, 2)
		assert.Equal(t, 1, src.calls)
		assert.True(t, src.filter.Role.IsEmpty())
	})

	t.Run("listed by the source and sorted", func(t *testing.T) {
		src := &listingSource{options: []dto.Option{{ID: "2", Name: "Zeta"}, {ID: "1", Name: "Acme"}}}
		got, err := newTestEngine(src).Options(context.Background(), OptionIndustries, OptionFilter{})
		require.NoError(t, err)

		assert.Equal(t, []dto.Option{{ID: "1", Name: "Acme"}, {ID: "2", Name: "Zeta"}}, got)
		assert.Equal(t, OptionIndustries, src.kind)
		assert.Zero(t, src.calls)
	})

	t.Run("source failure", func(t *testing.T) {
		src := &listingSource{err: errors.New("connection refused")}
		_, err := newTestEngine(src).Options(context.Background(), OptionIndustries, OptionFilter{})
		assert.ErrorIs(t, err, apperrors.ErrDataAccess)
	})
}

func TestEngine_CompanyInsights(t *testing.T) {
	src := &countingSource{inner: NewMemorySource(scenarioAlumni())}
	got, err := newTestEngine(src).CompanyInsights(context.Background(), companyY.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, src.calls)
	assert.Equal(t, []string{companyY.ID}, src.filter.Role.CompanyIDs)
	assert.Equal(t, "Company Y", got.Name)
	assert.Equal(t, 1, got.CurrentAlumniCount)

	_, err = newTestEngine(src).CompanyInsights(context.Background(), "company-missing")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
