package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/alumnisphere/internal/app/analytics"
	"github.com/yigit/alumnisphere/internal/pkg/apperrors"
)

func TestOptionsQuery(t *testing.T) {
	tests := []struct {
		name   string
		kind   analytics.OptionKind
		filter analytics.OptionFilter
		sql    string
		args   []interface{}
	}{
		{
			name: "companies",
			kind: analytics.OptionCompanies,
			sql:  "SELECT id, name, '' FROM company ORDER BY name, id",
		},
		{
			name: "countries are distinct codes",
			kind: analytics.OptionCountries,
			sql:  "SELECT DISTINCT UPPER(country_code), country, '' FROM location WHERE country_code IS NOT NULL AND country IS NOT NULL ORDER BY country",
		},
		{
			name:   "cities narrowed by country",
			kind:   analytics.OptionCities,
			filter: analytics.OptionFilter{CountryCodes: []string{"pt", "ES"}},
			sql:    "SELECT id, city, UPPER(COALESCE(country_code, '')) FROM location WHERE city IS NOT NULL AND UPPER(country_code) IN ($1,$2) ORDER BY city, id",
			args:   []interface{}{"PT", "ES"},
		},
		{
			name: "roles",
			kind: analytics.OptionRoles,
			sql:  "SELECT code, title_en, '' FROM esco_classification ORDER BY code",
		},
		{
			name:   "courses narrowed by faculty",
			kind:   analytics.OptionCourses,
			filter: analytics.OptionFilter{FacultyIDs: []string{"feup"}},
			sql:    "SELECT id, name, '' FROM course WHERE faculty_id IN ($1) ORDER BY name, id",
			args:   []interface{}{"feup"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := newBuilderRepo().optionsQuery(tt.kind, tt.filter)
			require.NoError(t, err)

			sql, args, err := q.ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.sql, sql)
			if tt.args == nil {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.args, args)
			}
		})
	}
}

func TestOptionsQuery_UnknownKind(t *testing.T) {
	_, err := newBuilderRepo().optionsQuery("planets", analytics.OptionFilter{})
	assert.ErrorIs(t, err, apperrors.ErrUnknownDimension)
}
