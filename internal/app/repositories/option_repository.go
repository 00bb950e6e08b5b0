package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/yigit/alumnisphere/internal/app/analytics"
	"github.com/yigit/alumnisphere/internal/app/models/dto"
	"github.com/yigit/alumnisphere/internal/pkg/apperrors"
	"github.com/yigit/alumnisphere/internal/pkg/logger"
)

var _ analytics.OptionSource = (*AlumniRepository)(nil)

// optionsQuery selects (id, name, country) rows for kind
func (r *AlumniRepository) optionsQuery(kind analytics.OptionKind, filter analytics.OptionFilter) (squirrel.SelectBuilder, error) {
	switch kind {
	case analytics.OptionCompanies:
		return r.sb.Select("id", "name", "''").From("company").OrderBy("name", "id"), nil
	case analytics.OptionIndustries:
		return r.sb.Select("id", "name", "''").From("industry").OrderBy("name", "id"), nil
	case analytics.OptionCountries:
		return r.sb.Select("UPPER(country_code)", "country", "''").Distinct().
			From("location").
			Where("country_code IS NOT NULL AND country IS NOT NULL").
			OrderBy("country"), nil
	case analytics.OptionCities:
		q := r.sb.Select("id", "city", "UPPER(COALESCE(country_code, ''))").
			From("location").
			Where("city IS NOT NULL").
			OrderBy("city", "id")
		if len(filter.CountryCodes) > 0 {
			q = q.Where(squirrel.Eq{"UPPER(country_code)": upperStrings(filter.CountryCodes)})
		}
		return q, nil
	case analytics.OptionRoles:
		return r.sb.Select("code", "title_en", "''").From("esco_classification").OrderBy("code"), nil
	case analytics.OptionAlumni:
		return r.sb.Select("id", "full_name", "''").From("alumni").OrderBy("full_name", "id"), nil
	case analytics.OptionCourses:
		q := r.sb.Select("id", "name", "''").From("course").OrderBy("name", "id")
		if len(filter.FacultyIDs) > 0 {
			q = q.Where(squirrel.Eq{"faculty_id": filter.FacultyIDs})
		}
		return q, nil
	case analytics.OptionFaculties:
		return r.sb.Select("id", "name", "''").From("faculty").OrderBy("name", "id"), nil
	}
	return squirrel.SelectBuilder{}, fmt.Errorf("%w: %q", apperrors.ErrUnknownDimension, kind)
}

// Options implements analytics.OptionSource
func (r *AlumniRepository) Options(ctx context.Context, kind analytics.OptionKind, filter analytics.OptionFilter) (out []dto.Option, err error) {
	start := time.Now()
	defer func() {
		r.recorder.RecordQuery("options_"+string(kind), len(out), time.Since(start), err)
		if err != nil {
			err = classify(err)
		}
	}()

	q, err := r.optionsQuery(kind, filter)
	if err != nil {
		return nil, err
	}
	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Str("kind", string(kind)).Msg("Error building options SQL")
		return nil, fmt.Errorf("failed to build options query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("kind", string(kind)).Msg("Error executing options query")
		return nil, fmt.Errorf("error querying options: %w", err)
	}
	defer rows.Close()

	out = []dto.Option{}
	seen := make(map[string]struct{})
	for rows.Next() {
		var o dto.Option
		if err := rows.Scan(&o.ID, &o.Name, &o.Country); err != nil {
			logger.Error().Err(err).Msg("Error scanning option row")
			return nil, fmt.Errorf("error scanning option row: %w", err)
		}
		// a country code can carry several spellings
		if _, dup := seen[o.ID]; dup {
			continue
		}
		seen[o.ID] = struct{}{}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating option rows: %w", err)
	}
	return out, nil
}

func upperStrings(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToUpper(v)
	}
	return out
}
