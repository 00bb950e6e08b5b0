package seed

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/yigit/alumnisphere/internal/app/models"
	"github.com/yigit/alumnisphere/internal/db"
)

// batchSize bounds the rows of one multi-row INSERT
const batchSize = 500

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Store is the part of db.PostgresDB the seeder uses
type Store interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

// CreateDefaultData loads ds into an empty database in one transaction.
// A database that already holds alumni is left untouched.
func CreateDefaultData(ctx context.Context, store Store, ds Dataset, lgr zerolog.Logger) error {
	var populated bool
	if err := store.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM alumni)").Scan(&populated); err != nil {
		return fmt.Errorf("failed to check existing alumni: %w", err)
	}
	if populated {
		lgr.Info().Msg("Alumni data already present, skipping seed")
		return nil
	}

	lgr.Info().Int("alumni", len(ds.Alumni)).Msg("Seeding demo alumni data...")
	err := store.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		for _, ins := range Inserts(ds) {
			sql, args, err := ins.ToSql()
			if err != nil {
				return fmt.Errorf("failed to build seed insert: %w", err)
			}
			if _, err := tx.Exec(ctx, sql, args...); err != nil {
				return fmt.Errorf("failed to execute seed insert: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Seeding failed")
		return err
	}

	lgr.Info().Msg("Demo alumni data seeded")
	return nil
}

// Inserts returns the statements that write ds, parents before children
func Inserts(ds Dataset) []squirrel.InsertBuilder {
	var out []squirrel.InsertBuilder
	add := func(table string, columns []string, rows [][]interface{}) {
		for start := 0; start < len(rows); start += batchSize {
			end := min(start+batchSize, len(rows))
			ins := psql.Insert(table).Columns(columns...).Suffix("ON CONFLICT DO NOTHING")
			for _, row := range rows[start:end] {
				ins = ins.Values(row...)
			}
			out = append(out, ins)
		}
	}

	var rows [][]interface{}
	for _, f := range ds.Faculties {
		rows = append(rows, []interface{}{f.ID, f.Name, f.Acronym})
	}
	add("faculty", []string{"id", "name", "acronym"}, rows)

	rows = nil
	for _, c := range ds.Courses {
		rows = append(rows, []interface{}{c.ID, c.FacultyID, c.Name, c.Acronym, c.StartYear, c.EndYear})
	}
	add("course", []string{"id", "faculty_id", "name", "acronym", "start_year", "end_year"}, rows)

	rows = nil
	for _, l := range ds.Locations {
		rows = append(rows, []interface{}{l.ID, l.Country, l.CountryCode, l.City, l.Latitude, l.Longitude})
	}
	add("location", []string{"id", "country", "country_code", "city", "latitude", "longitude"}, rows)

	rows = nil
	for _, i := range ds.Industries {
		rows = append(rows, []interface{}{i.ID, i.Name})
	}
	add("industry", []string{"id", "name"}, rows)

	rows = nil
	for _, c := range ds.Companies {
		rows = append(rows, []interface{}{
			c.ID, c.Name, c.Logo, c.LevelsFyiURL, optional(c.Size), optional(c.Type), c.Founded,
			refID(c.Industry), locationID(c.Location),
		})
	}
	add("company", []string{"id", "name", "logo", "levels_fyi_url", "company_size", "company_type", "founded", "industry_id", "location_id"}, rows)

	rows = nil
	for _, c := range ds.Classifications {
		rows = append(rows, []interface{}{c.Code, c.TitleEn, c.Level, c.EscoURL})
	}
	add("esco_classification", []string{"code", "title_en", "level", "esco_url"}, rows)

	var alumni, graduations, roles, classifications [][]interface{}
	for _, a := range ds.Alumni {
		alumni = append(alumni, []interface{}{a.ID, a.FullName, a.LinkedinURL, a.ProfilePictureURL, locationID(a.Location)})
		for _, g := range a.Graduations {
			graduations = append(graduations, []interface{}{g.ID, a.ID, g.CourseID, g.ConclusionYear})
		}
		for _, r := range a.Roles {
			var companyID *string
			if r.Company != nil {
				companyID = &r.Company.ID
			}
			roles = append(roles, []interface{}{
				r.ID, a.ID, companyID, locationID(r.Location), r.StartDate, r.EndDate, r.IsCurrent, string(r.SeniorityLevel),
			})
			for _, jc := range r.Classifications {
				confidence := 0.0
				if jc.Confidence != nil {
					confidence = *jc.Confidence
				}
				accepted := jc.WasAcceptedByUser != nil && *jc.WasAcceptedByUser
				classifications = append(classifications, []interface{}{r.ID, jc.EscoClassificationID, jc.Rank, confidence, accepted})
			}
		}
	}
	add("alumni", []string{"id", "full_name", "linkedin_url", "profile_picture_url", "location_id"}, alumni)
	add("graduation", []string{"id", "alumni_id", "course_id", "conclusion_year"}, graduations)
	add("role", []string{"id", "alumni_id", "company_id", "location_id", "start_date", "end_date", "is_current", "seniority_level"}, roles)
	add("job_classification", []string{"role_id", "esco_classification_id", "rank", "confidence", "was_accepted_by_user"}, classifications)
	return out
}

func optional[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}

func refID(i *models.Industry) *string {
	if i == nil {
		return nil
	}
	return &i.ID
}

func locationID(l *models.Location) *string {
	if l == nil {
		return nil
	}
	return &l.ID
}
