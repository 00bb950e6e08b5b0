package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yigit/alumnisphere/internal/app/analytics"
	"github.com/yigit/alumnisphere/internal/app/models"
	"github.com/yigit/alumnisphere/internal/pkg/apperrors"
	"github.com/yigit/alumnisphere/internal/pkg/dberrors"
	"github.com/yigit/alumnisphere/internal/pkg/logger"
)

// QueryRecorder receives per-query measurements
type QueryRecorder interface {
	RecordQuery(operation string, rows int, d time.Duration, err error)
}

type nopQueryRecorder struct{}

func (nopQueryRecorder) RecordQuery(string, int, time.Duration, error) {}

// AlumniRepository loads alumni graphs for the analytics engine. It
// implements analytics.Source and analytics.ClassificationCatalog.
type AlumniRepository struct {
	db       *pgxpool.Pool
	sb       squirrel.StatementBuilderType
	recorder QueryRecorder
}

// NewAlumniRepository creates a new AlumniRepository
func NewAlumniRepository(db *pgxpool.Pool, recorder QueryRecorder) *AlumniRepository {
	if recorder == nil {
		recorder = nopQueryRecorder{}
	}
	return &AlumniRepository{
		db:       db,
		sb:       squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		recorder: recorder,
	}
}

var (
	_ analytics.Source                = (*AlumniRepository)(nil)
	_ analytics.ClassificationCatalog = (*AlumniRepository)(nil)
)

// Find returns the alumni matching the alumni and role predicates with their
// roles and graduations loaded. The date window is not applied here.
func (r *AlumniRepository) Find(ctx context.Context, filter analytics.CompiledFilter) ([]models.Alumni, error) {
	alumni, err := r.find(ctx, filter)
	if err != nil {
		return nil, classify(err)
	}
	return alumni, nil
}

// classify tags driver failures so the error middleware can tell a cancelled
// statement apart from a broken schema or connection.
func classify(err error) error {
	switch {
	case dberrors.IsQueryCanceled(err):
		return fmt.Errorf("%w: %w", apperrors.ErrRequestCancelled, err)
	case dberrors.IsUndefinedTable(err):
		return fmt.Errorf("schema not migrated: %w", err)
	case dberrors.IsConnectionFailure(err):
		return fmt.Errorf("database unreachable: %w", err)
	}
	return err
}

func (r *AlumniRepository) find(ctx context.Context, filter analytics.CompiledFilter) ([]models.Alumni, error) {
	alumni, err := r.findAlumni(ctx, filter)
	if err != nil || len(alumni) == 0 {
		return alumni, err
	}

	ids := make([]string, len(alumni))
	index := make(map[string]int, len(alumni))
	for i := range alumni {
		ids[i] = alumni[i].ID
		index[alumni[i].ID] = i
	}

	cache := newGraphCache()
	if err := r.loadRoles(ctx, ids, alumni, index, cache); err != nil {
		return nil, err
	}
	if err := r.loadGraduations(ctx, ids, alumni, index, cache); err != nil {
		return nil, err
	}
	return alumni, nil
}

// alumniQuery selects the alumni satisfying the compiled predicates
func (r *AlumniRepository) alumniQuery(f analytics.CompiledFilter) squirrel.SelectBuilder {
	q := r.sb.Select(append([]string{"a.id", "a.full_name", "a.linkedin_url", "a.profile_picture_url"}, locationColumns("al")...)...).
		From("alumni a").
		LeftJoin("location al ON al.id = a.location_id").
		OrderBy("a.id")

	if len(f.Alumni.IDs) > 0 {
		q = q.Where(squirrel.Eq{"a.id": f.Alumni.IDs})
	}
	if f.Alumni.NameSearch != "" {
		q = q.Where(squirrel.ILike{"a.full_name": likePattern(f.Alumni.NameSearch)})
	}
	if f.Alumni.HasGraduationClause() {
		q = q.Where(graduationExists(f.Alumni))
	}
	if !f.Role.IsEmpty() {
		q = q.Where(roleExists(f.Role))
	}
	return q
}

func (r *AlumniRepository) findAlumni(ctx context.Context, f analytics.CompiledFilter) (out []models.Alumni, err error) {
	start := time.Now()
	defer func() { r.recorder.RecordQuery("find_alumni", len(out), time.Since(start), err) }()

	sql, args, err := r.alumniQuery(f).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building find alumni SQL")
		return nil, fmt.Errorf("failed to build find alumni query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing find alumni query")
		return nil, fmt.Errorf("error querying alumni: %w", err)
	}
	defer rows.Close()

	out = []models.Alumni{}
	for rows.Next() {
		var (
			a   models.Alumni
			loc locationCols
		)
		dest := append([]any{&a.ID, &a.FullName, &a.LinkedinURL, &a.ProfilePictureURL}, loc.dest()...)
		if err := rows.Scan(dest...); err != nil {
			logger.Error().Err(err).Msg("Error scanning alumni row")
			return nil, fmt.Errorf("error scanning alumni row: %w", err)
		}
		a.Location = loc.location()
		a.Roles = []models.Role{}
		a.Graduations = []models.Graduation{}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating alumni rows")
		return nil, fmt.Errorf("error iterating alumni rows: %w", err)
	}
	return out, nil
}

// rolesQuery loads every role of the given alumni with company, industry,
// locations and the primary classification.
func (r *AlumniRepository) rolesQuery(ids []string) squirrel.SelectBuilder {
	cols := []string{
		"r.id", "r.alumni_id", "r.start_date", "r.end_date", "r.is_current", "r.seniority_level",
		"co.id", "co.name", "co.logo", "co.levels_fyi_url", "co.company_size", "co.company_type", "co.founded",
		"i.id", "i.name",
	}
	cols = append(cols, locationColumns("hq")...)
	cols = append(cols, locationColumns("rl")...)
	cols = append(cols,
		"jc.esco_classification_id", "jc.rank", "jc.confidence", "jc.was_accepted_by_user",
		"e.title_en", "e.level", "e.esco_url",
	)

	return r.sb.Select(cols...).
		From("role r").
		LeftJoin("company co ON co.id = r.company_id").
		LeftJoin("industry i ON i.id = co.industry_id").
		LeftJoin("location hq ON hq.id = co.location_id").
		LeftJoin("location rl ON rl.id = r.location_id").
		LeftJoin("job_classification jc ON jc.role_id = r.id AND jc.rank = 1").
		LeftJoin("esco_classification e ON e.code = jc.esco_classification_id").
		Where(squirrel.Expr("r.alumni_id = ANY(?)", ids)).
		OrderBy("r.alumni_id", "r.start_date", "r.id")
}

func (r *AlumniRepository) loadRoles(ctx context.Context, ids []string, alumni []models.Alumni, index map[string]int, cache *graphCache) (err error) {
	start := time.Now()
	loaded := 0
	defer func() { r.recorder.RecordQuery("load_roles", loaded, time.Since(start), err) }()

	sql, args, err := r.rolesQuery(ids).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building load roles SQL")
		return fmt.Errorf("failed to build load roles query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing load roles query")
		return fmt.Errorf("error querying roles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			role         models.Role
			seniority    string
			co           companyCols
			industryID   *string
			industryName *string
			hq, rl       locationCols
			escoCode     *string
			rank         *int
			confidence   *float64
			accepted     *bool
			escoTitle    *string
			escoLevel    *int
			escoURL      *string
		)
		dest := []any{&role.ID, &role.AlumniID, &role.StartDate, &role.EndDate, &role.IsCurrent, &seniority}
		dest = append(dest, co.dest()...)
		dest = append(dest, &industryID, &industryName)
		dest = append(dest, hq.dest()...)
		dest = append(dest, rl.dest()...)
		dest = append(dest, &escoCode, &rank, &confidence, &accepted, &escoTitle, &escoLevel, &escoURL)
		if err := rows.Scan(dest...); err != nil {
			logger.Error().Err(err).Msg("Error scanning role row")
			return fmt.Errorf("error scanning role row: %w", err)
		}

		role.SeniorityLevel = models.SeniorityLevel(seniority)
		role.Location = cache.location(rl)
		role.Company = cache.company(co, func() *models.Industry {
			if industryID == nil {
				return nil
			}
			return cache.industry(*industryID, deref(industryName))
		}, cache.location(hq))
		if escoCode != nil {
			role.Classifications = []models.JobClassification{{
				RoleID:               role.ID,
				EscoClassificationID: *escoCode,
				Rank:                 derefInt(rank, 1),
				Confidence:           confidence,
				WasAcceptedByUser:    accepted,
				EscoClassification: models.EscoClassification{
					Code:    *escoCode,
					TitleEn: deref(escoTitle),
					Level:   derefInt(escoLevel, 0),
					EscoURL: escoURL,
				},
			}}
		}

		pos, ok := index[role.AlumniID]
		if !ok {
			continue
		}
		alumni[pos].Roles = append(alumni[pos].Roles, role)
		loaded++
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating role rows")
		return fmt.Errorf("error iterating role rows: %w", err)
	}
	return nil
}

func (r *AlumniRepository) graduationsQuery(ids []string) squirrel.SelectBuilder {
	return r.sb.Select(
		"g.id", "g.alumni_id", "g.course_id", "g.conclusion_year",
		"c.name", "c.acronym", "c.faculty_id", "c.start_year", "c.end_year",
		"f.name", "f.acronym",
	).
		From("graduation g").
		Join("course c ON c.id = g.course_id").
		Join("faculty f ON f.id = c.faculty_id").
		Where(squirrel.Expr("g.alumni_id = ANY(?)", ids)).
		OrderBy("g.alumni_id", "g.conclusion_year", "g.id")
}

func (r *AlumniRepository) loadGraduations(ctx context.Context, ids []string, alumni []models.Alumni, index map[string]int, cache *graphCache) (err error) {
	start := time.Now()
	loaded := 0
	defer func() { r.recorder.RecordQuery("load_graduations", loaded, time.Since(start), err) }()

	sql, args, err := r.graduationsQuery(ids).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building load graduations SQL")
		return fmt.Errorf("failed to build load graduations query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing load graduations query")
		return fmt.Errorf("error querying graduations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			g       models.Graduation
			course  models.Course
			faculty models.Faculty
		)
		if err := rows.Scan(
			&g.ID, &g.AlumniID, &g.CourseID, &g.ConclusionYear,
			&course.Name, &course.Acronym, &course.FacultyID, &course.StartYear, &course.EndYear,
			&faculty.Name, &faculty.Acronym,
		); err != nil {
			logger.Error().Err(err).Msg("Error scanning graduation row")
			return fmt.Errorf("error scanning graduation row: %w", err)
		}
		course.ID = g.CourseID
		faculty.ID = course.FacultyID
		g.Course = cache.course(course, faculty)

		pos, ok := index[g.AlumniID]
		if !ok {
			continue
		}
		alumni[pos].Graduations = append(alumni[pos].Graduations, g)
		loaded++
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating graduation rows")
		return fmt.Errorf("error iterating graduation rows: %w", err)
	}
	return nil
}

// Classifications returns the ESCO entries for codes; unknown codes are absent
func (r *AlumniRepository) Classifications(ctx context.Context, codes []string) (found map[string]models.EscoClassification, err error) {
	start := time.Now()
	defer func() { r.recorder.RecordQuery("classifications", len(found), time.Since(start), err) }()

	found = make(map[string]models.EscoClassification, len(codes))
	if len(codes) == 0 {
		return found, nil
	}

	sql, args, err := r.sb.Select("code", "title_en", "level", "esco_url").
		From("esco_classification").
		Where(squirrel.Expr("code = ANY(?)", codes)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building classifications SQL")
		return nil, fmt.Errorf("failed to build classifications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing classifications query")
		return nil, fmt.Errorf("error querying classifications: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c models.EscoClassification
		if err := rows.Scan(&c.Code, &c.TitleEn, &c.Level, &c.EscoURL); err != nil {
			logger.Error().Err(err).Msg("Error scanning classification row")
			return nil, fmt.Errorf("error scanning classification row: %w", err)
		}
		found[c.Code] = c
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating classification rows: %w", err)
	}
	return found, nil
}

// existsExpr renders EXISTS (<sub-select>). The sub-select uses ? placeholders;
// the outer builder numbers them.
type existsExpr struct {
	sub squirrel.SelectBuilder
}

func (e existsExpr) ToSql() (string, []interface{}, error) {
	sql, args, err := e.sub.ToSql()
	if err != nil {
		return "", nil, err
	}
	return "EXISTS (" + sql + ")", args, nil
}

// graduationExists requires one graduation satisfying every graduation clause
func graduationExists(p analytics.AlumniPredicate) squirrel.Sqlizer {
	sub := squirrel.Select("1").
		From("graduation g").
		Join("course c ON c.id = g.course_id").
		Where("g.alumni_id = a.id")
	if len(p.CourseIDs) > 0 {
		sub = sub.Where(squirrel.Eq{"g.course_id": p.CourseIDs})
	}
	if len(p.FacultyIDs) > 0 {
		sub = sub.Where(squirrel.Eq{"c.faculty_id": p.FacultyIDs})
	}
	if len(p.GraduationYears) > 0 {
		sub = sub.Where(squirrel.Eq{"g.conclusion_year": p.GraduationYears})
	}
	return existsExpr{sub: sub}
}

// roleExists requires one role satisfying every role clause
func roleExists(p analytics.RolePredicate) squirrel.Sqlizer {
	sub := squirrel.Select("1").
		From("role r").
		LeftJoin("company co ON co.id = r.company_id").
		LeftJoin("industry i ON i.id = co.industry_id").
		LeftJoin("location rl ON rl.id = r.location_id").
		LeftJoin("location hq ON hq.id = co.location_id").
		LeftJoin("job_classification jc ON jc.role_id = r.id AND jc.rank = 1").
		Where("r.alumni_id = a.id")
	for _, clause := range roleClauses(p) {
		sub = sub.Where(clause)
	}
	return existsExpr{sub: sub}
}

// roleClauses mirrors analytics.RolePredicate.Matches in SQL
func roleClauses(p analytics.RolePredicate) []squirrel.Sqlizer {
	var out []squirrel.Sqlizer
	if len(p.CompanyIDs) > 0 {
		out = append(out, squirrel.Eq{"r.company_id": p.CompanyIDs})
	}
	if len(p.IndustryIDs) > 0 {
		out = append(out, squirrel.Eq{"co.industry_id": p.IndustryIDs})
	}
	if len(p.CountryCodes) > 0 {
		out = append(out, squirrel.Eq{"UPPER(rl.country_code)": p.CountryCodes})
	}
	if len(p.CityIDs) > 0 {
		out = append(out, squirrel.Eq{"r.location_id": p.CityIDs})
	}
	if len(p.CompanyHQCountryCodes) > 0 {
		out = append(out, squirrel.Eq{"UPPER(hq.country_code)": p.CompanyHQCountryCodes})
	}
	if len(p.CompanyHQCityIDs) > 0 {
		out = append(out, squirrel.Eq{"co.location_id": p.CompanyHQCityIDs})
	}
	if len(p.CompanySizes) > 0 {
		out = append(out, squirrel.Eq{"co.company_size": toStrings(p.CompanySizes)})
	}
	if len(p.CompanyTypes) > 0 {
		out = append(out, squirrel.Eq{"co.company_type": toStrings(p.CompanyTypes)})
	}
	if len(p.SeniorityLevels) > 0 {
		out = append(out, squirrel.Eq{"r.seniority_level": toStrings(p.SeniorityLevels)})
	}
	if p.CurrentOnly {
		out = append(out, squirrel.Eq{"r.end_date": nil})
	}
	if p.ExcludeCountryCode != "" {
		out = append(out,
			squirrel.Expr("COALESCE(rl.country_code, '') <> ''"),
			squirrel.Expr("UPPER(rl.country_code) <> ?", strings.ToUpper(p.ExcludeCountryCode)),
		)
	}
	if len(p.ExcludeIndustries) > 0 {
		lowered := make([]string, len(p.ExcludeIndustries))
		for i, name := range p.ExcludeIndustries {
			lowered[i] = strings.ToLower(name)
		}
		out = append(out, squirrel.Or{
			squirrel.Eq{"i.id": nil},
			squirrel.NotEq{"LOWER(i.name)": lowered},
		})
	}
	if len(p.ExcludeEscoPrefixes) > 0 {
		notLike := squirrel.And{}
		for _, prefix := range p.ExcludeEscoPrefixes {
			notLike = append(notLike, squirrel.NotLike{"jc.esco_classification_id": escapeLike(prefix) + "%"})
		}
		out = append(out, squirrel.Or{squirrel.Eq{"jc.esco_classification_id": nil}, notLike})
	}
	if p.CompanySearch != "" {
		out = append(out, squirrel.ILike{"co.name": likePattern(p.CompanySearch)})
	}
	if p.IndustrySearch != "" {
		out = append(out, squirrel.ILike{"i.name": likePattern(p.IndustrySearch)})
	}
	if len(p.EscoPrefixes) > 0 {
		like := squirrel.Or{}
		for _, prefix := range p.EscoPrefixes {
			like = append(like, squirrel.Like{"jc.esco_classification_id": escapeLike(prefix) + "%"})
		}
		out = append(out, like)
	}
	return out
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// likePattern builds a substring pattern for (I)LIKE
func likePattern(s string) string {
	return "%" + escapeLike(s) + "%"
}

func toStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
