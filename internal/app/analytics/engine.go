package analytics

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/yigit/alumnisphere/internal/app/models"
	"github.com/yigit/alumnisphere/internal/app/models/dto"
	"github.com/yigit/alumnisphere/internal/pkg/apperrors"
)

// TrendFlags switches trends on per dimension family
type TrendFlags struct {
	Company   bool
	Industry  bool
	Role      bool
	Seniority bool
	Geo       bool
	Education bool
}

// Query is one analytics request after validation
type Query struct {
	Criteria    Criteria
	Selector    Selector
	Params      Params
	Granularity Granularity
	Trends      TrendFlags
}

// Config holds the engine settings
type Config struct {
	CompileOptions
	HorizonYears int
	TrendWorkers int
	RoleScope    RoleScope
}

// Recorder receives run and dimension measurements
type Recorder interface {
	RecordRun(selector string, workingSet int, d time.Duration, err error)
	RecordDimension(dimension string, items int, d time.Duration, err error)
}

type nopRecorder struct{}

func (nopRecorder) RecordRun(string, int, time.Duration, error)       {}
func (nopRecorder) RecordDimension(string, int, time.Duration, error) {}

// Engine fetches the working set once and computes the selected dimensions
// concurrently over it.
type Engine struct {
	source   Source
	catalog  ClassificationCatalog
	cfg      Config
	logger   zerolog.Logger
	tracer   trace.Tracer
	recorder Recorder
	now      func() time.Time
}

// Option customises an Engine
type Option func(*Engine)

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithRecorder sets the metrics recorder
func WithRecorder(r Recorder) Option {
	return func(e *Engine) {
		if r != nil {
			e.recorder = r
		}
	}
}

// WithTracer replaces the global tracer
func WithTracer(t trace.Tracer) Option {
	return func(e *Engine) { e.tracer = t }
}

// WithCatalog sets the classification catalog used for ESCO level titles.
// When the source implements ClassificationCatalog it is used by default.
func WithCatalog(c ClassificationCatalog) Option {
	return func(e *Engine) { e.catalog = c }
}

// NewEngine creates an engine reading from source
func NewEngine(source Source, cfg Config, logger zerolog.Logger, opts ...Option) *Engine {
	if cfg.HorizonYears <= 0 {
		cfg.HorizonYears = DefaultHorizonYears
	}
	if cfg.TrendWorkers <= 0 {
		cfg.TrendWorkers = DefaultTrendWorkers
	}
	if cfg.RoleScope == "" {
		cfg.RoleScope = RoleScopeAlumni
	}

	e := &Engine{
		source:   source,
		cfg:      cfg,
		logger:   logger.With().Str("component", "analytics").Logger(),
		tracer:   otel.Tracer("github.com/yigit/alumnisphere/internal/app/analytics"),
		recorder: nopRecorder{},
		now:      time.Now,
	}
	if c, ok := source.(ClassificationCatalog); ok {
		e.catalog = c
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the classification catalog, or nil
func (e *Engine) Catalog() ClassificationCatalog {
	return e.catalog
}

// Run compiles the criteria, fetches the working set, applies the date
// window and fans out to the selected dimensions. Any dimension failure
// fails the whole run.
func (e *Engine) Run(ctx context.Context, q Query) (resp *dto.AnalyticsResponse, err error) {
	start := time.Now()
	ctx, span := e.tracer.Start(ctx, "analytics.Run", trace.WithAttributes(
		attribute.String("analytics.selector", string(q.Selector)),
	))
	workingSet := 0
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		e.recorder.RecordRun(string(q.Selector), workingSet, time.Since(start), err)
	}()

	dims, err := q.Selector.Dimensions()
	if err != nil {
		return nil, err
	}

	filter := Compile(q.Criteria, e.cfg.CompileOptions)
	candidates, err := e.source.Find(ctx, filter)
	if err != nil {
		return nil, e.sourceError(ctx, "find alumni", err)
	}

	now := e.now().UTC()
	in := &Input{
		Alumni:     FilterWindow(candidates, filter.Window, now, e.cfg.RoleScope),
		Candidates: candidates,
		Now:        now,
		Trends:     TrendGenerator{HorizonYears: e.cfg.HorizonYears, Granularity: q.Granularity},
		Workers:    e.cfg.TrendWorkers,
	}
	workingSet = len(in.Alumni)
	span.SetAttributes(
		attribute.Int("analytics.candidates", len(candidates)),
		attribute.Int("analytics.working_set", workingSet),
	)

	if q.Params.EscoLevel > 0 && slices.Contains(dims, DimensionRole) {
		if in.Classifications, err = e.loadClassifications(ctx, in, q); err != nil {
			return nil, err
		}
	}

	resp = &dto.AnalyticsResponse{}
	g, gctx := errgroup.WithContext(ctx)
	for _, d := range dims {
		g.Go(func() error {
			return e.runDimension(gctx, d, in, q, resp)
		})
	}
	if err = g.Wait(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrRequestCancelled, ctx.Err())
		}
		return nil, err
	}

	e.logger.Debug().
		Str("selector", string(q.Selector)).
		Int("candidates", len(candidates)).
		Int("alumni", workingSet).
		Dur("duration", time.Since(start)).
		Msg("Analytics run completed")
	return resp, nil
}

// loadClassifications fetches the titles of the working set's ESCO codes
// truncated to the requested level. Trends match on codes only.
func (e *Engine) loadClassifications(ctx context.Context, in *Input, q Query) (map[string]models.EscoClassification, error) {
	codes := ResolvedEscoCodes(in.Alumni, q.Params.EscoLevel)
	if len(codes) == 0 {
		return nil, nil
	}
	if e.catalog == nil {
		e.logger.Warn().Int("level", q.Params.EscoLevel).Msg("No classification catalog, truncated ESCO codes cannot be titled")
		return nil, nil
	}
	found, err := e.catalog.Classifications(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("%w: load classifications: %w", apperrors.ErrDataAccess, err)
	}
	return found, nil
}

// runDimension computes one dimension and stores it in its own response
// field; distinct goroutines never share a field.
func (e *Engine) runDimension(ctx context.Context, d Dimension, in *Input, q Query, out *dto.AnalyticsResponse) (err error) {
	start := time.Now()
	ctx, span := e.tracer.Start(ctx, "analytics.dimension", trace.WithAttributes(
		attribute.String("analytics.dimension", string(d)),
	))
	items := 0
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		e.recorder.RecordDimension(string(d), items, time.Since(start), err)
	}()

	p := q.Params
	switch d {
	case DimensionAlumni:
		var r *dto.DimensionResult[dto.AlumniListItem]
		if r, err = ListAlumni(ctx, in, p); err == nil {
			out.AlumniData, items = r, r.Count
		}
	case DimensionCompany:
		p.Trend = q.Trends.Company
		var r *dto.DimensionResult[dto.CompanyListItem]
		if r, err = AggregateCompanies(ctx, in, p); err == nil {
			out.CompanyData, items = r, r.Count
		}
	case DimensionIndustry:
		p.Trend = q.Trends.Industry
		var r *dto.DimensionResult[dto.IndustryListItem]
		if r, err = AggregateIndustries(ctx, in, p); err == nil {
			out.IndustryData, items = r, r.Count
		}
	case DimensionCountry:
		p.Trend = q.Trends.Geo
		var r *dto.DimensionResult[dto.CountryListItem]
		if r, err = AggregateCountries(ctx, in, p); err == nil {
			out.CountryData, items = r, r.Count
		}
	case DimensionCity:
		p.Trend = q.Trends.Geo
		var r *dto.DimensionResult[dto.CityListItem]
		if r, err = AggregateCities(ctx, in, p); err == nil {
			out.CityData, items = r, r.Count
		}
	case DimensionRole:
		p.Trend = q.Trends.Role
		var r *dto.DimensionResult[dto.RoleListItem]
		if r, err = AggregateRoles(ctx, in, p); err == nil {
			out.RoleData, items = r, r.Count
		}
	case DimensionSeniority:
		p.Trend = q.Trends.Seniority
		var r *dto.DimensionResult[dto.SeniorityListItem]
		if r, err = AggregateSeniority(ctx, in, p); err == nil {
			out.SeniorityData, items = r, r.Count
		}
	case DimensionFaculty:
		p.Trend = q.Trends.Education
		var r *dto.DimensionResult[dto.FacultyListItem]
		if r, err = AggregateFaculties(ctx, in, p); err == nil {
			out.FacultyData, items = r, r.Count
		}
	case DimensionMajor:
		p.Trend = q.Trends.Education
		var r *dto.DimensionResult[dto.MajorListItem]
		if r, err = AggregateMajors(ctx, in, p); err == nil {
			out.MajorData, items = r, r.Count
		}
	case DimensionGraduation:
		var r *dto.DimensionResult[dto.GraduationListItem]
		if r, err = AggregateGraduations(ctx, in, p); err == nil {
			out.GraduationData, items = r, r.Count
		}
	default:
		return fmt.Errorf("%w: %q", apperrors.ErrUnknownDimension, string(d))
	}
	if err != nil {
		return fmt.Errorf("%s dimension: %w", d, err)
	}
	return nil
}

// CompanyInsights loads the alumni who held a role at companyID and
// summarises their tenure there.
func (e *Engine) CompanyInsights(ctx context.Context, companyID string) (out *dto.CompanyInsights, err error) {
	ctx, span := e.tracer.Start(ctx, "analytics.CompanyInsights", trace.WithAttributes(
		attribute.String("analytics.company_id", companyID),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	filter := Compile(Criteria{CompanyIDs: []string{companyID}}, e.cfg.CompileOptions)
	alumni, err := e.source.Find(ctx, filter)
	if err != nil {
		return nil, e.sourceError(ctx, "find company alumni", err)
	}
	return CompanyInsights(ctx, alumni, companyID, e.now().UTC())
}

// Options lists the values of kind. Sources implementing OptionSource answer
// directly; otherwise the values are derived from every alumni.
func (e *Engine) Options(ctx context.Context, kind OptionKind, filter OptionFilter) (out []dto.Option, err error) {
	ctx, span := e.tracer.Start(ctx, "analytics.Options", trace.WithAttributes(
		attribute.String("analytics.option_kind", string(kind)),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if lister, ok := e.source.(OptionSource); ok {
		if out, err = lister.Options(ctx, kind, filter); err != nil {
			return nil, e.sourceError(ctx, "list options", err)
		}
		return SortOptions(out), nil
	}

	alumni, err := e.source.Find(ctx, Compile(Criteria{}, e.cfg.CompileOptions))
	if err != nil {
		return nil, e.sourceError(ctx, "list options", err)
	}
	return DeriveOptions(alumni, kind, filter), nil
}

func (e *Engine) sourceError(ctx context.Context, op string, err error) error {
	if ctx.Err() != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrRequestCancelled, ctx.Err())
	}
	return fmt.Errorf("%w: %s: %w", apperrors.ErrDataAccess, op, err)
}
