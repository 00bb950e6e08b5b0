package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/yigit/alumnisphere/internal/app/analytics"
	"github.com/yigit/alumnisphere/internal/app/models"
	"github.com/yigit/alumnisphere/internal/app/models/dto"
	"github.com/yigit/alumnisphere/internal/pkg/apperrors"
	"github.com/yigit/alumnisphere/internal/pkg/helpers"
)

// AnalyticsService defines the interface for analytics operations
type AnalyticsService interface {
	GetAnalytics(ctx context.Context, req *dto.AnalyticsQueryRequest) (*dto.AnalyticsResponse, error)
	GetDimension(ctx context.Context, dimension string, req *dto.AnalyticsQueryRequest) (*dto.AnalyticsResponse, error)
	GetRoleHierarchy(ctx context.Context, code string) ([]dto.RoleHierarchyItem, error)
	GetCompanyInsights(ctx context.Context, companyID string) (*dto.CompanyInsights, error)
	GetOptions(ctx context.Context, kind string, req *dto.OptionsRequest) ([]dto.Option, error)
}

// AnalyticsSettings are the request defaults taken from configuration
type AnalyticsSettings struct {
	DefaultLimit       int
	MaxLimit           int
	DefaultGranularity analytics.Granularity
	// RequestTimeout bounds one run, fetch included; zero disables it
	RequestTimeout time.Duration
}

// analyticsServiceImpl implements the AnalyticsService interface
type analyticsServiceImpl struct {
	engine   *analytics.Engine
	settings AnalyticsSettings
	logger   zerolog.Logger
}

// NewAnalyticsService creates a new analytics service instance
func NewAnalyticsService(engine *analytics.Engine, settings AnalyticsSettings, logger zerolog.Logger) AnalyticsService {
	if settings.DefaultLimit <= 0 {
		settings.DefaultLimit = helpers.DefaultPageSize
	}
	if settings.MaxLimit < settings.DefaultLimit {
		settings.MaxLimit = helpers.MaxPageSize
	}
	if settings.DefaultGranularity == "" {
		settings.DefaultGranularity = analytics.GranularityYearly
	}
	return &analyticsServiceImpl{
		engine:   engine,
		settings: settings,
		logger:   logger.With().Str("service", "analytics").Logger(),
	}
}

// GetAnalytics runs the dimensions named by the request selector
func (s *analyticsServiceImpl) GetAnalytics(ctx context.Context, req *dto.AnalyticsQueryRequest) (*dto.AnalyticsResponse, error) {
	selector, err := analytics.ParseSelector(req.Selector)
	if err != nil {
		return nil, err
	}
	return s.run(ctx, selector, req)
}

// GetDimension runs the dimensions behind a path segment such as "geo"
func (s *analyticsServiceImpl) GetDimension(ctx context.Context, dimension string, req *dto.AnalyticsQueryRequest) (*dto.AnalyticsResponse, error) {
	selector, err := analytics.SelectorFromPath(dimension)
	if err != nil {
		return nil, err
	}
	return s.run(ctx, selector, req)
}

func (s *analyticsServiceImpl) run(ctx context.Context, selector analytics.Selector, req *dto.AnalyticsQueryRequest) (*dto.AnalyticsResponse, error) {
	q, err := s.buildQuery(selector, req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.engine.Run(ctx, q)
	if err != nil {
		if !apperrors.Is(err, apperrors.ErrRequestCancelled, apperrors.ErrUnknownSelector, apperrors.ErrUnknownDimension) {
			s.logger.Error().Err(err).Str("selector", string(selector)).Msg("Analytics run failed")
		}
		return nil, err
	}
	return resp, nil
}

// buildQuery turns a bound request into an engine query
func (s *analyticsServiceImpl) buildQuery(selector analytics.Selector, req *dto.AnalyticsQueryRequest) (analytics.Query, error) {
	start, err := helpers.ParseDate(req.StartDate)
	if err != nil {
		return analytics.Query{}, apperrors.NewValidationError("startDate", "startDate must be a date in the format YYYY-MM-DD")
	}
	end, err := helpers.ParseDate(req.EndDate)
	if err != nil {
		return analytics.Query{}, apperrors.NewValidationError("endDate", "endDate must be a date in the format YYYY-MM-DD")
	}
	if start != nil && end != nil && end.Before(*start) {
		return analytics.Query{}, apperrors.NewValidationError("endDate", "endDate must not be before startDate")
	}
	if end != nil {
		// the end date is inclusive
		eod := helpers.EndOfDay(*end)
		end = &eod
	}

	if lvl := req.EscoClassificationLevel; lvl != 0 && (lvl < 1 || lvl > 8) {
		return analytics.Query{}, apperrors.NewValidationError("escoClassificationLevel", "escoClassificationLevel must be between 1 and 8")
	}

	offset, limit := helpers.NormalizeOffsetLimit(req.Offset, req.Limit, s.settings.DefaultLimit, s.settings.MaxLimit)

	granularity := s.settings.DefaultGranularity
	if req.TrendGranularity != "" {
		granularity = analytics.ParseGranularity(req.TrendGranularity)
	}

	return analytics.Query{
		Selector: selector,
		Criteria: analytics.Criteria{
			StartDate:                       start,
			EndDate:                         end,
			CurrentRolesOnly:                req.CurrentRolesOnly,
			AlumniIDs:                       compact(req.AlumniIDs),
			AlumniSearch:                    req.AlumniSearch,
			CourseIDs:                       compact(req.CourseIDs),
			FacultyIDs:                      compact(req.FacultyIDs),
			GraduationYears:                 req.GraduationYears,
			CompanyIDs:                      compact(req.CompanyIDs),
			IndustryIDs:                     compact(req.IndustryIDs),
			RoleCountryCodes:                compact(req.CountryCodes),
			RoleCityIDs:                     compact(req.CityIDs),
			CompanyHQCountryCodes:           compact(req.CompanyCountryCodes),
			CompanyHQCityIDs:                compact(req.CompanyCityIDs),
			CompanySizes:                    convert[models.CompanySize](req.CompanySizes),
			CompanyTypes:                    convert[models.CompanyType](req.CompanyTypes),
			SeniorityLevels:                 convert[models.SeniorityLevel](req.SeniorityLevels),
			OnlyInternational:               req.OnlyInternational,
			ExcludeResearchAndHighEducation: req.ExcludeResearchAndHighEducation,
			CompanySearch:                   req.CompanySearch,
			IndustrySearch:                  req.IndustrySearch,
			EscoCodes:                       compact(req.EscoCodes),
		},
		Params: analytics.Params{
			Offset:    offset,
			Limit:     limit,
			SortBy:    analytics.SortField(req.SortBy),
			SortOrder: analytics.SortOrder(req.SortOrder),
			EscoLevel: req.EscoClassificationLevel,
		},
		Granularity: granularity,
		Trends: analytics.TrendFlags{
			Company:   req.IncludeCompanyTrend,
			Industry:  req.IncludeIndustryTrend,
			Role:      req.IncludeRoleTrend,
			Seniority: req.IncludeSeniorityTrend,
			Geo:       req.IncludeGeoTrend,
			Education: req.IncludeEducationTrend,
		},
	}, nil
}

// GetRoleHierarchy returns the ESCO ancestry of code, root first
func (s *analyticsServiceImpl) GetRoleHierarchy(ctx context.Context, code string) ([]dto.RoleHierarchyItem, error) {
	catalog := s.engine.Catalog()
	if catalog == nil {
		return nil, apperrors.NewResourceNotFoundError("classification catalog is not available")
	}

	code = strings.TrimSpace(code)
	if code == "" {
		return nil, apperrors.NewBadRequestError("ESCO code is required")
	}

	items, err := analytics.RoleHierarchy(ctx, catalog, code)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrRequestCancelled, ctx.Err())
		}
		s.logger.Error().Err(err).Str("code", code).Msg("Role hierarchy lookup failed")
		return nil, fmt.Errorf("%w: %w", apperrors.ErrDataAccess, err)
	}
	if len(items) == 0 {
		return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("ESCO code %s not found", code))
	}
	return items, nil
}

// GetCompanyInsights summarises the alumni who worked at companyID
func (s *analyticsServiceImpl) GetCompanyInsights(ctx context.Context, companyID string) (*dto.CompanyInsights, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return nil, apperrors.NewBadRequestError("company id is required")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	insights, err := s.engine.CompanyInsights(ctx, companyID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrDataAccess) && !apperrors.Is(err, apperrors.ErrRequestCancelled) {
			s.logger.Error().Err(err).Str("company_id", companyID).Msg("Company insights failed")
		}
		return nil, err
	}
	return insights, nil
}

// GetOptions lists the value-label pairs of one filter input
func (s *analyticsServiceImpl) GetOptions(ctx context.Context, kind string, req *dto.OptionsRequest) ([]dto.Option, error) {
	optionKind, err := analytics.ParseOptionKind(kind)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	options, err := s.engine.Options(ctx, optionKind, analytics.OptionFilter{
		CountryCodes: compact(req.CountryCodes),
		FacultyIDs:   compact(req.FacultyIDs),
	})
	if err != nil {
		if !apperrors.Is(err, apperrors.ErrRequestCancelled) {
			s.logger.Error().Err(err).Str("kind", kind).Msg("Options listing failed")
		}
		return nil, err
	}
	return options, nil
}

func (s *analyticsServiceImpl) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.settings.RequestTimeout > 0 {
		return context.WithTimeout(ctx, s.settings.RequestTimeout)
	}
	return ctx, func() {}
}

// compact trims values and drops blanks; nil when nothing remains
func compact(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func convert[T ~string](values []string) []T {
	values = compact(values)
	if len(values) == 0 {
		return nil
	}
	out := make([]T, len(values))
	for i, v := range values {
		out[i] = T(strings.ToUpper(v))
	}
	return out
}
