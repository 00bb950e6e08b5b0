package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/alumnisphere/internal/app/analytics"
	"github.com/yigit/alumnisphere/internal/app/models"
	"github.com/yigit/alumnisphere/internal/app/models/dto"
	"github.com/yigit/alumnisphere/internal/pkg/apperrors"
)

var serviceNow = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func serviceFixture() ([]models.Alumni, []models.EscoClassification) {
	pt := &models.Location{ID: "porto", Country: strPtr("Portugal"), CountryCode: strPtr("PT"), City: strPtr("Porto")}
	de := &models.Location{ID: "berlin", Country: strPtr("Germany"), CountryCode: strPtr("DE"), City: strPtr("Berlin")}
	software := &models.Industry{ID: "i1", Name: "Software Development"}
	acme := &models.Company{ID: "acme", Name: "Acme", Industry: software, Location: pt}
	globex := &models.Company{ID: "globex", Name: "Globex", Industry: software, Location: de}

	dev := models.EscoClassification{Code: "2512.4", TitleEn: "software developer", Level: 5}
	classified := func(r models.Role) models.Role {
		r.Classifications = []models.JobClassification{{RoleID: r.ID, EscoClassificationID: dev.Code, Rank: 1, EscoClassification: dev}}
		return r
	}
	ended := time.Date(2020, time.December, 31, 0, 0, 0, 0, time.UTC)

	alumni := []models.Alumni{
		{ID: "a1", FullName: "Ana", Roles: []models.Role{
			classified(models.Role{ID: "r1", AlumniID: "a1", StartDate: time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC), EndDate: &ended, Company: acme, Location: pt}),
			classified(models.Role{ID: "r2", AlumniID: "a1", StartDate: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), IsCurrent: true, Company: globex, Location: de}),
		}},
		{ID: "a2", FullName: "Bruno", Roles: []models.Role{
			{ID: "r3", AlumniID: "a2", StartDate: time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC), IsCurrent: true, Company: acme, Location: pt},
		}},
		{ID: "a3", FullName: "Carla"},
	}
	catalog := []models.EscoClassification{
		{Code: "2", TitleEn: "Professionals", Level: 1},
		{Code: "25", TitleEn: "Information and communications technology professionals", Level: 2},
		{Code: "251", TitleEn: "Software and applications developers and analysts", Level: 3},
		{Code: "2512", TitleEn: "Software developers", Level: 4},
	}
	return alumni, catalog
}

func newTestService(t *testing.T, settings AnalyticsSettings) AnalyticsService {
	t.Helper()
	alumni, catalog := serviceFixture()
	engine := analytics.NewEngine(
		analytics.NewMemorySource(alumni, catalog...),
		analytics.Config{CompileOptions: analytics.CompileOptions{HomeCountryCode: "PT"}},
		zerolog.Nop(),
		analytics.WithClock(func() time.Time { return serviceNow }),
	)
	return NewAnalyticsService(engine, settings, zerolog.Nop())
}

func TestAnalyticsService_GetAnalytics_AllDimensions(t *testing.T) {
	svc := newTestService(t, AnalyticsSettings{})

	resp, err := svc.GetAnalytics(context.Background(), &dto.AnalyticsQueryRequest{})
	require.NoError(t, err)

	require.NotNil(t, resp.AlumniData)
	assert.Equal(t, 3, resp.AlumniData.Count)
	require.NotNil(t, resp.CompanyData)
	assert.Equal(t, 2, resp.CompanyData.Count)
	require.NotNil(t, resp.CountryData)
	assert.Equal(t, 2, resp.CountryData.Count)
	assert.NotNil(t, resp.GraduationData)
}

func TestAnalyticsService_GetAnalytics_MapsFilters(t *testing.T) {
	svc := newTestService(t, AnalyticsSettings{})

	resp, err := svc.GetAnalytics(context.Background(), &dto.AnalyticsQueryRequest{
		Selector:          "COMPANY",
		OnlyInternational: true,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.CompanyData)
	assert.Nil(t, resp.AlumniData)

	// Ana keeps her whole role list even though only the Berlin role matched
	assert.Equal(t, 2, resp.CompanyData.Count)
}

func TestAnalyticsService_GetAnalytics_LowercaseCountryCodes(t *testing.T) {
	svc := newTestService(t, AnalyticsSettings{})

	resp, err := svc.GetAnalytics(context.Background(), &dto.AnalyticsQueryRequest{
		Selector:     "ALUMNI",
		CountryCodes: []string{" de ", ""},
	})
	require.NoError(t, err)
	require.Len(t, resp.AlumniData.Items, 1)
	assert.Equal(t, "a1", resp.AlumniData.Items[0].ID)
}

func TestAnalyticsService_GetAnalytics_LowercaseSelector(t *testing.T) {
	svc := newTestService(t, AnalyticsSettings{})

	resp, err := svc.GetAnalytics(context.Background(), &dto.AnalyticsQueryRequest{Selector: " geo "})
	require.NoError(t, err)
	assert.NotNil(t, resp.CountryData)
	assert.Nil(t, resp.AlumniData)
}

func TestAnalyticsService_GetAnalytics_Pagination(t *testing.T) {
	svc := newTestService(t, AnalyticsSettings{DefaultLimit: 2, MaxLimit: 2})

	resp, err := svc.GetAnalytics(context.Background(), &dto.AnalyticsQueryRequest{Selector: "ALUMNI", Limit: 50})
	require.NoError(t, err)
	assert.Len(t, resp.AlumniData.Items, 2)
	assert.Equal(t, 3, resp.AlumniData.Count)

	resp, err = svc.GetAnalytics(context.Background(), &dto.AnalyticsQueryRequest{Selector: "ALUMNI", Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, resp.AlumniData.Items)
	assert.Equal(t, 3, resp.AlumniData.Count)
}

func TestAnalyticsService_GetAnalytics_DateWindow(t *testing.T) {
	svc := newTestService(t, AnalyticsSettings{})

	resp, err := svc.GetAnalytics(context.Background(), &dto.AnalyticsQueryRequest{
		Selector:  "ALUMNI",
		StartDate: "2017-01-01",
		EndDate:   "2020-12-31",
	})
	require.NoError(t, err)
	require.Len(t, resp.AlumniData.Items, 1)
	assert.Equal(t, "a1", resp.AlumniData.Items[0].ID)
}

func TestAnalyticsService_GetAnalytics_RejectsInvertedWindow(t *testing.T) {
	svc := newTestService(t, AnalyticsSettings{})

	_, err := svc.GetAnalytics(context.Background(), &dto.AnalyticsQueryRequest{
		StartDate: "2020-01-01",
		EndDate:   "2019-01-01",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))

	var custom *apperrors.CustomError
	require.True(t, errors.As(err, &custom))
	assert.Equal(t, "endDate", custom.Details["field"])
}

func TestAnalyticsService_GetAnalytics_RejectsEscoLevel(t *testing.T) {
	svc := newTestService(t, AnalyticsSettings{})

	_, err := svc.GetAnalytics(context.Background(), &dto.AnalyticsQueryRequest{EscoClassificationLevel: 9})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestAnalyticsService_GetAnalytics_UnknownSelector(t *testing.T) {
	svc := newTestService(t, AnalyticsSettings{})

	_, err := svc.GetAnalytics(context.Background(), &dto.AnalyticsQueryRequest{Selector: "SALARY"})
	assert.True(t, errors.Is(err, apperrors.ErrUnknownSelector))
}

func TestAnalyticsService_GetAnalytics_Cancelled(t *testing.T) {
	svc := newTestService(t, AnalyticsSettings{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.GetAnalytics(ctx, &dto.AnalyticsQueryRequest{})
	assert.True(t, errors.Is(err, apperrors.ErrRequestCancelled))
}

func TestAnalyticsService_GetDimension(t *testing.T) {
	svc := newTestService(t, AnalyticsSettings{})

	resp, err := svc.GetDimension(context.Background(), "geo", &dto.AnalyticsQueryRequest{})
	require.NoError(t, err)
	assert.NotNil(t, resp.CountryData)
	assert.NotNil(t, resp.CityData)
	assert.Nil(t, resp.CompanyData)

	_, err = svc.GetDimension(context.Background(), "salaries", &dto.AnalyticsQueryRequest{})
	assert.True(t, errors.Is(err, apperrors.ErrUnknownDimension))
}

func TestAnalyticsService_GetDimension_DefaultGranularity(t *testing.T) {
	svc := newTestService(t, AnalyticsSettings{DefaultGranularity: analytics.GranularityYearly})

	resp, err := svc.GetDimension(context.Background(), "companies", &dto.AnalyticsQueryRequest{IncludeCompanyTrend: true})
	require.NoError(t, err)
	require.NotEmpty(t, resp.CompanyData.Items)
	assert.Equal(t, "2025", resp.CompanyData.Items[0].Trend[len(resp.CompanyData.Items[0].Trend)-1].Label)

	resp, err = svc.GetDimension(context.Background(), "companies", &dto.AnalyticsQueryRequest{IncludeCompanyTrend: true, TrendGranularity: "monthly"})
	require.NoError(t, err)
	assert.Equal(t, "2025-06", resp.CompanyData.Items[0].Trend[len(resp.CompanyData.Items[0].Trend)-1].Label)
}

func TestAnalyticsService_GetRoleHierarchy(t *testing.T) {
	svc := newTestService(t, AnalyticsSettings{})

	items, err := svc.GetRoleHierarchy(context.Background(), "2512.4")
	require.NoError(t, err)
	require.Len(t, items, 5)
	assert.Equal(t, "2", items[0].Code)
	assert.Equal(t, "2512.4", items[4].Code)
	assert.Equal(t, "software developer", items[4].Name)

	_, err = svc.GetRoleHierarchy(context.Background(), "9999")
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))

	_, err = svc.GetRoleHierarchy(context.Background(), "  ")
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestAnalyticsService_GetCompanyInsights(t *testing.T) {
	svc := newTestService(t, AnalyticsSettings{RequestTimeout: time.Second})

	got, err := svc.GetCompanyInsights(context.Background(), " acme ")
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Name)
	assert.Equal(t, 2, got.AlumniCount)
	assert.Equal(t, 1, got.CurrentAlumniCount)
	assert.Equal(t, "3 years and 1 month", got.AverageYearsInCompany)
	assert.Equal(t, 3, got.AverageYearsOfCareer)
	assert.Equal(t, "Porto, Portugal", got.Headquarters)

	_, err = svc.GetCompanyInsights(context.Background(), "initech")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	_, err = svc.GetCompanyInsights(context.Background(), "  ")
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestAnalyticsService_GetOptions(t *testing.T) {
	svc := newTestService(t, AnalyticsSettings{})

	countries, err := svc.GetOptions(context.Background(), "countries", &dto.OptionsRequest{})
	require.NoError(t, err)
	assert.Equal(t, []dto.Option{{ID: "DE", Name: "Germany"}, {ID: "PT", Name: "Portugal"}}, countries)

	cities, err := svc.GetOptions(context.Background(), "cities", &dto.OptionsRequest{CountryCodes: []string{"de", " "}})
	require.NoError(t, err)
	assert.Equal(t, []dto.Option{{ID: "berlin", Name: "Berlin", Country: "DE"}}, cities)

	_, err = svc.GetOptions(context.Background(), "planets", &dto.OptionsRequest{})
	assert.ErrorIs(t, err, apperrors.ErrUnknownDimension)
}
