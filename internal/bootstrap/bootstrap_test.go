package bootstrap

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/alumnisphere/internal/app/analytics"
	"github.com/yigit/alumnisphere/internal/app/models/dto"
	"github.com/yigit/alumnisphere/internal/config"
)

func memoryConfig(t *testing.T, extra string) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
server:
  mode: production
database:
  driver: memory
seed:
  alumni: 120
  random_seed: 7
rate_limit:
  enabled: false
` + extra
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	return cfg
}

func newTestRouter(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()
	deps, err := BuildDependencies(cfg, nil, zerolog.Nop())
	require.NoError(t, err)
	return SetupRouter(cfg, deps, zerolog.Nop())
}

func get(h http.Handler, target string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestEngineConfig(t *testing.T) {
	cfg := memoryConfig(t, `
analytics:
  home_country_code: es
  role_scope: window
  trend_workers: 2
`)
	ec := EngineConfig(cfg)
	assert.Equal(t, "ES", ec.HomeCountryCode)
	assert.Equal(t, analytics.RoleScopeWindow, ec.RoleScope)
	assert.Equal(t, 2, ec.TrendWorkers)
	assert.Equal(t, 30, ec.HorizonYears)
	assert.Equal(t, []string{"231", "2521"}, ec.ResearchEscoPrefixes)
}

func TestMemoryDriver_EndToEnd(t *testing.T) {
	t.Setenv("AUTH_ENABLED", "false")
	router := newTestRouter(t, memoryConfig(t, ""))

	w := get(router, "/api/v1/analytics?limit=5&includeCompanyTrend=true")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var body struct {
		Success bool                  `json:"success"`
		Data    dto.AnalyticsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.NotNil(t, body.Data.AlumniData)
	assert.Equal(t, 120, body.Data.AlumniData.Count)
	assert.Len(t, body.Data.AlumniData.Items, 5)
	require.NotNil(t, body.Data.CompanyData)
	require.NotEmpty(t, body.Data.CompanyData.Items)
	assert.Len(t, body.Data.CompanyData.Items[0].Trend, 31, "yearly default over 30 years")

	w = get(router, "/api/v1/analytics/geo")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"countryData"`)
	assert.NotContains(t, w.Body.String(), `"companyData"`)

	w = get(router, "/api/v1/analytics/roles/hierarchy?code=2512.4.1")
	require.Equal(t, http.StatusOK, w.Code)
	var hierarchy struct {
		Data []dto.RoleHierarchyItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &hierarchy))
	require.Len(t, hierarchy.Data, 6)
	assert.Equal(t, "2", hierarchy.Data[0].Code)
	assert.Equal(t, "backend developer", hierarchy.Data[5].Name)

	w = get(router, "/api/v1/analytics/options/companies")
	require.Equal(t, http.StatusOK, w.Code)
	var companies struct {
		Data []dto.Option `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &companies))
	require.NotEmpty(t, companies.Data)

	w = get(router, "/api/v1/analytics/companies/"+companies.Data[0].ID+"/insights")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"averageYearsInCompany"`)
	assert.Equal(t, http.StatusNotFound, get(router, "/api/v1/analytics/companies/no-such-company/insights").Code)
	assert.Equal(t, http.StatusNotFound, get(router, "/api/v1/analytics/options/planets").Code)

	assert.Equal(t, http.StatusNotFound, get(router, "/api/v1/analytics/salaries").Code)
	assert.Equal(t, http.StatusBadRequest, get(router, "/api/v1/analytics?selector=SALARY").Code)
	assert.Equal(t, http.StatusOK, get(router, "/api/v1/analytics?selector=geo").Code)
	assert.Equal(t, http.StatusBadRequest, get(router, "/api/v1/analytics?startDate=2020-01-01&endDate=2019-01-01").Code)

	w = get(router, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"memory"`)

	w = get(router, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alumnisphere_analytics_runs_total")
}

func TestAuthEnabled(t *testing.T) {
	cfg := memoryConfig(t, `
auth:
  enabled: true
  secret: test-secret
`)
	deps, err := BuildDependencies(cfg, nil, zerolog.Nop())
	require.NoError(t, err)
	require.NotNil(t, deps.JWTService)
	router := SetupRouter(cfg, deps, zerolog.Nop())

	assert.Equal(t, http.StatusUnauthorized, get(router, "/api/v1/analytics?selector=ALUMNI").Code)
	assert.Equal(t, http.StatusOK, get(router, "/health").Code, "health stays public")

	token, err := deps.JWTService.GenerateToken("dashboard", time.Minute)
	require.NoError(t, err)
	w := get(router, "/api/v1/analytics?selector=ALUMNI", "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestRateLimitEnabled(t *testing.T) {
	cfg := memoryConfig(t, "")
	cfg.RateLimit.Enabled = true
	cfg.RateLimit.RequestsPerMinute = 1
	cfg.RateLimit.Burst = 1
	router := newTestRouter(t, cfg)

	assert.Equal(t, http.StatusOK, get(router, "/api/v1/analytics?selector=SENIORITY").Code)
	w := get(router, "/api/v1/analytics?selector=SENIORITY")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "REQ_001"))
}
