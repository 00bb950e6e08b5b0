package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/alumnisphere/internal/app/models/dto"
	"github.com/yigit/alumnisphere/internal/middleware"
	"github.com/yigit/alumnisphere/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := middleware.RegisterValidators(); err != nil {
		panic(err)
	}
}

type fakeAnalyticsService struct {
	lastReq       *dto.AnalyticsQueryRequest
	lastDimension string
	lastCode      string
	resp          *dto.AnalyticsResponse
	hierarchy     []dto.RoleHierarchyItem
	insights      *dto.CompanyInsights
	options       []dto.Option
	lastOptions   *dto.OptionsRequest
	lastID        string
	err           error
}

func (f *fakeAnalyticsService) GetAnalytics(_ context.Context, req *dto.AnalyticsQueryRequest) (*dto.AnalyticsResponse, error) {
	f.lastReq = req
	return f.resp, f.err
}

func (f *fakeAnalyticsService) GetDimension(_ context.Context, dimension string, req *dto.AnalyticsQueryRequest) (*dto.AnalyticsResponse, error) {
	f.lastDimension = dimension
	f.lastReq = req
	return f.resp, f.err
}

func (f *fakeAnalyticsService) GetRoleHierarchy(_ context.Context, code string) ([]dto.RoleHierarchyItem, error) {
	f.lastCode = code
	return f.hierarchy, f.err
}

func (f *fakeAnalyticsService) GetCompanyInsights(_ context.Context, companyID string) (*dto.CompanyInsights, error) {
	f.lastID = companyID
	return f.insights, f.err
}

func (f *fakeAnalyticsService) GetOptions(_ context.Context, kind string, req *dto.OptionsRequest) ([]dto.Option, error) {
	f.lastDimension = kind
	f.lastOptions = req
	return f.options, f.err
}

func newAnalyticsRouter(svc *fakeAnalyticsService) *gin.Engine {
	ctrl := NewAnalyticsController(svc)
	r := gin.New()
	r.GET("/analytics", ctrl.GetAnalytics)
	r.GET("/analytics/roles/hierarchy", ctrl.GetRoleHierarchy)
	r.GET("/analytics/companies/:id/insights", ctrl.GetCompanyInsights)
	r.GET("/analytics/options/:kind", ctrl.GetOptions)
	r.GET("/analytics/:dimension", ctrl.GetDimension)
	return r
}

func serve(r http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestAnalyticsController_GetAnalytics(t *testing.T) {
	svc := &fakeAnalyticsService{resp: &dto.AnalyticsResponse{
		CompanyData: &dto.DimensionResult[dto.CompanyListItem]{
			Items: []dto.CompanyListItem{{ID: "acme", Name: "Acme", Count: 2}},
			Count: 1,
		},
	}}
	r := newAnalyticsRouter(svc)

	w := serve(r, "/analytics?selector=COMPANY&courseIds=c1&courseIds=c2&graduationYears=2020&includeCompanyTrend=true&sortBy=name&sortOrder=asc")
	require.Equal(t, http.StatusOK, w.Code)

	require.NotNil(t, svc.lastReq)
	assert.Equal(t, "COMPANY", svc.lastReq.Selector)
	assert.Equal(t, []string{"c1", "c2"}, svc.lastReq.CourseIDs)
	assert.Equal(t, []int{2020}, svc.lastReq.GraduationYears)
	assert.True(t, svc.lastReq.IncludeCompanyTrend)

	var body struct {
		Success bool                  `json:"success"`
		Data    dto.AnalyticsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.NotNil(t, body.Data.CompanyData)
	assert.Equal(t, "Acme", body.Data.CompanyData.Items[0].Name)
	assert.Nil(t, body.Data.AlumniData)
}

func TestAnalyticsController_GetAnalytics_InvalidQuery(t *testing.T) {
	svc := &fakeAnalyticsService{}
	r := newAnalyticsRouter(svc)

	w := serve(r, "/analytics?limit=0&offset=-1")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.lastReq)
}

func TestAnalyticsController_GetAnalytics_ServiceErrors(t *testing.T) {
	cases := map[error]int{
		apperrors.NewValidationError("endDate", "endDate must not be before startDate"): http.StatusBadRequest,
		fmt.Errorf("%w: connection reset", apperrors.ErrDataAccess):                     http.StatusInternalServerError,
		fmt.Errorf("%w: %w", apperrors.ErrRequestCancelled, context.DeadlineExceeded):   http.StatusRequestTimeout,
	}
	for err, status := range cases {
		svc := &fakeAnalyticsService{err: err}
		w := serve(newAnalyticsRouter(svc), "/analytics")
		assert.Equal(t, status, w.Code, err.Error())
	}
}

func TestAnalyticsController_GetDimension(t *testing.T) {
	svc := &fakeAnalyticsService{resp: &dto.AnalyticsResponse{}}
	r := newAnalyticsRouter(svc)

	w := serve(r, "/analytics/geo?onlyInternational=true")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "geo", svc.lastDimension)
	assert.True(t, svc.lastReq.OnlyInternational)

	w = serve(r, "/analytics/roles")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "roles", svc.lastDimension)
}

func TestAnalyticsController_GetDimension_Unknown(t *testing.T) {
	svc := &fakeAnalyticsService{err: fmt.Errorf("%w: salaries", apperrors.ErrUnknownDimension)}
	w := serve(newAnalyticsRouter(svc), "/analytics/salaries")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAnalyticsController_GetRoleHierarchy(t *testing.T) {
	svc := &fakeAnalyticsService{hierarchy: []dto.RoleHierarchyItem{
		{Code: "2", Name: "Professionals", Level: 1},
		{Code: "25", Name: "ICT professionals", Level: 2},
	}}
	r := newAnalyticsRouter(svc)

	w := serve(r, "/analytics/roles/hierarchy?code=25")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "25", svc.lastCode)

	var body struct {
		Data []dto.RoleHierarchyItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data, 2)

	w = serve(r, "/analytics/roles/hierarchy")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(r, "/analytics/roles/hierarchy?code=dev")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyticsController_GetCompanyInsights(t *testing.T) {
	svc := &fakeAnalyticsService{
		resp:     &dto.AnalyticsResponse{},
		insights: &dto.CompanyInsights{ID: "acme", Name: "Acme", AlumniCount: 2, AverageYearsInCompany: "1 year"},
	}
	r := newAnalyticsRouter(svc)

	w := serve(r, "/analytics/companies/acme/insights")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "acme", svc.lastID)

	var body struct {
		Data dto.CompanyInsights `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Data.AlumniCount)

	// the company list still routes to the dimension handler
	w = serve(r, "/analytics/companies")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "companies", svc.lastDimension)

	svc.err = apperrors.NewResourceNotFoundError("company not found")
	w = serve(r, "/analytics/companies/initech/insights")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAnalyticsController_GetOptions(t *testing.T) {
	svc := &fakeAnalyticsService{options: []dto.Option{{ID: "berlin", Name: "Berlin", Country: "DE"}}}
	r := newAnalyticsRouter(svc)

	w := serve(r, "/analytics/options/cities?countryCodes=DE&facultyIds=f1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cities", svc.lastDimension)
	assert.Equal(t, []string{"DE"}, svc.lastOptions.CountryCodes)
	assert.Equal(t, []string{"f1"}, svc.lastOptions.FacultyIDs)

	var body struct {
		Data []dto.Option `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, svc.options, body.Data)

	w = serve(r, "/analytics/options/cities?countryCodes=Germany")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	svc.err = fmt.Errorf("%w: \"planets\"", apperrors.ErrUnknownDimension)
	w = serve(r, "/analytics/options/planets")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func TestHealthController(t *testing.T) {
	for name, tc := range map[string]struct {
		db     Pinger
		status int
		dbStat string
	}{
		"memory": {nil, http.StatusOK, "memory"},
		"up":     {fakePinger{}, http.StatusOK, "up"},
		"down":   {fakePinger{err: errors.New("dial tcp: refused")}, http.StatusServiceUnavailable, "down"},
	} {
		t.Run(name, func(t *testing.T) {
			r := gin.New()
			h := NewHealthController(tc.db)
			r.GET("/health", h.Health)
			r.GET("/ping", h.Ping)

			w := serve(r, "/health")
			assert.Equal(t, tc.status, w.Code)
			var body struct {
				Data dto.HealthResponse `json:"data"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.dbStat, body.Data.Database)

			w = serve(r, "/ping")
			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
		})
	}
}
