package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/alumnisphere/internal/app/models/dto"
	"github.com/yigit/alumnisphere/internal/app/services"
	"github.com/yigit/alumnisphere/internal/middleware"
)

// AnalyticsController exposes the analytics engine over HTTP
type AnalyticsController struct {
	analyticsService services.AnalyticsService
}

// NewAnalyticsController creates a new AnalyticsController
func NewAnalyticsController(analyticsService services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{
		analyticsService: analyticsService,
	}
}

// GetAnalytics computes the dimensions named by the selector
// @Summary Get alumni analytics
// @Description Filters the alumni population and returns deduplicated, sorted and paginated aggregates for the selected dimensions. Trends cover a fixed 30 year horizon.
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param request query dto.AnalyticsQueryRequest false "Filters, sorting, pagination and trend options"
// @Success 200 {object} dto.APIResponse{data=dto.AnalyticsResponse} "Analytics computed successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 408 {object} dto.ErrorResponse "Request cancelled or timed out"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /analytics [get]
func (c *AnalyticsController) GetAnalytics(ctx *gin.Context) {
	var req dto.AnalyticsQueryRequest
	if !middleware.BindQuery(ctx, &req) {
		return
	}

	resp, err := c.analyticsService.GetAnalytics(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Analytics computed successfully"))
}

// GetDimension computes a single dimension group
// @Summary Get one analytics dimension
// @Description Same as /analytics with the selector taken from the path. geo returns countries and cities, education returns faculties, majors and graduation cohorts.
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param dimension path string true "Dimension" Enums(alumni, companies, geo, roles, seniority, industries, education)
// @Param request query dto.AnalyticsQueryRequest false "Filters, sorting, pagination and trend options"
// @Success 200 {object} dto.APIResponse{data=dto.AnalyticsResponse} "Analytics computed successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Unknown dimension"
// @Failure 408 {object} dto.ErrorResponse "Request cancelled or timed out"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /analytics/{dimension} [get]
func (c *AnalyticsController) GetDimension(ctx *gin.Context) {
	var req dto.AnalyticsQueryRequest
	if !middleware.BindQuery(ctx, &req) {
		return
	}

	resp, err := c.analyticsService.GetDimension(ctx.Request.Context(), ctx.Param("dimension"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Analytics computed successfully"))
}

// GetRoleHierarchy returns the ESCO ancestry of a classification code
// @Summary Get ESCO role hierarchy
// @Description Returns the classification chain of an ESCO code from the root group down to the code itself
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param code query string true "ESCO code" example(2512.4)
// @Success 200 {object} dto.APIResponse{data=[]dto.RoleHierarchyItem} "Hierarchy retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid ESCO code"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "ESCO code not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /analytics/roles/hierarchy [get]
func (c *AnalyticsController) GetRoleHierarchy(ctx *gin.Context) {
	var req dto.RoleHierarchyRequest
	if !middleware.BindQuery(ctx, &req) {
		return
	}

	items, err := c.analyticsService.GetRoleHierarchy(ctx.Request.Context(), req.Code)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(items, "Hierarchy retrieved successfully"))
}

// GetCompanyInsights summarises the alumni history at one company
// @Summary Get company insights
// @Description Returns company details with the number of alumni who worked there, the average time they stayed and the average career length of the alumni currently employed there
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param id path string true "Company ID"
// @Success 200 {object} dto.APIResponse{data=dto.CompanyInsights} "Company insights retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Failure 408 {object} dto.ErrorResponse "Request cancelled or timed out"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /analytics/companies/{id}/insights [get]
func (c *AnalyticsController) GetCompanyInsights(ctx *gin.Context) {
	insights, err := c.analyticsService.GetCompanyInsights(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(insights, "Company insights retrieved successfully"))
}

// GetOptions lists the values a filter input can take
// @Summary Get filter options
// @Description Returns id and name pairs sorted by name. Cities can be narrowed by country code and courses by faculty.
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Option list" Enums(companies, industries, countries, cities, roles, alumni, courses, faculties)
// @Param request query dto.OptionsRequest false "Narrowing filters"
// @Success 200 {object} dto.APIResponse{data=[]dto.Option} "Options retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Unknown option list"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /analytics/options/{kind} [get]
func (c *AnalyticsController) GetOptions(ctx *gin.Context) {
	var req dto.OptionsRequest
	if !middleware.BindQuery(ctx, &req) {
		return
	}

	options, err := c.analyticsService.GetOptions(ctx.Request.Context(), ctx.Param("kind"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(options, "Options retrieved successfully"))
}
