package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/alumnisphere/internal/app/controllers"
	"github.com/yigit/alumnisphere/internal/middleware"
)

// RouterDeps carries what SetupRouter mounts. AuthMiddleware and RateLimiter
// are optional; nil disables them.
type RouterDeps struct {
	AnalyticsController *controllers.AnalyticsController
	HealthController    *controllers.HealthController
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimiter         *middleware.RateLimiter
	MetricsHandler      http.Handler
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, deps RouterDeps) {
	router.GET("/health", deps.HealthController.Health)
	router.GET("/ping", deps.HealthController.Ping)
	if deps.MetricsHandler != nil {
		router.GET("/metrics", gin.WrapH(deps.MetricsHandler))
	}

	// API version group
	v1 := router.Group("/api/v1")

	analytics := v1.Group("/analytics")
	if deps.AuthMiddleware != nil {
		analytics.Use(deps.AuthMiddleware.JWTAuth())
	}
	if deps.RateLimiter != nil {
		analytics.Use(deps.RateLimiter.Middleware())
	}
	{
		analytics.GET("", deps.AnalyticsController.GetAnalytics)
		analytics.GET("/roles/hierarchy", deps.AnalyticsController.GetRoleHierarchy)
		analytics.GET("/companies/:id/insights", deps.AnalyticsController.GetCompanyInsights)
		analytics.GET("/options/:kind", deps.AnalyticsController.GetOptions)
		analytics.GET("/:dimension", deps.AnalyticsController.GetDimension)
	}
}
