package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/yigit/alumnisphere/internal/app/analytics"
	appControllers "github.com/yigit/alumnisphere/internal/app/controllers"
	appMigrations "github.com/yigit/alumnisphere/internal/app/migrations"
	appRepos "github.com/yigit/alumnisphere/internal/app/repositories"
	appRoutes "github.com/yigit/alumnisphere/internal/app/routes"
	appServices "github.com/yigit/alumnisphere/internal/app/services"
	"github.com/yigit/alumnisphere/internal/config"
	"github.com/yigit/alumnisphere/internal/db"
	appMiddleware "github.com/yigit/alumnisphere/internal/middleware"
	pkgAuth "github.com/yigit/alumnisphere/internal/pkg/auth"
	"github.com/yigit/alumnisphere/internal/pkg/helpers"
	"github.com/yigit/alumnisphere/internal/pkg/logger"
	"github.com/yigit/alumnisphere/internal/pkg/metrics"
	"github.com/yigit/alumnisphere/internal/pkg/tracing"
	"github.com/yigit/alumnisphere/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Engine              *analytics.Engine
	AnalyticsService    appServices.AnalyticsService // Interface type
	AnalyticsController *appControllers.AnalyticsController
	HealthController    *appControllers.HealthController
	AuthMiddleware      *appMiddleware.AuthMiddleware // nil when auth is disabled
	RateLimiter         *appMiddleware.RateLimiter    // nil when rate limiting is disabled
	Repos               *appRepos.Repositories        // nil for the memory driver
	JWTService          *pkgAuth.JWTService
	Metrics             *metrics.Registry
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// CONFIG_PATH overrides the default configs/config.yaml.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = filepath.Join("configs", "config.yaml")
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:   logLevel,
		Pretty:  prettyLog,
		Service: cfg.Tracing.ServiceName,
	})

	lgr := logger.Get()
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupTracing installs the tracer provider. The returned function flushes it.
func SetupTracing(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) func(context.Context) error {
	return tracing.Init(ctx, lgr, tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.Tracing.ServiceName,
		Environment: cfg.Tracing.Environment,
		Version:     "1.0",
		SampleRatio: cfg.Tracing.SampleRatio,
	})
}

// SetupDatabase establishes the database connection and runs migrations.
// It returns nil for the memory driver.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	if cfg.Database.Driver == config.DriverMemory {
		lgr.Info().Msg("Using in-memory alumni snapshot, no database connection")
		return nil, nil
	}

	lgr.Info().Str("host", cfg.Database.Host).Str("dbname", cfg.Database.DBName).Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool, lgr)
	if dir := cfg.Database.MigrationsDir; dir != "" && isDir(dir) {
		err = migrator.MigrateFromDirectory(ctx, dir)
	} else {
		err = migrator.Migrate(ctx, appMigrations.Files)
	}
	if err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Seed.Enabled {
		ds := seed.Generate(cfg.Seed.Alumni, cfg.Seed.Random, time.Now().UTC())
		if err := seed.CreateDefaultData(ctx, database, ds, lgr); err != nil {
			// Log the error but don't fail the startup
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return database, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// EngineConfig maps the analytics section onto the engine configuration
func EngineConfig(cfg *config.Config) analytics.Config {
	return analytics.Config{
		CompileOptions: analytics.CompileOptions{
			HomeCountryCode:      strings.ToUpper(cfg.Analytics.HomeCountryCode),
			ResearchIndustries:   cfg.Analytics.ResearchIndustries,
			ResearchEscoPrefixes: cfg.Analytics.ResearchEscoPrefixes,
		},
		HorizonYears: cfg.Analytics.TrendHorizonYears,
		TrendWorkers: cfg.Analytics.TrendWorkers,
		RoleScope:    analytics.ParseRoleScope(cfg.Analytics.RoleScope),
	}
}

// BuildDependencies initializes the data source, services and controllers.
// database is nil for the memory driver.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger:  lgr,
		Metrics: metrics.DefaultRegistry(),
	}

	var source analytics.Source
	if database != nil {
		deps.Repos = appRepos.NewRepositories(database.Pool, deps.Metrics)
		source = deps.Repos.AlumniRepository
		deps.HealthController = appControllers.NewHealthController(database)
	} else {
		ds := seed.Generate(cfg.Seed.Alumni, cfg.Seed.Random, time.Now().UTC())
		source = analytics.NewMemorySource(ds.Alumni, ds.Classifications...)
		deps.HealthController = appControllers.NewHealthController(nil)
		lgr.Info().Int("alumni", len(ds.Alumni)).Msg("Generated in-memory alumni snapshot")
	}

	deps.Engine = analytics.NewEngine(source, EngineConfig(cfg), logger.Component("analytics"),
		analytics.WithRecorder(deps.Metrics),
	)

	deps.AnalyticsService = appServices.NewAnalyticsService(deps.Engine, appServices.AnalyticsSettings{
		DefaultLimit:       cfg.Analytics.DefaultLimit,
		MaxLimit:           cfg.Analytics.MaxLimit,
		DefaultGranularity: analytics.ParseGranularity(cfg.Analytics.DefaultGranularity),
		RequestTimeout:     cfg.Analytics.RequestTimeout,
	}, lgr)
	deps.AnalyticsController = appControllers.NewAnalyticsController(deps.AnalyticsService)

	if cfg.Auth.Enabled {
		deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
			SecretKey:   cfg.Auth.Secret,
			TokenIssuer: cfg.Auth.Issuer,
			Audience:    cfg.Auth.Audience,
			Leeway:      helpers.ParseDuration(cfg.Auth.Leeway, 30*time.Second),
		})
		deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)
	}

	if cfg.RateLimit.Enabled {
		deps.RateLimiter = appMiddleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, deps.Metrics)
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := appMiddleware.RegisterValidators(); err != nil {
		lgr.Error().Err(err).Msg("Failed to register custom validators")
	}

	router := gin.New()
	router.Use(
		appMiddleware.Recovery(),
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(),
	)
	if cfg.Tracing.Enabled {
		router.Use(otelgin.Middleware(cfg.Tracing.ServiceName))
	}
	router.Use(appMiddleware.Metrics(deps.Metrics))

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, appRoutes.RouterDeps{
		AnalyticsController: deps.AnalyticsController,
		HealthController:    deps.HealthController,
		AuthMiddleware:      deps.AuthMiddleware,
		RateLimiter:         deps.RateLimiter,
		MetricsHandler:      deps.Metrics.Handler(),
	})

	return router
}
