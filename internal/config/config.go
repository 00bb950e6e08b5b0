package config

import (
	"fmt"
	"os"
	"reflect"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Database drivers
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port            string        `yaml:"port" env:"SERVER_PORT"`
		Mode            string        `yaml:"mode" env:"SERVER_MODE"`
		ReadTimeout     time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout    time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
	} `yaml:"server"`

	Database struct {
		Driver          string `yaml:"driver" env:"DB_DRIVER"`
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		MigrationsDir   string `yaml:"migrations_dir" env:"DB_MIGRATIONS_DIR"`
	} `yaml:"database"`

	Auth struct {
		Enabled  bool   `yaml:"enabled" env:"AUTH_ENABLED"`
		Secret   string `yaml:"secret" env:"JWT_SECRET"`
		Issuer   string `yaml:"issuer" env:"JWT_ISSUER"`
		Audience string `yaml:"audience" env:"JWT_AUDIENCE"`
		Leeway   string `yaml:"leeway" env:"JWT_LEEWAY"`
	} `yaml:"auth"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Analytics struct {
		HomeCountryCode      string        `yaml:"home_country_code" env:"ANALYTICS_HOME_COUNTRY"`
		TrendHorizonYears    int           `yaml:"trend_horizon_years" env:"ANALYTICS_TREND_HORIZON_YEARS"`
		DefaultGranularity   string        `yaml:"default_granularity" env:"ANALYTICS_DEFAULT_GRANULARITY"`
		DefaultLimit         int           `yaml:"default_limit" env:"ANALYTICS_DEFAULT_LIMIT"`
		MaxLimit             int           `yaml:"max_limit" env:"ANALYTICS_MAX_LIMIT"`
		TrendWorkers         int           `yaml:"trend_workers" env:"ANALYTICS_TREND_WORKERS"`
		RoleScope            string        `yaml:"role_scope" env:"ANALYTICS_ROLE_SCOPE"`
		ResearchIndustries   []string      `yaml:"research_industries" env:"ANALYTICS_RESEARCH_INDUSTRIES"`
		ResearchEscoPrefixes []string      `yaml:"research_esco_prefixes" env:"ANALYTICS_RESEARCH_ESCO_PREFIXES"`
		RequestTimeout       time.Duration `yaml:"request_timeout" env:"ANALYTICS_REQUEST_TIMEOUT"`
	} `yaml:"analytics"`

	RateLimit struct {
		Enabled           bool `yaml:"enabled" env:"RATE_LIMIT_ENABLED"`
		RequestsPerMinute int  `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM"`
		Burst             int  `yaml:"burst" env:"RATE_LIMIT_BURST"`
	} `yaml:"rate_limit"`

	Tracing struct {
		Enabled     bool    `yaml:"enabled" env:"OTEL_ENABLED"`
		ServiceName string  `yaml:"service_name" env:"OTEL_SERVICE_NAME"`
		Environment string  `yaml:"environment" env:"OTEL_ENVIRONMENT"`
		SampleRatio float64 `yaml:"sample_ratio" env:"OTEL_SAMPLER_RATIO"`
	} `yaml:"tracing"`

	Seed struct {
		Enabled bool  `yaml:"enabled" env:"SEED_ENABLED"`
		Alumni  int   `yaml:"alumni" env:"SEED_ALUMNI"`
		Random  int64 `yaml:"random_seed" env:"SEED_RANDOM"`
	} `yaml:"seed"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.ReadTimeout = 10 * time.Second
	config.Server.WriteTimeout = 30 * time.Second
	config.Server.ShutdownTimeout = 10 * time.Second

	// Database defaults
	config.Database.Driver = DriverPostgres
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "alumnisphere"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"
	config.Database.MigrationsDir = "migrations"

	// Auth defaults
	config.Auth.Issuer = "alumnisphere"
	config.Auth.Leeway = "30s"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"

	// Analytics defaults
	config.Analytics.HomeCountryCode = "PT"
	config.Analytics.TrendHorizonYears = 30
	config.Analytics.DefaultGranularity = "yearly"
	config.Analytics.DefaultLimit = 10
	config.Analytics.MaxLimit = 100
	config.Analytics.TrendWorkers = 4
	config.Analytics.RoleScope = "alumni"
	config.Analytics.ResearchIndustries = []string{"Research Services", "Higher Education"}
	config.Analytics.ResearchEscoPrefixes = []string{"231", "2521"}
	config.Analytics.RequestTimeout = 30 * time.Second

	// Rate limit defaults
	config.RateLimit.Enabled = true
	config.RateLimit.RequestsPerMinute = 120
	config.RateLimit.Burst = 20

	// Tracing defaults
	config.Tracing.ServiceName = "alumnisphere"
	config.Tracing.Environment = "development"
	config.Tracing.SampleRatio = 0.1

	// Seed defaults
	config.Seed.Alumni = 200
	config.Seed.Random = 42
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return applyEnv(reflect.ValueOf(config).Elem(), "")
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	switch config.Database.Driver {
	case DriverPostgres:
		if config.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
			return fmt.Errorf("invalid database connection max lifetime: %w", err)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unsupported database driver %q", config.Database.Driver)
	}

	if config.Auth.Enabled && config.Auth.Secret == "" {
		return fmt.Errorf("JWT secret is required when auth is enabled")
	}
	if _, err := time.ParseDuration(config.Auth.Leeway); err != nil {
		return fmt.Errorf("invalid JWT leeway format: %w", err)
	}

	a := config.Analytics
	if len(a.HomeCountryCode) != 2 {
		return fmt.Errorf("analytics home country code must have two letters, got %q", a.HomeCountryCode)
	}
	if a.TrendHorizonYears < 1 {
		return fmt.Errorf("analytics trend horizon must be at least one year")
	}
	if !slices.Contains([]string{"monthly", "yearly"}, strings.ToLower(a.DefaultGranularity)) {
		return fmt.Errorf("analytics default granularity must be monthly or yearly, got %q", a.DefaultGranularity)
	}
	if a.DefaultLimit < 1 || a.MaxLimit < a.DefaultLimit {
		return fmt.Errorf("analytics limits must satisfy 1 <= default_limit <= max_limit")
	}
	if !slices.Contains([]string{"alumni", "window"}, strings.ToLower(a.RoleScope)) {
		return fmt.Errorf("analytics role scope must be alumni or window, got %q", a.RoleScope)
	}

	if config.RateLimit.Enabled && (config.RateLimit.RequestsPerMinute < 1 || config.RateLimit.Burst < 1) {
		return fmt.Errorf("rate limit requires positive requests_per_minute and burst")
	}

	if config.Tracing.SampleRatio < 0 || config.Tracing.SampleRatio > 1 {
		return fmt.Errorf("tracing sample ratio must be within [0, 1]")
	}

	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Mode, "production")
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}
