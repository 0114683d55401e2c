package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	Health   HealthConfig
	Signup   SignupConfig
	Metrics  MetricsConfig
	Sentry   SentryConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines authentication parameters.
type AuthConfig struct {
	JWTSecret   string
	TokenTTLHrs int
	BcryptCost  int
}

// HealthConfig bounds dependency probes.
type HealthConfig struct {
	TimeoutSeconds int
}

// SignupConfig tunes the registration saga reconciler.
type SignupConfig struct {
	ReconcileIntervalSeconds int
	IntentMaxAgeSeconds      int
}

// MetricsConfig controls the prometheus listener.
type MetricsConfig struct {
	Addr string
}

// SentryConfig enables error reporting when a DSN is set.
type SentryConfig struct {
	DSN string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "leadsfynder-api"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("PORT", "8080"),
			Version:               getEnv("APP_VERSION", "1.0.0"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("DATABASE_URL"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:   getEnv("JWT_SECRET", "fallback-secret"),
			TokenTTLHrs: getEnvAsInt("JWT_TTL_HOURS", 168),
			BcryptCost:  getEnvAsInt("AUTH_BCRYPT_COST", 12),
		},
		Health: HealthConfig{
			TimeoutSeconds: getEnvAsInt("HEALTH_TIMEOUT_SECONDS", 2),
		},
		Signup: SignupConfig{
			ReconcileIntervalSeconds: getEnvAsInt("RECONCILE_INTERVAL_SECONDS", 300),
			IntentMaxAgeSeconds:      getEnvAsInt("SIGNUP_INTENT_MAX_AGE_SECONDS", 600),
		},
		Metrics: MetricsConfig{
			Addr: getEnv("METRICS_ADDR", ""),
		},
		Sentry: SentryConfig{
			DSN: os.Getenv("SENTRY_DSN"),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// Timeout returns the dependency probe timeout duration.
func (h HealthConfig) Timeout() time.Duration {
	if h.TimeoutSeconds <= 0 {
		return 2 * time.Second
	}
	return time.Duration(h.TimeoutSeconds) * time.Second
}

// TokenTTL returns the access token lifetime.
func (a AuthConfig) TokenTTL() time.Duration {
	if a.TokenTTLHrs <= 0 {
		return 168 * time.Hour
	}
	return time.Duration(a.TokenTTLHrs) * time.Hour
}

// ReconcileInterval returns the sweep cadence.
func (s SignupConfig) ReconcileInterval() time.Duration {
	if s.ReconcileIntervalSeconds <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(s.ReconcileIntervalSeconds) * time.Second
}

// IntentMaxAge returns how old a pending intent must be before it is swept.
func (s SignupConfig) IntentMaxAge() time.Duration {
	if s.IntentMaxAgeSeconds <= 0 {
		return 10 * time.Minute
	}
	return time.Duration(s.IntentMaxAgeSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
