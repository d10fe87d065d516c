package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all application configuration
type Config struct {
	Env      string         `yaml:"env" env:"APP_ENV" env-default:"development"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Auth     AuthConfig     `yaml:"auth"`
	Cache    CacheConfig    `yaml:"cache"`
	OTEL     OTELConfig     `yaml:"otel"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host         string        `yaml:"host" env:"SERVER_HOST" env-default:"0.0.0.0"`
	Port         int           `yaml:"port" env:"SERVER_PORT" env-default:"8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT" env-default:"15s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"15s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" env-default:"60s"`

	AllowedOrigins []string `yaml:"allowed_origins" env:"ALLOWED_ORIGINS" env-separator:"," env-default:"*"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host          string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port          int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User          string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password      string `yaml:"password" env:"DB_PASSWORD"`
	Database      string `yaml:"name" env:"DB_NAME" env-default:"hospital_services"`
	SSLMode       string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
	MigrateOnBoot bool   `yaml:"migrate_on_boot" env:"DB_MIGRATE_ON_BOOT" env-default:"false"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

// AuthConfig holds the settings used to verify bearer tokens
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-default:"change-me"`
	TokenTTL  time.Duration `yaml:"token_ttl" env:"AUTH_TOKEN_TTL" env-default:"24h"`

	// Writes allowed per caller per RateWindow; zero disables the limit
	RateLimit  int           `yaml:"rate_limit" env:"AUTH_RATE_LIMIT" env-default:"30"`
	RateWindow time.Duration `yaml:"rate_window" env:"AUTH_RATE_WINDOW" env-default:"1m"`
}

// CacheConfig holds HTTP response cache TTLs
type CacheConfig struct {
	Enabled    bool `yaml:"enabled" env:"CACHE_ENABLED" env-default:"true"`
	CatalogTTL int  `yaml:"catalog_ttl_seconds" env:"CACHE_CATALOG_TTL_SECONDS" env-default:"300"`
}

// OTELConfig holds OpenTelemetry configuration
type OTELConfig struct {
	ServiceName    string `yaml:"service_name" env:"OTEL_SERVICE_NAME" env-default:"hospital-services"`
	ServiceVersion string `yaml:"service_version" env:"OTEL_SERVICE_VERSION" env-default:"1.0.0"`
	Endpoint       string `yaml:"endpoint" env:"OTEL_ENDPOINT"`
	Enabled        bool   `yaml:"enabled" env:"OTEL_ENABLED" env-default:"false"`
}

// Load loads configuration from the file named by CONFIG_PATH, if set,
// and from environment variables, which take precedence.
func Load() (*Config, error) {
	var cfg Config

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config from environment: %w", err)
	}

	return &cfg, nil
}

// IsDevelopment reports whether the service runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// DatabaseDSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// MigrationURL returns the postgres:// URL form used by the migrator
func (c *DatabaseConfig) MigrationURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, c.SSLMode,
	)
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Addr returns the HTTP listen address
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
