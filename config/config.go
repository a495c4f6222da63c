package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Auth modes accepted by AUTH_MODE
const (
	AuthModePresence = "presence"
	AuthModeJWT      = "jwt"
)

// Database drivers accepted by DB_DRIVER
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// LoadENV loads variables from .env when GO_ENV is unset or "development".
// A missing .env file is not an error.
func LoadENV() error {
	goEnv := os.Getenv("GO_ENV")

	if goEnv == "" || goEnv == "development" {
		err := godotenv.Load()
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}

	return nil
}

// Config holds every runtime setting, mapped from flat environment variables
// (DB_HOST -> db_host).
type Config struct {
	GoEnv    string `koanf:"go_env"`
	Port     int    `koanf:"port" validate:"gte=1,lte=65535"`
	LogLevel string `koanf:"log_level" validate:"oneof=trace debug info warn error"`

	DBDriver       string `koanf:"db_driver" validate:"oneof=postgres sqlite"`
	DBHost         string `koanf:"db_host"`
	DBPort         string `koanf:"db_port"`
	DBUserName     string `koanf:"db_user_name"`
	DBPassword     string `koanf:"db_password"`
	DBName         string `koanf:"db_name" validate:"required_if=DBDriver postgres"`
	DBSSLMode      string `koanf:"db_ssl_mode"`
	DBPath         string `koanf:"db_path" validate:"required_if=DBDriver sqlite"`
	DBMaxOpenConns int    `koanf:"db_max_open_conns" validate:"gte=1"`
	DBMaxIdleConns int    `koanf:"db_max_idle_conns" validate:"gte=0"`

	RequestTimeout  time.Duration `koanf:"request_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	AllowedOrigins  string        `koanf:"allowed_origins"`
	// 0 disables the global limiter
	RateLimitRequests int `koanf:"rate_limit_requests" validate:"gte=0"`

	AuthMode          string        `koanf:"auth_mode" validate:"oneof=presence jwt"`
	JWTSecret         string        `koanf:"jwt_secret"`
	JWTIssuer         string        `koanf:"jwt_issuer"`
	JWTExpiry         time.Duration `koanf:"jwt_expiry" validate:"gt=0"`
	AdminEmail        string        `koanf:"admin_email" validate:"omitempty,email"`
	AdminPassword     string        `koanf:"admin_password"`
	AdminPasswordHash string        `koanf:"admin_password_hash"`

	RedisURL string `koanf:"redis_url"`
}

// IsProduction reports whether GO_ENV is "production"
func (c *Config) IsProduction() bool {
	return c.GoEnv == "production"
}

// LoginEnabled reports whether admin credentials are configured
func (c *Config) LoginEnabled() bool {
	return c.AdminEmail != "" && (c.AdminPassword != "" || c.AdminPasswordHash != "")
}

// DSN builds the PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DBHost,
		c.DBUserName,
		c.DBPassword,
		c.DBName,
		c.DBPort,
		c.DBSSLMode,
	)
}

// Get reads the process environment into a validated Config
func Get() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
		if !c.IsProduction() {
			c.LogLevel = "debug"
		}
	}
	if c.DBDriver == "" {
		c.DBDriver = DriverPostgres
	}
	if c.DBHost == "" {
		c.DBHost = "localhost"
	}
	if c.DBPort == "" {
		c.DBPort = "5432"
	}
	if c.DBSSLMode == "" {
		c.DBSSLMode = "disable"
	}
	if c.DBMaxOpenConns == 0 {
		c.DBMaxOpenConns = 100
	}
	if c.DBMaxIdleConns == 0 {
		c.DBMaxIdleConns = 10
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = 10 * time.Second
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = 15 * time.Second
	}
	if c.AllowedOrigins == "" {
		c.AllowedOrigins = "http://localhost:3000,http://localhost:3001"
	}
	if c.AuthMode == "" {
		c.AuthMode = AuthModePresence
	}
	if c.JWTIssuer == "" {
		c.JWTIssuer = "college-directory-api"
	}
	if c.JWTExpiry == 0 {
		c.JWTExpiry = 24 * time.Hour
	}
}

// Validate checks struct rules plus the cross-field requirements
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if (c.AuthMode == AuthModeJWT || c.LoginEnabled()) && c.JWTSecret == "" {
		return errors.New("invalid config: JWT_SECRET is required when AUTH_MODE=jwt or admin login is configured")
	}

	return nil
}
