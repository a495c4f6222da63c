package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAppliesDefaults(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("DB_NAME", "colleges")

	cfg, err := Get()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, AuthModePresence, cfg.AuthMode)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Zero(t, cfg.RateLimitRequests)
	assert.False(t, cfg.LoginEnabled())
	assert.Contains(t, cfg.DSN(), "dbname=colleges")
}

func TestGetReadsEnvironment(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", "/tmp/colleges.db")
	t.Setenv("REQUEST_TIMEOUT", "3s")
	t.Setenv("AUTH_MODE", "jwt")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	t.Setenv("ADMIN_PASSWORD", "password123")

	cfg, err := Get()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "/tmp/colleges.db", cfg.DBPath)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, AuthModeJWT, cfg.AuthMode)
	assert.True(t, cfg.LoginEnabled())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{DBDriver: DriverSQLite, DBPath: "test.db"}
		cfg.applyDefaults()
		return cfg
	}

	require.NoError(t, valid().Validate())

	tests := map[string]func(*Config){
		"unknown driver":          func(c *Config) { c.DBDriver = "mysql" },
		"sqlite without path":     func(c *Config) { c.DBPath = "" },
		"unknown auth mode":       func(c *Config) { c.AuthMode = "oauth" },
		"jwt mode without secret": func(c *Config) { c.AuthMode = AuthModeJWT },
		"bad admin email":         func(c *Config) { c.AdminEmail = "not-an-email" },
		"port out of range":       func(c *Config) { c.Port = 70000 },
		"login without secret": func(c *Config) {
			c.AdminEmail = "admin@example.com"
			c.AdminPassword = "password123"
		},
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := valid()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
