package app

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/sahilchouksey/college-directory/config"
	auth_handlers "github.com/sahilchouksey/college-directory/handlers/auth"
	"github.com/sahilchouksey/college-directory/router"
	"github.com/sahilchouksey/college-directory/utils/auth"
	"github.com/sahilchouksey/college-directory/utils/cache"
	"github.com/sahilchouksey/college-directory/utils/middleware"
)

// BuildDependencies wires the credential verifier, admin login and optional
// Redis lockout from cfg. cleanup releases the Redis connection.
func BuildDependencies(cfg *config.Config, log zerolog.Logger) (router.Dependencies, func(), error) {
	cleanup := func() {}

	deps := router.Dependencies{
		Log:            log,
		RequestTimeout: cfg.RequestTimeout,
		Security: middleware.SecurityConfig{
			AllowedOrigins:    cfg.AllowedOrigins,
			RateLimitRequests: cfg.RateLimitRequests,
			RateLimitWindow:   time.Minute,
		},
	}

	var jwtManager *auth.JWTManager
	if cfg.JWTSecret != "" {
		jwtManager = auth.NewJWTManager(auth.JWTConfig{
			Secret: cfg.JWTSecret,
			Expiry: cfg.JWTExpiry,
			Issuer: cfg.JWTIssuer,
		})
	}

	switch cfg.AuthMode {
	case config.AuthModeJWT:
		deps.Verifier = auth.NewJWTVerifier(jwtManager)
	default:
		deps.Verifier = auth.PresenceVerifier{}
		if cfg.IsProduction() {
			log.Warn().Msg("AUTH_MODE=presence accepts any bearer token on admin routes")
		}
	}

	if !cfg.LoginEnabled() {
		return deps, cleanup, nil
	}

	passwordHash := cfg.AdminPasswordHash
	if passwordHash == "" {
		hash, err := auth.HashPassword(cfg.AdminPassword)
		if err != nil {
			return deps, cleanup, fmt.Errorf("admin password: %w", err)
		}
		passwordHash = hash
	}

	// Initialize Redis cache for brute force protection
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedisCache(cfg.RedisURL)
		if err != nil {
			log.Warn().Err(err).Msg("failed to connect to Redis, brute force protection disabled")
		} else {
			deps.BruteForce = middleware.NewBruteForceProtection(redisCache, log)
			cleanup = func() {
				if err := redisCache.Close(); err != nil {
					log.Error().Err(err).Msg("closing redis failed")
				}
			}
		}
	}

	deps.Login = auth_handlers.NewAuthHandler(auth_handlers.AdminCredentials{
		Email:        cfg.AdminEmail,
		PasswordHash: passwordHash,
	}, jwtManager, deps.BruteForce, log)

	return deps, cleanup, nil
}
