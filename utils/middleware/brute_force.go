package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/sahilchouksey/college-directory/utils/response"
)

// AttemptStore is the slice of the Redis cache the lockout needs
type AttemptStore interface {
	Exists(ctx context.Context, key string) (bool, error)
	TTL(ctx context.Context, key string) (time.Duration, error)
	Increment(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, expiration time.Duration) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// BruteForceProtection locks out IPs after repeated failed admin logins.
// Every cache failure lets the request through.
type BruteForceProtection struct {
	store AttemptStore
	log   zerolog.Logger
}

// NewBruteForceProtection creates a new brute force protection instance
func NewBruteForceProtection(store AttemptStore, log zerolog.Logger) *BruteForceProtection {
	return &BruteForceProtection{
		store: store,
		log:   log,
	}
}

func attemptKey(ip string) string { return fmt.Sprintf("brute_force:attempts:%s", ip) }
func lockKey(ip string) string    { return fmt.Sprintf("brute_force:lock:%s", ip) }

// CheckAndRecordAttempt middleware checks if IP is locked out
func (b *BruteForceProtection) CheckAndRecordAttempt() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		key := lockKey(c.IP())

		locked, err := b.store.Exists(ctx, key)
		if err != nil {
			b.log.Warn().Err(err).Msg("brute force check unavailable")
			return c.Next()
		}

		if locked {
			// Get TTL for retry time
			ttl, _ := b.store.TTL(ctx, key)
			retryAfter := int(ttl.Seconds())
			if retryAfter <= 0 {
				retryAfter = 60
			}

			c.Set(fiber.HeaderRetryAfter, fmt.Sprintf("%d", retryAfter))
			return response.TooManyRequests(c, fmt.Sprintf("Too many failed attempts. Try again in %d seconds", retryAfter))
		}

		return c.Next()
	}
}

// lockoutFor maps the attempt count inside the window to a lock duration
func lockoutFor(attempts int64) time.Duration {
	switch {
	case attempts >= 25:
		return 24 * time.Hour
	case attempts >= 10:
		return time.Hour
	case attempts >= 5:
		return 2 * time.Minute
	default:
		return 0
	}
}

// RecordFailedAttempt records a failed login attempt and applies progressive lockouts
func (b *BruteForceProtection) RecordFailedAttempt(ctx context.Context, ip string) {
	attempts, err := b.store.Increment(ctx, attemptKey(ip))
	if err != nil {
		b.log.Warn().Err(err).Msg("unable to record failed login")
		return
	}

	// 15 minute window
	if attempts == 1 {
		_ = b.store.Expire(ctx, attemptKey(ip), 15*time.Minute)
	}

	lockDuration := lockoutFor(attempts)
	if lockDuration == 0 {
		return
	}

	if err := b.store.Set(ctx, lockKey(ip), "locked", lockDuration); err != nil {
		b.log.Warn().Err(err).Msg("unable to apply login lockout")
		return
	}
	b.log.Warn().Str("ip", ip).Int64("attempts", attempts).Dur("lockout", lockDuration).Msg("admin login locked out")
}

// RecordSuccessfulAttempt clears failed attempts on successful login
func (b *BruteForceProtection) RecordSuccessfulAttempt(ctx context.Context, ip string) {
	_ = b.store.Delete(ctx, attemptKey(ip), lockKey(ip))
}
