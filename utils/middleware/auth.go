package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/sahilchouksey/college-directory/utils/auth"
	"github.com/sahilchouksey/college-directory/utils/response"
)

const principalKey = "principal"

// AuthMiddleware guards the back-office routes with a bearer credential
type AuthMiddleware struct {
	verifier auth.CredentialVerifier
	log      zerolog.Logger
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(verifier auth.CredentialVerifier, log zerolog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		log:      log,
	}
}

// RequireAdmin rejects the request with 401 unless it carries a bearer token
// the verifier accepts. Nothing downstream runs on rejection.
func (m *AuthMiddleware) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "Missing authorization token")
		}

		// Extract token from "Bearer <token>"
		token, ok := bearerToken(authHeader)
		if !ok {
			return response.Unauthorized(c, "Invalid authorization format")
		}

		principal, err := m.verifier.Verify(c.UserContext(), token)
		if err != nil {
			m.log.Debug().Err(err).Str("ip", c.IP()).Msg("bearer token rejected")
			if errors.Is(err, auth.ErrExpiredToken) {
				return response.Unauthorized(c, "Token has expired")
			}
			return response.Unauthorized(c, "Invalid token")
		}

		c.Locals(principalKey, principal)

		return c.Next()
	}
}

// bearerToken splits "Bearer <token>". The token must be non-empty and
// contain no further spaces.
func bearerToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// GetPrincipal extracts the authenticated caller from context
func GetPrincipal(c *fiber.Ctx) (*auth.Principal, bool) {
	principal := c.Locals(principalKey)
	if principal == nil {
		return nil, false
	}
	p, ok := principal.(*auth.Principal)
	return p, ok
}
