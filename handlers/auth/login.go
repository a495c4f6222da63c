package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	authutil "github.com/sahilchouksey/college-directory/utils/auth"
	"github.com/sahilchouksey/college-directory/utils/middleware"
	"github.com/sahilchouksey/college-directory/utils/response"
	"github.com/sahilchouksey/college-directory/utils/validation"
)

const adminDisplayName = "Admin User"

// AdminCredentials is the single back-office account
type AdminCredentials struct {
	Email        string
	PasswordHash string
}

// AuthHandler issues admin bearer tokens
type AuthHandler struct {
	credentials          AdminCredentials
	jwtManager           *authutil.JWTManager
	bruteForceProtection *middleware.BruteForceProtection
	validator            *validation.Validator
	log                  zerolog.Logger
}

// NewAuthHandler creates a new auth handler. bruteForceProtection may be nil.
func NewAuthHandler(credentials AdminCredentials, jwtManager *authutil.JWTManager, bruteForceProtection *middleware.BruteForceProtection, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		credentials:          credentials,
		jwtManager:           jwtManager,
		bruteForceProtection: bruteForceProtection,
		validator:            validation.NewValidator(),
		log:                  log.With().Str("handler", "auth").Logger(),
	}
}

// LoginRequest represents an admin login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the public view of the admin account
type UserResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LoginResponse represents a successful login response
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expires_in"` // in seconds
	User      UserResponse `json:"user"`
}

// Login handles POST /admin/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		if failure, ok := validation.FirstFailure(err); ok {
			return response.ValidationError(c, failure.Message(), failure.Field)
		}
		return response.BadRequest(c, "Invalid request body")
	}

	ip := c.IP()
	ctx := c.UserContext()

	// bcrypt runs even for an unknown email so both failures cost the same
	passwordErr := authutil.VerifyPassword(h.credentials.PasswordHash, req.Password)
	if !strings.EqualFold(req.Email, h.credentials.Email) || passwordErr != nil {
		if h.bruteForceProtection != nil {
			h.bruteForceProtection.RecordFailedAttempt(ctx, ip)
		}
		h.log.Warn().Str("ip", ip).Msg("admin login failed")
		return response.Unauthorized(c, "Invalid email or password")
	}

	// Clear failed attempts on successful login
	if h.bruteForceProtection != nil {
		h.bruteForceProtection.RecordSuccessfulAttempt(ctx, ip)
	}

	token, jti, err := h.jwtManager.GenerateAccessToken(h.credentials.Email, authutil.RoleAdmin)
	if err != nil {
		h.log.Error().Err(err).Msg("token signing failed")
		return response.InternalServerError(c, "Failed to generate access token")
	}

	h.log.Info().Str("ip", ip).Str("jti", jti).Msg("admin logged in")

	return response.Success(c, LoginResponse{
		Token:     token,
		ExpiresIn: int(h.jwtManager.Expiry().Seconds()),
		User: UserResponse{
			Email: h.credentials.Email,
			Name:  adminDisplayName,
		},
	})
}
