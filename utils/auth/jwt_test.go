package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(expiry time.Duration) *JWTManager {
	return NewJWTManager(JWTConfig{
		Secret: "unit-test-secret",
		Expiry: expiry,
		Issuer: "college-directory-api",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	manager := newTestManager(time.Hour)

	token, jti, err := manager.GenerateAccessToken("admin@example.com", RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, jti)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "admin@example.com", claims.Subject)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, jti, claims.ID)
}

func TestValidateTokenRejects(t *testing.T) {
	manager := newTestManager(time.Hour)
	token, _, err := manager.GenerateAccessToken("admin@example.com", RoleAdmin)
	require.NoError(t, err)

	t.Run("expired token", func(t *testing.T) {
		expired, _, err := newTestManager(-time.Minute).GenerateAccessToken("admin@example.com", RoleAdmin)
		require.NoError(t, err)

		_, err = manager.ValidateToken(expired)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("other secret", func(t *testing.T) {
		other := NewJWTManager(JWTConfig{Secret: "another", Expiry: time.Hour, Issuer: "college-directory-api"})
		_, err := other.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("other issuer", func(t *testing.T) {
		other := NewJWTManager(JWTConfig{Secret: "unit-test-secret", Expiry: time.Hour, Issuer: "someone-else"})
		_, err := other.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := manager.ValidateToken("mock-jwt-token-1712345678")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestVerifiers(t *testing.T) {
	ctx := context.Background()

	t.Run("presence accepts any non-empty token", func(t *testing.T) {
		principal, err := PresenceVerifier{}.Verify(ctx, "anything")
		require.NoError(t, err)
		assert.Equal(t, RoleAdmin, principal.Role)

		_, err = PresenceVerifier{}.Verify(ctx, "")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("jwt requires admin role", func(t *testing.T) {
		manager := newTestManager(time.Hour)
		verifier := NewJWTVerifier(manager)

		token, jti, err := manager.GenerateAccessToken("admin@example.com", RoleAdmin)
		require.NoError(t, err)
		principal, err := verifier.Verify(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", principal.Subject)
		assert.Equal(t, jti, principal.TokenID)

		editor, _, err := manager.GenerateAccessToken("editor@example.com", "editor")
		require.NoError(t, err)
		_, err = verifier.Verify(ctx, editor)
		assert.ErrorIs(t, err, ErrForbiddenRole)
	})
}

func TestPasswordHashing(t *testing.T) {
	_, err := HashPassword("short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	hash, err := HashPassword("password123")
	require.NoError(t, err)

	assert.NoError(t, VerifyPassword(hash, "password123"))
	assert.ErrorIs(t, VerifyPassword(hash, "password124"), ErrPasswordMismatch)
}
