package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/sahilchouksey/college-directory/utils/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminAuditLog(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	app := fiber.New()
	app.Delete("/admin/colleges/:id",
		NewAuthMiddleware(auth.PresenceVerifier{}, zerolog.Nop()).RequireAdmin(),
		AdminAuditLog(log, "college_delete", "colleges"),
		func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) },
	)

	req := httptest.NewRequest(http.MethodDelete, "/admin/colleges/7", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "college_delete", entry["audit"])
	assert.Equal(t, "colleges", entry["resource"])
	assert.Equal(t, "7", entry["resource_id"])
	assert.Equal(t, "bearer", entry["principal"])
	assert.Equal(t, float64(http.StatusOK), entry["status"])
	assert.Equal(t, "info", entry["level"])
}
