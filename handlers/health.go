package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/college-directory/database"
	"github.com/sahilchouksey/college-directory/utils/response"
)

const healthCheckTimeout = 2 * time.Second

// HandleCheckHealth answers GET /ping with the store's reachability
func HandleCheckHealth(c *fiber.Ctx, store database.Storage) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
	defer cancel()

	if err := store.HealthCheck(ctx); err != nil {
		return response.ServiceUnavailable(c, "Database unreachable")
	}

	return c.JSON(fiber.Map{"status": "ok"})
}
