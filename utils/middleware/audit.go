package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// AdminAuditLog writes one structured line per back-office mutation after the
// handler has answered.
func AdminAuditLog(log zerolog.Logger, action, resource string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		subject := ""
		if p, ok := GetPrincipal(c); ok {
			subject = p.Subject
		}

		event := log.Info()
		if status := c.Response().StatusCode(); status >= fiber.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("audit", action).
			Str("resource", resource).
			Str("resource_id", c.Params("id")).
			Str("principal", subject).
			Int("status", c.Response().StatusCode()).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Str("ip", c.IP()).
			Str("user_agent", c.Get(fiber.HeaderUserAgent)).
			Msg(c.Method() + " " + c.Path())

		return err
	}
}
