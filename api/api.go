package api

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/sahilchouksey/college-directory/utils/response"
)

type APIServer struct {
	app           *fiber.App
	listenAddress string
	log           zerolog.Logger
}

func NewAPIServer(listenAddress string, log zerolog.Logger) *APIServer {
	return &APIServer{
		app: fiber.New(fiber.Config{
			AppName:               "college-directory-api",
			ErrorHandler:          ErrorHandler(log),
			ReadTimeout:           15 * time.Second,
			WriteTimeout:          15 * time.Second,
			IdleTimeout:           60 * time.Second,
			DisableStartupMessage: true,
		}),
		listenAddress: listenAddress,
		log:           log,
	}
}

func (s *APIServer) GetEngine() *fiber.App {
	return s.app
}

func (s *APIServer) Run() error {
	s.log.Info().Str("address", s.listenAddress).Msg("starting API server")

	return s.app.Listen(s.listenAddress)
}

// Shutdown stops accepting connections and waits for in-flight requests
func (s *APIServer) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("shutting down API server")

	return s.app.ShutdownWithContext(ctx)
}

// ErrorHandler renders errors no handler answered in the response envelope
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := "Internal server error"

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
			message = fiberErr.Message
		}

		if status >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("unhandled error")
		}

		return response.Error(c, status, message, errorCode(status))
	}
}

func errorCode(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	case fiber.StatusUnprocessableEntity:
		return "UNPROCESSABLE_ENTITY"
	case fiber.StatusTooManyRequests:
		return "TOO_MANY_REQUESTS"
	case fiber.StatusServiceUnavailable:
		return "SERVICE_UNAVAILABLE"
	}
	if status >= fiber.StatusInternalServerError {
		return "INTERNAL_ERROR"
	}
	return "REQUEST_ERROR"
}
