package utils

import (
	"context"
	"errors"
	"strconv"
	"time"

	fiber "github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/college-directory/database"
	"github.com/sahilchouksey/college-directory/utils/response"
)

// ErrInvalidID is returned by ParseID for non-numeric or zero ids
var ErrInvalidID = errors.New("invalid id")

// MakeHTTPHandleFunc adapts a store-aware handler to a fiber.Handler. Errors the
// handler returns unanswered become a 500 in the standard envelope.
func MakeHTTPHandleFunc(handler func(c *fiber.Ctx, store database.Storage) error, store database.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := handler(c, store); err != nil {
			return response.InternalServerError(c, err.Error())
		}
		return nil
	}
}

// ParseID reads a positive numeric route parameter
func ParseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(param), 10, strconv.IntSize)
	if err != nil || id == 0 {
		return 0, ErrInvalidID
	}
	return uint(id), nil
}

// RequestContext derives the deadline every store call of a request runs under
func RequestContext(c *fiber.Ctx, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.UserContext(), timeout)
}
