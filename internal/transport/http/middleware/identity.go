package middleware

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// CallerIDKey is the fiber locals key holding the authenticated caller id.
const CallerIDKey = "caller_id"

// Identity reads the caller identity set by the upstream authenticator.
// Token verification happens before this service; requests without an
// identity are rejected.
func Identity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		callerID := c.Get("X-User-Id")
		if callerID == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"error": fiber.Map{"code": "UNAUTHENTICATED", "message": "missing caller identity"},
			})
		}
		c.Locals(CallerIDKey, callerID)
		return c.Next()
	}
}

// CallerID returns the authenticated caller id from locals.
func CallerID(c *fiber.Ctx) string {
	id, _ := c.Locals(CallerIDKey).(string)
	return id
}
