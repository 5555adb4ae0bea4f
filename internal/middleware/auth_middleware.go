package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"employee-portal-backend/config"
	"employee-portal-backend/internal/auth"
)

const CallerKey = "caller"

// Auth resolves the session credential into a caller identity. The token is
// read from the session cookie first, then from the Authorization header.
func Auth(c *fiber.Ctx) error {
	tokenString := c.Cookies("token")
	if tokenString == "" {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized, token missing"})
		}
		tokenString = strings.TrimPrefix(authHeader, "Bearer ")
	}

	caller, err := auth.ParseToken(tokenString, config.JWTSecret())
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
	}

	c.Locals(CallerKey, caller)
	return c.Next()
}

// GetCaller pulls the identity stored by Auth out of the request context.
func GetCaller(c *fiber.Ctx) auth.Caller {
	caller, _ := c.Locals(CallerKey).(auth.Caller)
	return caller
}
