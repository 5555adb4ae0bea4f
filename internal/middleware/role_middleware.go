package middleware

import (
	"github.com/gofiber/fiber/v2"

	"employee-portal-backend/internal/auth"
)

// Role gates a route to the given roles. The owner passes every gate.
func Role(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller := GetCaller(c)
		if caller.Owner {
			return c.Next()
		}

		for _, role := range allowedRoles {
			if auth.NormalizeRole(role) == caller.Role {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied for your role"})
	}
}
