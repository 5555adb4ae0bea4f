package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"employee-portal-backend/internal/apperror"
)

func statusForCode(code apperror.Code) int {
	switch code {
	case apperror.CodeUnauthenticated:
		return fiber.StatusUnauthorized
	case apperror.CodeForbidden:
		return fiber.StatusForbidden
	case apperror.CodeNotFound:
		return fiber.StatusNotFound
	case apperror.CodeValidation:
		return fiber.StatusBadRequest
	case apperror.CodeConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError maps a domain error to its HTTP status. Unexpected errors are
// logged and hidden behind a generic message.
func respondError(c *fiber.Ctx, err error) error {
	code := apperror.GetCode(err)
	message := err.Error()
	if code == apperror.CodeInternal {
		logrus.WithError(err).WithField("path", c.Path()).Error("request failed")
		message = "Internal Server Error"
	}
	return c.Status(statusForCode(code)).JSON(fiber.Map{"error": message})
}
