package api

import (
	"errors"

	"github.com/Iceton3000/cardinal-crm/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// serviceError maps the service error taxonomy onto HTTP statuses. A pending
// confirmation carries its action and affected count so the client can render
// the prompt before retrying with confirmed=true.
func serviceError(c *fiber.Ctx, err error) error {
	if confirmation, ok := services.AsConfirmationRequired(err); ok {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":    "confirmation required",
			"action":   confirmation.Action,
			"affected": confirmation.Affected,
		})
	}
	if validation, ok := services.AsValidationError(err); ok {
		return apiError(c, fiber.StatusBadRequest, validation.Message)
	}
	switch {
	case errors.Is(err, services.ErrPermissionDenied):
		return apiError(c, fiber.StatusForbidden, "permission denied")
	case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrWrongPIN):
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, services.ErrAlreadyBootstrapped):
		return apiError(c, fiber.StatusConflict, "an admin account already exists")
	case errors.Is(err, services.ErrEmptyImport):
		return apiError(c, fiber.StatusBadRequest, "the CSV contains no rows")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apiError(c, fiber.StatusNotFound, "not found")
	default:
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
}
