package handler

import (
	"errors"

	"go-pos-ws/internal/apperr"

	"github.com/gofiber/fiber/v2"
)

// respondErr maps the error taxonomy onto HTTP statuses. Anything outside
// the taxonomy is a transaction failure; the caller may safely retry since
// every core operation is atomic.
func respondErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, apperr.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, apperr.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "operation failed"})
	}
}
