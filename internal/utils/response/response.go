// Package response provides fiber JSON response helpers and the
// translation of domain error kinds into HTTP status codes.
package response

import (
	"coinvault/internal/errors"
	"coinvault/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

func Success(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{"data": data})
}

func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": data})
}

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// DomainError maps a service error onto the HTTP surface: validation
// 400, not found 404, security 403, state 409. Referential integrity
// failures from the store surface as 409; anything else is a 500.
func DomainError(c *fiber.Ctx, err error) error {
	switch errors.KindOf(err) {
	case errors.KindValidation:
		return Error(c, fiber.StatusBadRequest, err.Error())
	case errors.KindNotFound:
		return Error(c, fiber.StatusNotFound, err.Error())
	case errors.KindSecurity:
		return Error(c, fiber.StatusForbidden, err.Error())
	case errors.KindState:
		return Error(c, fiber.StatusConflict, err.Error())
	}
	if errors.Is(err, repositories.ErrCryptocurrencyInUse) {
		return Error(c, fiber.StatusConflict, err.Error())
	}
	return Error(c, fiber.StatusInternalServerError, "internal server error")
}
