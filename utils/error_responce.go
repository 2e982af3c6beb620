package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/localserve/marketplace-api/models"
)

// ErrorResponse is a struct for error response
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// StatusCode maps a domain error to its HTTP status. Unrecognized errors map
// to 500 so storage-layer details never decide the outward contract.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, models.ErrInvalidTransition):
		return fiber.StatusBadRequest
	case errors.Is(err, models.ErrInvalidCredentials), errors.Is(err, models.ErrUnauthenticated):
		return fiber.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, models.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, models.ErrDuplicateEmail):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// Fail writes a domain error as a JSON error response.
func Fail(c *fiber.Ctx, err error) error {
	code := StatusCode(err)
	msg := err.Error()
	if code == fiber.StatusInternalServerError {
		msg = "internal server error"
	}
	return c.Status(code).JSON(ErrorResponse{Message: msg})
}
