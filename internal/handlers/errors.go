package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// NewErrorHandler returns the central fiber error handler. Known data-layer
// errors map to their HTTP status; everything else is a 500 whose detail is
// only exposed outside production.
func NewErrorHandler(production bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
			message = fiberErr.Message
		case errors.Is(err, gorm.ErrRecordNotFound):
			code = fiber.StatusNotFound
			message = "Resource not found"
		case errors.Is(err, gorm.ErrDuplicatedKey):
			code = fiber.StatusConflict
			message = "Resource already exists"
		}

		if code == fiber.StatusInternalServerError {
			log.Printf("[HTTP] %s %s failed: %v", c.Method(), c.Path(), err)
		}

		payload := fiber.Map{
			"status":  "error",
			"message": message,
		}
		if code == fiber.StatusInternalServerError && !production {
			payload["detail"] = err.Error()
		}

		return c.Status(code).JSON(payload)
	}
}
