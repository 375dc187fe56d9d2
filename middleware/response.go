package middleware

import "github.com/gofiber/fiber/v2"

// FieldError is a single validation violation, reported in request order.
type FieldError struct {
	Campo   string `json:"campo"`
	Mensaje string `json:"mensaje"`
}

// JsonError writes a failure response with a single error message.
func JsonError(c *fiber.Ctx, statusCode int, mensaje string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"error": mensaje,
	})
}

// ValidationErrorResponse writes a 400 with the ordered violation list.
func ValidationErrorResponse(c *fiber.Ctx, mensaje string, detalles []FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":    mensaje,
		"detalles": detalles,
	})
}
