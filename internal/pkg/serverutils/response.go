// FILE: internal/pkg/serverutils/response.go
package serverutils

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// SuccessResponse wraps payload data in the standard success envelope.
func SuccessResponse(data interface{}) fiber.Map {
	return fiber.Map{
		"success": true,
		"data":    data,
	}
}

// ErrorResponse builds the standard error envelope. Every error leaving the
// API carries the boolean flag, a human-readable message and a timestamp.
func ErrorResponse(message string) fiber.Map {
	return fiber.Map{
		"error":     true,
		"message":   fiber.Map{"err": message},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
}
