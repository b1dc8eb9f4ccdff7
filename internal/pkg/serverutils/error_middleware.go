// FILE: internal/pkg/serverutils/error_middleware.go
package serverutils

import (
	"errors"
	"time"

	"wp-troubleshooting-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts errors escaping the handlers into the
// JSON error envelope. Outside production the operator log line is included
// in the payload to ease debugging; in production only the safe message
// leaves the process.
func ErrorHandlerMiddleware(log logger.ILogger, isProd bool) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var srvErr *ServerError
		if !errors.As(err, &srvErr) {
			srvErr = NewInternalError(err.Error(), "An unexpected error occurred")
		}

		log.Error("http", "Request failed", map[string]interface{}{
			"method": ctx.Method(),
			"path":   ctx.Path(),
			"status": srvErr.Status,
			"error":  srvErr.Log,
		})

		payload := ErrorResponse(srvErr.Message)
		if !isProd {
			payload["log"] = srvErr.Log
		}

		return ctx.Status(srvErr.Status).JSON(payload)
	}
}

// RequestLoggerMiddleware logs every request with its latency.
func RequestLoggerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()

		log.Info("http", "Request handled", map[string]interface{}{
			"method":     ctx.Method(),
			"path":       ctx.Path(),
			"status":     ctx.Response().StatusCode(),
			"elapsed_ms": time.Since(start).Milliseconds(),
		})
		return err
	}
}
