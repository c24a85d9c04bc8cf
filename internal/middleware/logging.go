package middleware

import (
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
)

// NewLogger builds the JSON structured logger the server and its commands
// share.
func NewLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// StructuredLogger returns a fiber middleware that logs each request through
// slog.
func StructuredLogger(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		fields := []any{
			slog.Int("status", c.Response().StatusCode()),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("ip", c.IP()),
			slog.Duration("latency", time.Since(start)),
		}
		if uid := c.Locals(UserIDKey); uid != nil {
			fields = append(fields, slog.Any("user_id", uid))
		}

		if err != nil {
			fields = append(fields, slog.String("error", err.Error()))
			logger.Error("request failed", fields...)
		} else {
			logger.Info("request processed", fields...)
		}

		return err
	}
}
