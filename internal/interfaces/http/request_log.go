package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/spares-manager/pkg/logger"
)

// RequestLog registra cada petición de la API con el device del token (vacío si la API está abierta).
// Va después de AuthMiddleware para que el device ya esté en Locals.
func RequestLog(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Debug().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Str("device", GetDevice(c)).
			Dur("latency", time.Since(start)).
			Msg("petición")
		return err
	}
}
