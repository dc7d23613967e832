package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/spares-manager/internal/application/dto"
	"github.com/jhoicas/spares-manager/pkg/config"
	"github.com/jhoicas/spares-manager/pkg/jwt"
)

// LocalDevice key de c.Locals con el device del token.
const LocalDevice = "device"

// AuthMiddleware valida el Bearer Token cuando la API tiene secret configurado.
// Sin secret la API local queda abierta (un único usuario en el dispositivo).
func AuthMiddleware(cfg config.TokenConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !cfg.Enabled() {
			return c.Next()
		}
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		device, err := jwt.Parse(cfg.Secret, cfg.Issuer, strings.TrimSpace(parts[1]))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalDevice, device)
		return c.Next()
	}
}

// GetDevice devuelve el device del contexto (después del middleware).
func GetDevice(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalDevice).(string)
	return s
}
