package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/pkg/jwt"
)

// Locals keys para la identidad del llamador en Fiber.
const (
	LocalUserID     = "user_id"
	LocalBusinesses = "businesses"
	LocalIsAdmin    = "is_admin"
)

// AuthMiddleware valida el Bearer Token JWT y carga UserID, negocios e is_admin
// a c.Locals. Los tokens los emite el sistema de usuarios externo.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalBusinesses, claims.Businesses)
		c.Locals(LocalIsAdmin, claims.IsAdmin)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetScope devuelve el ámbito de negocios del llamador.
func GetScope(c *fiber.Ctx) dto.Scope {
	scope := dto.Scope{}
	if v, ok := c.Locals(LocalBusinesses).([]string); ok {
		scope.Businesses = v
	}
	if v, ok := c.Locals(LocalIsAdmin).(bool); ok {
		scope.IsAdmin = v
	}
	return scope
}
