package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/pkg/jwt"
)

// Locals keys para los datos del caller en Fiber.
const (
	LocalUserID    = "user_id"
	LocalEmail     = "email"
	LocalProjectID = "project_id"
)

// AuthMiddleware valida el Bearer Token de acceso y deja el caller
// (user_id, email, project_id) en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return detail(c, fiber.StatusUnauthorized, "Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return detail(c, fiber.StatusUnauthorized, "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return detail(c, fiber.StatusUnauthorized, "token vacío")
		}
		userID, email, projectID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return detail(c, fiber.StatusUnauthorized, "token inválido o expirado")
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalEmail, email)
		c.Locals(LocalProjectID, projectID)
		return c.Next()
	}
}

// GetUserID devuelve el user id del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) int64 {
	v, _ := c.Locals(LocalUserID).(int64)
	return v
}

// GetProjectID devuelve el project id del token del caller.
func GetProjectID(c *fiber.Ctx) int64 {
	v, _ := c.Locals(LocalProjectID).(int64)
	return v
}
