package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Los guards de rol cargan al usuario desde la BD en cada petición: un cambio
// de rol o de bandera admin surte efecto sin esperar a que expire el token.

// AdminGuard deja pasar solo a usuarios con is_admin.
func AdminGuard(users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := users.GetByID(GetUserID(c))
		if err != nil {
			return writeError(c, err)
		}
		if user == nil || !user.IsAdmin {
			return detail(c, fiber.StatusForbidden, "se requiere privilegio de administrador")
		}
		return c.Next()
	}
}

// CommonGuard exige un rol asignado reconocido; admin pasa siempre.
func CommonGuard(users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := users.GetByID(GetUserID(c))
		if err != nil {
			return writeError(c, err)
		}
		if user == nil {
			return detail(c, fiber.StatusNotFound, "usuario no encontrado")
		}
		if user.IsAdmin {
			return c.Next()
		}
		switch user.Role {
		case entity.RoleManager, entity.RoleHead, entity.RoleStaff, entity.RoleOperator:
			return c.Next()
		}
		return detail(c, fiber.StatusForbidden, "permisos insuficientes")
	}
}

// ProjectGuard autoriza mutaciones contra el project_id del body: admin pasa
// siempre, MANAGER opera sobre cualquier proyecto, HEAD/STAFF/OPERATOR solo
// sobre el suyo.
func ProjectGuard(users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body struct {
			ProjectID int64 `json:"project_id"`
		}
		if err := c.BodyParser(&body); err != nil {
			return badBody(c)
		}

		user, err := users.GetByID(GetUserID(c))
		if err != nil {
			return writeError(c, err)
		}
		if user == nil {
			return detail(c, fiber.StatusNotFound, "usuario no encontrado")
		}
		if user.IsAdmin {
			return c.Next()
		}
		switch user.Role {
		case entity.RoleManager:
			return c.Next()
		case entity.RoleHead, entity.RoleStaff, entity.RoleOperator:
			if user.ProjectID == body.ProjectID {
				return c.Next()
			}
		}
		return detail(c, fiber.StatusForbidden, "permisos insuficientes")
	}
}
