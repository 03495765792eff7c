package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// writeError traduce los sentinels de dominio al status HTTP y responde con
// el cuerpo uniforme {"detail": mensaje}. Los errores no reconocidos nunca
// filtran su texto interno al cliente.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInsufficientStock):
		return detail(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrUserNotFound):
		return detail(c, fiber.StatusUnauthorized, "credenciales inválidas")
	case errors.Is(err, domain.ErrForbidden):
		return detail(c, fiber.StatusForbidden, "operación no permitida para este proyecto")
	case errors.Is(err, domain.ErrNotFound):
		return detail(c, fiber.StatusNotFound, "recurso no encontrado")
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return detail(c, fiber.StatusConflict, "el email ya está registrado")
	case errors.Is(err, domain.ErrDuplicate):
		return detail(c, fiber.StatusConflict, "el registro ya existe")
	default:
		return detail(c, fiber.StatusInternalServerError, "error interno del servidor")
	}
}

// detail responde el cuerpo uniforme de error.
func detail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.DetailResponse{Detail: message})
}

// badBody respuesta estándar para JSON que no decodifica.
func badBody(c *fiber.Ctx) error {
	return detail(c, fiber.StatusBadRequest, "cuerpo de la petición inválido")
}
