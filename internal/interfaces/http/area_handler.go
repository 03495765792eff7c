package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// AreaHandler peticiones HTTP de /area (protegido).
type AreaHandler struct {
	uc *usecase.AreaUseCase
}

// NewAreaHandler construye el handler.
func NewAreaHandler(uc *usecase.AreaUseCase) *AreaHandler {
	return &AreaHandler{uc: uc}
}

// Add POST /area/add_area.
func (h *AreaHandler) Add(c *fiber.Ctx) error {
	var in dto.AddAreaRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.Add(c.UserContext(), GetUserID(c), in); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "entrega a área confirmada"})
}

// ReturnToStock POST /area/return_to_stock.
func (h *AreaHandler) ReturnToStock(c *fiber.Ctx) error {
	var in dto.ReturnToStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.ReturnToStock(c.UserContext(), GetUserID(c), GetProjectID(c), in); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "devolución a stock confirmada"})
}

// Fetch GET /area/fetch_area.
func (h *AreaHandler) Fetch(c *fiber.Ctx) error {
	out, err := h.uc.Fetch(GetProjectID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID GET /area/:id.
func (h *AreaHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return detail(c, fiber.StatusBadRequest, "id inválido")
	}
	out, err := h.uc.GetByID(GetProjectID(c), int64(id))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Filter POST /area/filter.
func (h *AreaHandler) Filter(c *fiber.Ctx) error {
	var in dto.AreaFilterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Filter(GetProjectID(c), in.FilterData)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
