package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// WarehouseHandler peticiones HTTP de /warehouse (protegido).
type WarehouseHandler struct {
	uc *usecase.WarehouseUseCase
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(uc *usecase.WarehouseUseCase) *WarehouseHandler {
	return &WarehouseHandler{uc: uc}
}

// CreateList POST /warehouse/create-warehouse_list.
func (h *WarehouseHandler) CreateList(c *fiber.Ctx) error {
	var in dto.CreateWarehouseListRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.CreateList(GetUserID(c), in); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "lote de almacén creado"})
}

// UpdateList POST /warehouse/update-warehouse_list.
func (h *WarehouseHandler) UpdateList(c *fiber.Ctx) error {
	var in dto.UpdateWarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.Update(c.UserContext(), GetUserID(c), in); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(dto.MessageResponse{Message: "lote de almacén actualizado"})
}

// Fetch GET /warehouse/fetch-warehouse_list.
func (h *WarehouseHandler) Fetch(c *fiber.Ctx) error {
	out, err := h.uc.Fetch(GetProjectID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// FetchByIDs POST /warehouse/fetch-selected-ids.
func (h *WarehouseHandler) FetchByIDs(c *fiber.Ctx) error {
	var in dto.IDsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.FetchByIDs(GetProjectID(c), in.IDs)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID GET /warehouse/:id.
func (h *WarehouseHandler) GetByID(c *fiber.Ctx) error {
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

// Filter POST /warehouse/filter.
func (h *WarehouseHandler) Filter(c *fiber.Ctx) error {
	var in dto.WarehouseFilterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Filter(GetProjectID(c), in.FilterData)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
