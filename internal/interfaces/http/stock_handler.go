package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// StockHandler peticiones HTTP de /stock (protegido).
type StockHandler struct {
	uc *usecase.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *usecase.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// AddList POST /stock/add_stock_data_list.
func (h *StockHandler) AddList(c *fiber.Ctx) error {
	var in dto.AddStockListRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.AddList(c.UserContext(), GetUserID(c), in); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "emisión a stock confirmada"})
}

// ReturnToWarehouse POST /stock/return_to_warehouse.
func (h *StockHandler) ReturnToWarehouse(c *fiber.Ctx) error {
	var in dto.ReturnToWarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.ReturnToWarehouse(c.UserContext(), GetUserID(c), in); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "devolución a almacén confirmada"})
}

// Fetch GET /stock/fetch-stock_list.
func (h *StockHandler) Fetch(c *fiber.Ctx) error {
	out, err := h.uc.Fetch(GetProjectID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// FetchByIDs POST /stock/fetch-selected-ids.
func (h *StockHandler) FetchByIDs(c *fiber.Ctx) error {
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

// GetByID GET /stock/:id.
func (h *StockHandler) GetByID(c *fiber.Ctx) error {
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

// Filter POST /stock/filter.
func (h *StockHandler) Filter(c *fiber.Ctx) error {
	var in dto.StockFilterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Filter(GetProjectID(c), in.FilterData)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
