package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// CommonHandler catálogos compartidos: grupos, categorías, compañías,
// solicitantes y códigos de material.
type CommonHandler struct {
	uc *usecase.LookupUseCase
}

// NewCommonHandler construye el handler.
func NewCommonHandler(uc *usecase.LookupUseCase) *CommonHandler {
	return &CommonHandler{uc: uc}
}

// FetchGroups GET /common/fetch-groups.
func (h *CommonHandler) FetchGroups(c *fiber.Ctx) error {
	out, err := h.uc.FetchGroups()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// FetchCategories GET /common/fetch-categories.
func (h *CommonHandler) FetchCategories(c *fiber.Ctx) error {
	out, err := h.uc.FetchCategories()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// FetchCompanies GET /common/fetch-companies.
func (h *CommonHandler) FetchCompanies(c *fiber.Ctx) error {
	out, err := h.uc.FetchCompanies()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// FetchOrdered GET /common/fetch-ordered.
func (h *CommonHandler) FetchOrdered(c *fiber.Ctx) error {
	out, err := h.uc.FetchOrdered()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// FetchMaterialCodes GET /common/fetch-material_code.
func (h *CommonHandler) FetchMaterialCodes(c *fiber.Ctx) error {
	out, err := h.uc.FetchMaterialCodes()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateCompany POST /common/create-company.
func (h *CommonHandler) CreateCompany(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateCompany(GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateOrdered POST /common/create-ordered.
func (h *CommonHandler) CreateOrdered(c *fiber.Ctx) error {
	var in dto.CreateOrderedRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateOrdered(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateMaterialCode POST /common/create-material_code.
func (h *CommonHandler) CreateMaterialCode(c *fiber.Ctx) error {
	var in dto.CreateMaterialCodeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateMaterialCode(GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
