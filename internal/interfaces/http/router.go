package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	WarehouseUC *usecase.WarehouseUseCase
	StockUC     *usecase.StockUseCase
	AreaUC      *usecase.AreaUseCase
	AuthUC      *auth.UseCase
	AdminUC     *usecase.AdminUseCase
	LookupUC    *usecase.LookupUseCase
	UserRepo    repository.UserRepository
	JWTSecret   string
	RefreshDays int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth (público)
	authGroup := app.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.RefreshDays)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := app.Group("/", AuthMiddleware(deps.JWTSecret))

	// Las mutaciones de inventario llevan además el guard de proyecto:
	// el rol del usuario decide sobre qué proyecto puede escribir.
	moveGuard := ProjectGuard(deps.UserRepo)

	// Warehouse (protegido)
	warehouse := protected.Group("/warehouse")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouse.Post("/create-warehouse_list", moveGuard, warehouseHandler.CreateList)
	warehouse.Post("/update-warehouse_list", moveGuard, warehouseHandler.UpdateList)
	warehouse.Get("/fetch-warehouse_list", warehouseHandler.Fetch)
	warehouse.Post("/fetch-selected-ids", warehouseHandler.FetchByIDs)
	warehouse.Post("/filter", warehouseHandler.Filter)
	warehouse.Get("/:id", warehouseHandler.GetByID)

	// Stock (protegido)
	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stock.Post("/add_stock_data_list", moveGuard, stockHandler.AddList)
	stock.Post("/return_to_warehouse", moveGuard, stockHandler.ReturnToWarehouse)
	stock.Get("/fetch-stock_list", stockHandler.Fetch)
	stock.Post("/fetch-selected-ids", stockHandler.FetchByIDs)
	stock.Post("/filter", stockHandler.Filter)
	stock.Get("/:id", stockHandler.GetByID)

	// Area (protegido)
	area := protected.Group("/area")
	areaHandler := NewAreaHandler(deps.AreaUC)
	area.Post("/add_area", moveGuard, areaHandler.Add)
	area.Post("/return_to_stock", moveGuard, areaHandler.ReturnToStock)
	area.Get("/fetch_area", areaHandler.Fetch)
	area.Post("/filter", areaHandler.Filter)
	area.Get("/:id", areaHandler.GetByID)

	// Admin (protegido, solo administradores)
	admin := protected.Group("/admin", AdminGuard(deps.UserRepo))
	adminHandler := NewAdminHandler(deps.AdminUC)
	admin.Post("/register", adminHandler.Register)
	admin.Post("/create-project", adminHandler.CreateProject)
	admin.Post("/create-group", adminHandler.CreateGroup)
	admin.Post("/create-category", adminHandler.CreateCategory)

	// Catálogos comunes (protegido; las altas exigen un rol reconocido)
	common := protected.Group("/common")
	commonHandler := NewCommonHandler(deps.LookupUC)
	common.Get("/fetch-groups", commonHandler.FetchGroups)
	common.Get("/fetch-categories", commonHandler.FetchCategories)
	common.Get("/fetch-companies", commonHandler.FetchCompanies)
	common.Get("/fetch-ordered", commonHandler.FetchOrdered)
	common.Get("/fetch-material_code", commonHandler.FetchMaterialCodes)
	createGuard := CommonGuard(deps.UserRepo)
	common.Post("/create-company", createGuard, commonHandler.CreateCompany)
	common.Post("/create-ordered", createGuard, commonHandler.CreateOrdered)
	common.Post("/create-material_code", createGuard, commonHandler.CreateMaterialCode)
}
