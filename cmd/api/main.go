package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/transfer"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/almacen-api/internal/interfaces/http"
	"github.com/jhoicas/almacen-api/pkg/config"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	tokenRepo := postgres.NewTokenRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	areaRepo := postgres.NewAreaRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	groupRepo := postgres.NewGroupRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	orderedRepo := postgres.NewOrderedRepository(pool)
	materialCodeRepo := postgres.NewMaterialCodeRepository(pool)

	// Motor de movimientos: toda transferencia de cantidades corre dentro
	// de una transacción con bloqueo de filas.
	txRunner := postgres.NewTxRunner(pool)
	policy := transfer.DefaultLogPolicy()
	if cfg.Movement.LogAll {
		policy = transfer.FullLogPolicy()
	}
	engine := transfer.NewEngine(txRunner, policy, log)

	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, engine)
	stockUC := usecase.NewStockUseCase(stockRepo, engine)
	areaUC := usecase.NewAreaUseCase(areaRepo, engine)
	adminUC := usecase.NewAdminUseCase(userRepo, projectRepo, groupRepo, categoryRepo)
	lookupUC := usecase.NewLookupUseCase(groupRepo, categoryRepo, companyRepo, orderedRepo, materialCodeRepo)
	authUC := auth.NewUseCase(userRepo, tokenRepo, auth.JWTConfig{
		Secret:        cfg.JWT.Secret,
		RefreshSecret: cfg.JWT.RefreshSecret,
		ExpMinutes:    cfg.JWT.ExpirationMinutes,
		RefreshDays:   cfg.JWT.RefreshExpDays,
		Issuer:        cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		WarehouseUC: warehouseUC,
		StockUC:     stockUC,
		AreaUC:      areaUC,
		AuthUC:      authUC,
		AdminUC:     adminUC,
		LookupUC:    lookupUC,
		UserRepo:    userRepo,
		JWTSecret:   cfg.JWT.Secret,
		RefreshDays: cfg.JWT.RefreshExpDays,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
