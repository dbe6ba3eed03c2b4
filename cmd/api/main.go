package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Bodega-api/internal/application/asset"
	"github.com/jhoicas/Bodega-api/internal/application/batch"
	"github.com/jhoicas/Bodega-api/internal/application/report"
	"github.com/jhoicas/Bodega-api/internal/application/stock"
	"github.com/jhoicas/Bodega-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Bodega-api/internal/interfaces/http"
	"github.com/jhoicas/Bodega-api/pkg/config"
	"github.com/jhoicas/Bodega-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migración del esquema")
	}

	productRepo := postgres.NewProductRepository(pool)
	deliveryRepo := postgres.NewDeliveryEventRepository(pool)
	withdrawalRepo := postgres.NewWithdrawalEventRepository(pool)
	lotRepo := postgres.NewExpiryLotRepository(pool)
	assetRepo := postgres.NewAssetRepository(pool)
	statusRepo := postgres.NewStatusAllocationRepository(pool)
	acqRepo := postgres.NewAcquisitionLotRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := stock.NewProductUseCase(productRepo)
	stockUC := stock.NewLedgerUseCase(productRepo, deliveryRepo, withdrawalRepo, stockRepo)
	allocatorUC := batch.NewAllocatorUseCase(txRunner, productRepo, deliveryRepo, lotRepo)
	assetUC := asset.NewLedgerUseCase(txRunner, assetRepo, statusRepo, acqRepo)
	reportUC := report.NewAggregatorUseCase(reportRepo, stockRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Bodega API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		StockUC:     stockUC,
		AllocatorUC: allocatorUC,
		AssetUC:     assetUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
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
