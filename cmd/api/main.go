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

	"github.com/tu-usuario/hotelstock-api/internal/application/report"
	"github.com/tu-usuario/hotelstock-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/hotelstock-api/internal/interfaces/http"
	"github.com/tu-usuario/hotelstock-api/pkg/config"
	"github.com/tu-usuario/hotelstock-api/pkg/logger"
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
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	propertyRepo := postgres.NewPropertyRepository(pool)
	sectorRepo := postgres.NewSectorRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	snapshotRepo := postgres.NewStockSnapshotRepository(pool)
	movementRepo := postgres.NewInventoryMovementRepository(pool)
	deliveryRepo := postgres.NewSectorDeliveryRepository(pool)
	transferRepo := postgres.NewPropertyTransferRepository(pool)
	reportRepo := postgres.NewWeeklyReportRepository(pool)

	resolver := report.NewSnapshotResolver(snapshotRepo, productRepo, movementRepo)
	aggregator := report.NewMovementAggregator(movementRepo, deliveryRepo, transferRepo, log)
	reportUC := report.NewUseCase(
		reportRepo, productRepo, propertyRepo,
		resolver, aggregator,
		report.Options{
			ChunkSize:  cfg.Report.ChunkSize,
			ChunkDelay: cfg.Report.ChunkDelay,
		},
		log,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "HotelStock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ReportUC:     reportUC,
		PropertyRepo: propertyRepo,
		SectorRepo:   sectorRepo,
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
