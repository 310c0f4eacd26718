package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/hotelstock-api/internal/application/report"
	"github.com/tu-usuario/hotelstock-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ReportUC     *report.UseCase
	PropertyRepo repository.PropertyRepository
	SectorRepo   repository.SectorRepository
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Reportes semanales
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, deps.SectorRepo)
	reports.Post("/weekly", reportHandler.Generate)
	reports.Get("/:id", reportHandler.GetByID)
	reports.Post("/:id/reconciliation", reportHandler.Reconciliation)
	reports.Get("/:id/reconciliation", reportHandler.ReconciliationView)
	reports.Put("/items/:id", reportHandler.UpdateItem)
	reports.Delete("/:id", reportHandler.Delete)

	// Catálogos (solo lectura)
	properties := api.Group("/properties")
	catalogHandler := NewCatalogHandler(deps.PropertyRepo, deps.SectorRepo)
	properties.Get("/", catalogHandler.ListProperties)
	properties.Get("/:id/sectors", catalogHandler.ListSectors)
}
