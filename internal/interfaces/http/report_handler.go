package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/hotelstock-api/internal/application/dto"
	"github.com/tu-usuario/hotelstock-api/internal/application/report"
	"github.com/tu-usuario/hotelstock-api/internal/domain"
	"github.com/tu-usuario/hotelstock-api/internal/domain/repository"
)

// ReportHandler maneja las peticiones HTTP del reporte semanal.
type ReportHandler struct {
	uc         *report.UseCase
	sectorRepo repository.SectorRepository
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase, sectorRepo repository.SectorRepository) *ReportHandler {
	return &ReportHandler{uc: uc, sectorRepo: sectorRepo}
}

// Generate godoc
// @Summary      Generar reporte semanal
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateReportRequest  true  "Propiedad y fecha de inicio (YYYY-MM-DD)"
// @Success      200   {object}  dto.FullReportDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/reports/weekly [post]
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateReportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.PropertyID == "" || in.PeriodStart == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "property_id y period_start son requeridos"})
	}
	periodStart, err := time.Parse("2006-01-02", in.PeriodStart)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "period_start debe ser YYYY-MM-DD"})
	}
	out, err := h.uc.Generate(c.UserContext(), in.PropertyID, periodStart)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener reporte completo
// @Tags         reports
// @Produce      json
// @Param        id   path  string  true  "ID del reporte"
// @Success      200  {object}  dto.FullReportDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/{id} [get]
func (h *ReportHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetReportData(c.UserContext(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// Reconciliation godoc
// @Summary      Vista de conciliación (bodega o sector)
// @Description  Deriva la vista de conciliación del reporte. sector_id vacío devuelve la vista de bodega central; con sector_id se cruzan las entradas manuales del cuerpo contra las entregas del período.
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del reporte"
// @Param        body  body  dto.ReconciliationRequest  true  "Sector y entradas manuales"
// @Success      200   {object}  dto.ReconciliationViewDTO
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/reports/{id}/reconciliation [post]
func (h *ReportHandler) Reconciliation(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.ReconciliationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	full, err := h.uc.GetReportData(c.UserContext(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	if in.SectorID == "" {
		return c.JSON(report.BuildWarehouseView(full))
	}
	sector, err := h.sectorRepo.GetByID(c.UserContext(), in.SectorID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(report.BuildSectorView(full, sector, in.Entries))
}

// ReconciliationView godoc
// @Summary      Vista de conciliación sin entradas manuales
// @Description  Variante GET: igual que la versión POST pero sin cuerpo; las entradas manuales se asumen en cero.
// @Tags         reports
// @Produce      json
// @Param        id         path   string  true   "ID del reporte"
// @Param        sector_id  query  string  false  "Sector; vacío = vista de bodega"
// @Success      200  {object}  dto.ReconciliationViewDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/{id}/reconciliation [get]
func (h *ReportHandler) ReconciliationView(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	full, err := h.uc.GetReportData(c.UserContext(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	sectorID := c.Query("sector_id")
	if sectorID == "" {
		return c.JSON(report.BuildWarehouseView(full))
	}
	sector, err := h.sectorRepo.GetByID(c.UserContext(), sectorID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(report.BuildSectorView(full, sector, nil))
}

// UpdateItem godoc
// @Summary      Actualizar ventas y mermas de una fila
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la fila"
// @Param        body  body  dto.UpdateReportItemRequest  true  "Valores manuales"
// @Success      204   "Sin contenido"
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/reports/items/{id} [put]
func (h *ReportHandler) UpdateItem(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateReportItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateItem(c.UserContext(), id, in.Sales, in.Losses); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar reporte
// @Tags         reports
// @Param        id  path  string  true  "ID del reporte"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/{id} [delete]
func (h *ReportHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// errorResponse mapea errores de dominio a códigos HTTP.
func errorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidPeriod):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrReportAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
