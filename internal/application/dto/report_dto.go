package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// GenerateReportRequest body para POST /api/reports/weekly.
// PeriodStart en formato YYYY-MM-DD; el período cubre siete días.
type GenerateReportRequest struct {
	PropertyID  string `json:"property_id"`
	PeriodStart string `json:"period_start"`
}

// SectorMovementDTO cantidad total entregada a un sector en el período.
type SectorMovementDTO struct {
	SectorID   string          `json:"sector_id"`
	SectorName string          `json:"sector_name"`
	Quantity   decimal.Decimal `json:"quantity"`
}

// TransferDTO cantidad total trasladada a otra propiedad en el período.
type TransferDTO struct {
	PropertyName string          `json:"property_name"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// ReportItemDTO fila de un producto en el reporte semanal.
// CalculatedFinalStock y Loss son derivados de la ecuación de bodega central;
// Sales y Losses son los valores editables ingresados manualmente.
type ReportItemDTO struct {
	ID                   string              `json:"id"`
	ProductID            string              `json:"product_id"`
	ProductName          string              `json:"product_name"`
	InitialStock         decimal.Decimal     `json:"initial_stock"`
	Purchases            decimal.Decimal     `json:"purchases"`
	Sales                decimal.Decimal     `json:"sales"`
	Losses               decimal.Decimal     `json:"losses"`
	FinalStock           decimal.Decimal     `json:"final_stock"`
	CalculatedFinalStock decimal.Decimal     `json:"calculated_final_stock"`
	Loss                 decimal.Decimal     `json:"loss"`
	ZeroFilled           bool                `json:"zero_filled,omitempty"`
	SectorMovements      []SectorMovementDTO `json:"sector_movements"`
	Transfers            []TransferDTO       `json:"transfers"`
}

// FullReportDTO reporte semanal completo, listo para presentación o export.
type FullReportDTO struct {
	ID          string          `json:"id"`
	PropertyID  string          `json:"property_id"`
	PeriodStart time.Time       `json:"period_start"`
	PeriodEnd   time.Time       `json:"period_end"`
	Reused      bool            `json:"reused"` // true si el período ya estaba generado
	Items       []ReportItemDTO `json:"items"`
}

// UpdateReportItemRequest body para PUT /api/reports/items/:id.
type UpdateReportItemRequest struct {
	Sales  decimal.Decimal `json:"sales"`
	Losses decimal.Decimal `json:"losses"`
}

// ManualEntryDTO valores ingresados manualmente para un producto en la vista
// de conciliación de un sector.
type ManualEntryDTO struct {
	ProductID    string          `json:"product_id"`
	InitialStock decimal.Decimal `json:"initial_stock"`
	Sales        decimal.Decimal `json:"sales"`
	Consumption  decimal.Decimal `json:"consumption"`
	CountedStock decimal.Decimal `json:"counted_stock"`
}

// ReconciliationRequest body para POST /api/reports/:id/reconciliation.
// SectorID vacío selecciona la vista de bodega central.
type ReconciliationRequest struct {
	SectorID string           `json:"sector_id"`
	Entries  []ManualEntryDTO `json:"entries"`
}

// ReconciliationRowDTO fila derivada de la vista de conciliación.
// En la vista de bodega Received es la suma de entregas a sectores y
// CountedStock el stock real; en vistas de sector Received es lo recibido
// desde la bodega y CountedStock el conteo físico manual.
type ReconciliationRowDTO struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	InitialStock decimal.Decimal `json:"initial_stock"`
	Purchases    decimal.Decimal `json:"purchases,omitempty"`
	Received     decimal.Decimal `json:"received"`
	Sales        decimal.Decimal `json:"sales"`
	Consumption  decimal.Decimal `json:"consumption"`
	CountedStock decimal.Decimal `json:"counted_stock"`
	Loss         decimal.Decimal `json:"loss"`
}

// ReconciliationViewDTO vista de conciliación derivada para bodega o sector.
type ReconciliationViewDTO struct {
	ReportID   string                 `json:"report_id"`
	View       string                 `json:"view"` // warehouse | sector
	SectorID   string                 `json:"sector_id,omitempty"`
	SectorName string                 `json:"sector_name,omitempty"`
	SectorKind string                 `json:"sector_kind,omitempty"`
	Rows       []ReconciliationRowDTO `json:"rows"`
}

// PropertyDTO propiedad del grupo (lectura de catálogo).
type PropertyDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SectorDTO sector de consumo de una propiedad (lectura de catálogo).
type SectorDTO struct {
	ID         string `json:"id"`
	PropertyID string `json:"property_id"`
	Name       string `json:"name"`
	Kind       string `json:"kind"`
}
