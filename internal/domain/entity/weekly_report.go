package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// WeeklyReport es una corrida de conciliación para una propiedad y un período
// semanal. Única por (property_id, period_start, period_end): regenerar un
// período existente reutiliza el reporte, nunca lo duplica.
type WeeklyReport struct {
	ID          string
	PropertyID  string
	PeriodStart time.Time
	PeriodEnd   time.Time
	CreatedAt   time.Time
}

// WeeklyReportItem es la fila de un producto dentro de un reporte.
// Sales y Losses nacen en cero y se completan después con entrada manual;
// ZeroFilled marca filas sustituidas por ceros ante una falla blanda de consulta.
type WeeklyReportItem struct {
	ID           string
	ReportID     string
	ProductID    string
	ProductName  string
	InitialStock decimal.Decimal
	Purchases    decimal.Decimal
	Sales        decimal.Decimal
	Losses       decimal.Decimal
	FinalStock   decimal.Decimal // stock actual al momento de generar
	ZeroFilled   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SectorMovements total entregado a sectores para la fila (suma de sus registros).
// Lo calcula el agregador al construir la fila; en lectura se reconstruye
// desde los SectorMovementRecord hijos.

// SectorMovementRecord movimiento agregado de la fila hacia un sector
// (cantidad total del período, por nombre de sector). Append-only.
type SectorMovementRecord struct {
	ID           string
	ReportItemID string
	SectorID     string
	SectorName   string
	Quantity     decimal.Decimal
	CreatedAt    time.Time
}

// TransferRecord traslado agregado de la fila hacia otra propiedad
// (cantidad total del período, por nombre de propiedad destino). Append-only.
type TransferRecord struct {
	ID           string
	ReportItemID string
	PropertyName string
	Quantity     decimal.Decimal
	CreatedAt    time.Time
}
