package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/hotelstock-api/internal/domain/entity"
)

// WeeklyReportRepository persistencia del almacén de reportes semanales.
// La unicidad por (property_id, period_start, period_end) la garantiza un
// constraint en la BD; GetOrCreate trata la violación como "ya existe".
type WeeklyReportRepository interface {
	// GetOrCreate devuelve el reporte del período, creándolo si no existe.
	// isNew indica si esta llamada lo insertó.
	GetOrCreate(ctx context.Context, propertyID string, periodStart, periodEnd time.Time) (report *entity.WeeklyReport, isNew bool, err error)
	GetByID(ctx context.Context, id string) (*entity.WeeklyReport, error)

	// BulkInsertItems inserta todas las filas del reporte en una sola operación
	// y deja los IDs generados en los items recibidos.
	BulkInsertItems(ctx context.Context, items []*entity.WeeklyReportItem) error
	ListItems(ctx context.Context, reportID string) ([]*entity.WeeklyReportItem, error)

	// Registros hijos agregados (append-only), insertados en lote tras las filas.
	BulkInsertSectorMovements(ctx context.Context, records []*entity.SectorMovementRecord) error
	BulkInsertTransfers(ctx context.Context, records []*entity.TransferRecord) error
	ListSectorMovements(ctx context.Context, reportID string) ([]*entity.SectorMovementRecord, error)
	ListTransfers(ctx context.Context, reportID string) ([]*entity.TransferRecord, error)

	// UpdateItem fija los valores ingresados manualmente de una fila.
	UpdateItem(ctx context.Context, itemID string, sales, losses decimal.Decimal) error

	// Delete elimina el reporte con sus filas y registros hijos en una sola
	// transacción (sin estados intermedios visibles).
	Delete(ctx context.Context, reportID string) error
}
