package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/hotelstock-api/internal/domain/entity"
	"github.com/tu-usuario/hotelstock-api/internal/domain/repository"
)

var _ repository.StockSnapshotRepository = (*StockSnapshotRepo)(nil)

// StockSnapshotRepo lectura de los conteos completos persistidos por el job
// de snapshots (cabecera + filas por producto).
type StockSnapshotRepo struct {
	q Querier
}

// NewStockSnapshotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockSnapshotRepository(q Querier) *StockSnapshotRepo {
	return &StockSnapshotRepo{q: q}
}

// GetLatestAtOrBefore devuelve el snapshot más reciente de la propiedad con
// fecha <= date (con sus cantidades por producto), o nil si no hay ninguno.
func (r *StockSnapshotRepo) GetLatestAtOrBefore(ctx context.Context, propertyID string, date time.Time) (*entity.StockSnapshot, error) {
	query := `
		SELECT id, property_id, date, created_at
		FROM stock_snapshots
		WHERE property_id = $1 AND date <= $2
		ORDER BY date DESC
		LIMIT 1`
	var s entity.StockSnapshot
	err := r.q.QueryRow(ctx, query, propertyID, date).Scan(&s.ID, &s.PropertyID, &s.Date, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get snapshot: %w", err)
	}

	rows, err := r.q.Query(ctx, `SELECT product_id, quantity FROM stock_snapshot_items WHERE snapshot_id = $1`, s.ID)
	if err != nil {
		return nil, fmt.Errorf("get snapshot items: %w", err)
	}
	defer rows.Close()

	s.Quantities = make(map[string]decimal.Decimal)
	for rows.Next() {
		var productID string
		var qty decimal.Decimal
		if err := rows.Scan(&productID, &qty); err != nil {
			return nil, fmt.Errorf("scan snapshot item: %w", err)
		}
		s.Quantities[productID] = qty
	}
	return &s, rows.Err()
}
