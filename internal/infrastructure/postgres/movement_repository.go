package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/hotelstock-api/internal/domain/entity"
	"github.com/tu-usuario/hotelstock-api/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

// InventoryMovementRepo consultas agregadas sobre el libro de movimientos de
// la bodega central. Solo lectura.
type InventoryMovementRepo struct {
	q Querier
}

func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

// SumNetChange suma firmada de quantity_change en [from, to).
func (r *InventoryMovementRepo) SumNetChange(ctx context.Context, propertyID, productID string, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(quantity_change), 0)
		FROM inventory_movements
		WHERE property_id = $1 AND product_id = $2
		  AND occurred_at >= $3 AND occurred_at < $4`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, propertyID, productID, from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum net change: %w", err)
	}
	return total, nil
}

// SumPurchases suma de entradas positivas de tipo compra en [from, to).
func (r *InventoryMovementRepo) SumPurchases(ctx context.Context, propertyID, productID string, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(quantity_change), 0)
		FROM inventory_movements
		WHERE property_id = $1 AND product_id = $2
		  AND movement_type = $3 AND quantity_change > 0
		  AND occurred_at >= $4 AND occurred_at < $5`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, propertyID, productID, entity.MovementTypePurchase, from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum purchases: %w", err)
	}
	return total, nil
}
