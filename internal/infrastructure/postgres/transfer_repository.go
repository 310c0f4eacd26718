package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/hotelstock-api/internal/domain/entity"
	"github.com/tu-usuario/hotelstock-api/internal/domain/repository"
)

var _ repository.PropertyTransferRepository = (*PropertyTransferRepo)(nil)

// PropertyTransferRepo traslados laterales completados entre propiedades.
// Solo lectura.
type PropertyTransferRepo struct {
	q Querier
}

func NewPropertyTransferRepository(q Querier) *PropertyTransferRepo {
	return &PropertyTransferRepo{q: q}
}

// ListCompletedFromSource traslados completados del producto con la propiedad
// consultada como origen, en [from, to). Incluye el nombre del destino.
func (r *PropertyTransferRepo) ListCompletedFromSource(ctx context.Context, sourcePropertyID, productID string, from, to time.Time) ([]*entity.PropertyTransfer, error) {
	query := `
		SELECT t.id, t.product_id, t.source_property_id, t.destination_property_id,
		       p.name, t.quantity, t.completed_at
		FROM property_transfers t
		JOIN properties p ON p.id = t.destination_property_id
		WHERE t.source_property_id = $1 AND t.product_id = $2
		  AND t.status = 'COMPLETED'
		  AND t.completed_at >= $3 AND t.completed_at < $4
		ORDER BY t.completed_at`
	rows, err := r.q.Query(ctx, query, sourcePropertyID, productID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()

	var transfers []*entity.PropertyTransfer
	for rows.Next() {
		var t entity.PropertyTransfer
		if err := rows.Scan(&t.ID, &t.ProductID, &t.SourcePropertyID, &t.DestinationPropertyID,
			&t.DestinationPropertyName, &t.Quantity, &t.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		transfers = append(transfers, &t)
	}
	return transfers, rows.Err()
}
