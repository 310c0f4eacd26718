package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/hotelstock-api/internal/domain/entity"
	"github.com/tu-usuario/hotelstock-api/internal/domain/repository"
)

var _ repository.SectorDeliveryRepository = (*SectorDeliveryRepo)(nil)

// SectorDeliveryRepo requisiciones completadas hacia sectores. Solo lectura.
type SectorDeliveryRepo struct {
	q Querier
}

func NewSectorDeliveryRepository(q Querier) *SectorDeliveryRepo {
	return &SectorDeliveryRepo{q: q}
}

// ListCompletedForProduct entrega las requisiciones completadas del período
// atribuibles al producto: las pedidas como él sin sustitución más las que lo
// registran como sustituto. El JOIN trae el nombre del sector para agrupar
// sin viajes extra.
func (r *SectorDeliveryRepo) ListCompletedForProduct(ctx context.Context, propertyID, productID string, from, to time.Time) ([]*entity.SectorDelivery, error) {
	query := `
		SELECT d.id, d.property_id, d.product_id, COALESCE(d.substituted_product_id, ''),
		       d.sector_id, s.name, d.quantity, d.completed_at
		FROM sector_deliveries d
		JOIN sectors s ON s.id = d.sector_id
		WHERE d.property_id = $1
		  AND d.status = 'COMPLETED'
		  AND d.completed_at >= $2 AND d.completed_at < $3
		  AND (
		        (d.product_id = $4 AND (d.substituted_product_id IS NULL OR d.substituted_product_id = ''))
		     OR d.substituted_product_id = $4
		  )
		ORDER BY d.completed_at`
	rows, err := r.q.Query(ctx, query, propertyID, from, to, productID)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	defer rows.Close()

	var deliveries []*entity.SectorDelivery
	for rows.Next() {
		var d entity.SectorDelivery
		if err := rows.Scan(&d.ID, &d.PropertyID, &d.ProductID, &d.SubstitutedProductID,
			&d.SectorID, &d.SectorName, &d.Quantity, &d.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan delivery: %w", err)
		}
		deliveries = append(deliveries, &d)
	}
	return deliveries, rows.Err()
}
