package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/hotelstock-api/internal/domain/entity"
)

// InventoryMovementRepository puerto de solo lectura sobre el libro de
// movimientos de la bodega central (fuente de verdad externa).
// Los rangos [from, to) son inclusivos en from y exclusivos en to.
type InventoryMovementRepository interface {
	// SumNetChange suma firmada de todos los movimientos del producto en la ventana.
	SumNetChange(ctx context.Context, propertyID, productID string, from, to time.Time) (decimal.Decimal, error)
	// SumPurchases suma de entradas positivas de tipo compra en la ventana.
	SumPurchases(ctx context.Context, propertyID, productID string, from, to time.Time) (decimal.Decimal, error)
}

// SectorDeliveryRepository requisiciones completadas hacia sectores.
type SectorDeliveryRepository interface {
	// ListCompletedForProduct devuelve las entregas completadas atribuibles al
	// producto en la ventana: las solicitadas como productID sin sustitución y
	// las que lo registran como producto sustituto.
	ListCompletedForProduct(ctx context.Context, propertyID, productID string, from, to time.Time) ([]*entity.SectorDelivery, error)
}

// PropertyTransferRepository traslados laterales completados entre propiedades.
type PropertyTransferRepository interface {
	// ListCompletedFromSource devuelve los traslados completados del producto con
	// la propiedad consultada como origen, en la ventana.
	ListCompletedFromSource(ctx context.Context, sourcePropertyID, productID string, from, to time.Time) ([]*entity.PropertyTransfer, error)
}
