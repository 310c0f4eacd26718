package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/hotelstock-api/internal/domain/reconciliation"
	"github.com/tu-usuario/hotelstock-api/internal/domain/repository"
)

// SnapshotResolver determina el stock de un producto al inicio del período:
// usa el snapshot persistido más reciente anterior o igual a la fecha, y si no
// hay entrada para el producto reconstruye hacia atrás desde el stock actual.
type SnapshotResolver struct {
	snapshotRepo repository.StockSnapshotRepository
	productRepo  repository.ProductRepository
	movementRepo repository.InventoryMovementRepository
}

// NewSnapshotResolver construye el resolutor.
func NewSnapshotResolver(
	snapshotRepo repository.StockSnapshotRepository,
	productRepo repository.ProductRepository,
	movementRepo repository.InventoryMovementRepository,
) *SnapshotResolver {
	return &SnapshotResolver{
		snapshotRepo: snapshotRepo,
		productRepo:  productRepo,
		movementRepo: movementRepo,
	}
}

// ResolveInitialStock devuelve el stock del producto al instante periodStart.
//  1. Si existe un snapshot con fecha <= periodStart y trae el producto, esa
//     cantidad manda, sin importar stock actual ni movimientos.
//  2. Si no, stock actual - movimientos netos en [periodStart, periodEnd+1d),
//     con piso en cero (un inicial negativo es artefacto de datos).
//
// Un error aquí se trata como falla blanda por producto: el caller registra la
// fila en cero y sigue con el resto del lote.
func (r *SnapshotResolver) ResolveInitialStock(
	ctx context.Context,
	propertyID, productID string,
	periodStart, periodEnd time.Time,
) (decimal.Decimal, error) {
	snapshot, err := r.snapshotRepo.GetLatestAtOrBefore(ctx, propertyID, periodStart)
	if err != nil {
		return decimal.Zero, fmt.Errorf("buscar snapshot: %w", err)
	}
	if snapshot != nil {
		if qty, ok := snapshot.QuantityFor(productID); ok {
			return qty, nil
		}
	}

	current, err := r.productRepo.GetCurrentStock(ctx, productID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("stock actual: %w", err)
	}
	// Límite superior un día después del fin del período para incluir los
	// movimientos del mismo día de cierre.
	net, err := r.movementRepo.SumNetChange(ctx, propertyID, productID, periodStart, periodEnd.AddDate(0, 0, 1))
	if err != nil {
		return decimal.Zero, fmt.Errorf("movimientos netos: %w", err)
	}
	return reconciliation.ReverseInitialStock(current, net), nil
}
