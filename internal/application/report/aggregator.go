package report

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/hotelstock-api/internal/domain/repository"
	"github.com/tu-usuario/hotelstock-api/pkg/logger"
)

// SectorMovementGroup total entregado a un sector en el período.
type SectorMovementGroup struct {
	SectorID   string
	SectorName string
	Quantity   decimal.Decimal
}

// TransferGroup total trasladado a otra propiedad en el período.
type TransferGroup struct {
	PropertyName string
	Quantity     decimal.Decimal
}

// MovementSummary agregados de movimiento de un producto en el período.
type MovementSummary struct {
	Purchases       decimal.Decimal
	SectorMovements []SectorMovementGroup
	Transfers       []TransferGroup
}

// TotalDelivered suma de todas las entregas a sectores.
func (s MovementSummary) TotalDelivered() decimal.Decimal {
	total := decimal.Zero
	for _, g := range s.SectorMovements {
		total = total.Add(g.Quantity)
	}
	return total
}

// MovementAggregator consulta y agrupa las tres clases de movimiento de un
// producto en una ventana: compras, entregas a sectores y traslados a otras
// propiedades. Cada subconsulta falla de forma independiente: una falla deja
// su clase vacía (con warning) sin tumbar la agregación completa.
type MovementAggregator struct {
	movementRepo repository.InventoryMovementRepository
	deliveryRepo repository.SectorDeliveryRepository
	transferRepo repository.PropertyTransferRepository
	log          *logger.Logger
}

// NewMovementAggregator construye el agregador.
func NewMovementAggregator(
	movementRepo repository.InventoryMovementRepository,
	deliveryRepo repository.SectorDeliveryRepository,
	transferRepo repository.PropertyTransferRepository,
	log *logger.Logger,
) *MovementAggregator {
	return &MovementAggregator{
		movementRepo: movementRepo,
		deliveryRepo: deliveryRepo,
		transferRepo: transferRepo,
		log:          log,
	}
}

// Aggregate devuelve el resumen de movimientos del producto en
// [periodStart, periodEnd+1d) (el día de cierre cuenta completo).
func (a *MovementAggregator) Aggregate(
	ctx context.Context,
	propertyID, productID string,
	periodStart, periodEnd time.Time,
) MovementSummary {
	windowEnd := periodEnd.AddDate(0, 0, 1)
	summary := MovementSummary{Purchases: decimal.Zero}

	purchases, err := a.movementRepo.SumPurchases(ctx, propertyID, productID, periodStart, windowEnd)
	if err != nil {
		a.log.Warn().Err(err).Str("product_id", productID).Msg("consulta de compras falló, se asume cero")
	} else {
		summary.Purchases = purchases
	}

	deliveries, err := a.deliveryRepo.ListCompletedForProduct(ctx, propertyID, productID, periodStart, windowEnd)
	if err != nil {
		a.log.Warn().Err(err).Str("product_id", productID).Msg("consulta de entregas a sectores falló, se asume vacío")
	} else {
		bySector := make(map[string]*SectorMovementGroup)
		for _, d := range deliveries {
			// La entrega cuenta contra el producto efectivo (sustituto si lo hubo)
			if d.EffectiveProductID() != productID {
				continue
			}
			g, ok := bySector[d.SectorID]
			if !ok {
				g = &SectorMovementGroup{SectorID: d.SectorID, SectorName: d.SectorName, Quantity: decimal.Zero}
				bySector[d.SectorID] = g
			}
			g.Quantity = g.Quantity.Add(d.Quantity)
		}
		for _, g := range bySector {
			if g.Quantity.IsZero() {
				continue
			}
			summary.SectorMovements = append(summary.SectorMovements, *g)
		}
		sort.Slice(summary.SectorMovements, func(i, j int) bool {
			return summary.SectorMovements[i].SectorName < summary.SectorMovements[j].SectorName
		})
	}

	transfers, err := a.transferRepo.ListCompletedFromSource(ctx, propertyID, productID, periodStart, windowEnd)
	if err != nil {
		a.log.Warn().Err(err).Str("product_id", productID).Msg("consulta de traslados falló, se asume vacío")
	} else {
		byDestination := make(map[string]decimal.Decimal)
		for _, t := range transfers {
			byDestination[t.DestinationPropertyName] = byDestination[t.DestinationPropertyName].Add(t.Quantity)
		}
		for name, qty := range byDestination {
			if qty.IsZero() {
				continue
			}
			summary.Transfers = append(summary.Transfers, TransferGroup{PropertyName: name, Quantity: qty})
		}
		sort.Slice(summary.Transfers, func(i, j int) bool {
			return summary.Transfers[i].PropertyName < summary.Transfers[j].PropertyName
		})
	}

	return summary
}
