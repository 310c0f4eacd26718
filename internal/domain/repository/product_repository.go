package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/hotelstock-api/internal/domain/entity"
)

// ProductRepository define el puerto de lectura del catálogo de productos.
// El catálogo lo administra un sistema externo; aquí solo se consulta.
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	ListByProperty(ctx context.Context, propertyID string) ([]*entity.Product, error)
	// GetCurrentStock devuelve el stock actual del producto en la bodega central.
	GetCurrentStock(ctx context.Context, productID string) (decimal.Decimal, error)
}

// StockSnapshotRepository acceso de solo lectura a los conteos completos
// generados por el job periódico de snapshots.
type StockSnapshotRepository interface {
	// GetLatestAtOrBefore devuelve el snapshot más reciente de la propiedad con
	// fecha <= date, o nil si no existe ninguno.
	GetLatestAtOrBefore(ctx context.Context, propertyID string, date time.Time) (*entity.StockSnapshot, error)
}
