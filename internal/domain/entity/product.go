package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un insumo rastreable del inventario de una propiedad
// (perecederos y consumibles). CurrentStock es el stock actual en la bodega
// central, mantenido por los movimientos; el catálogo en sí es externo a este core.
type Product struct {
	ID           string
	PropertyID   string
	Name         string
	Category     string
	Unit         string
	CurrentStock decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
