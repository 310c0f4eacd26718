package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario en la bodega central.
const (
	MovementTypePurchase   = "PURCHASE"   // compra (entrada)
	MovementTypeAdjustment = "ADJUSTMENT" // ajuste manual
	MovementTypeDelivery   = "DELIVERY"   // entrega a sector (salida)
	MovementTypeTransfer   = "TRANSFER"   // traslado entre propiedades
)

// InventoryMovement representa un cambio firmado de cantidad de un producto
// en la bodega central de una propiedad. Es la fuente de verdad externa de los
// flujos; este core solo la lee.
type InventoryMovement struct {
	ID             string
	PropertyID     string
	ProductID      string
	Type           string
	QuantityChange decimal.Decimal // positivo entrada, negativo salida
	Date           time.Time
	CreatedAt      time.Time
}
