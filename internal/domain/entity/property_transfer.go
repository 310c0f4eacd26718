package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PropertyTransfer es un traslado lateral completado de un producto entre dos
// propiedades del grupo. Se lee como fuente externa; la propiedad origen lo
// reporta como salida agrupada por destino.
type PropertyTransfer struct {
	ID                      string
	ProductID               string
	SourcePropertyID        string
	DestinationPropertyID   string
	DestinationPropertyName string
	Quantity                decimal.Decimal
	CompletedAt             time.Time
}
