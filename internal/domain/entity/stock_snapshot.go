package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockSnapshot es un conteo completo del stock de una propiedad en un instante,
// generado por un job periódico externo. Sirve como línea base de la conciliación.
type StockSnapshot struct {
	ID         string
	PropertyID string
	Date       time.Time
	// Quantities mapea product_id -> cantidad contada en la fecha del snapshot.
	Quantities map[string]decimal.Decimal
	CreatedAt  time.Time
}

// QuantityFor devuelve la cantidad registrada para el producto y si existe
// una entrada en el snapshot (un snapshot puede no cubrir todos los productos).
func (s *StockSnapshot) QuantityFor(productID string) (decimal.Decimal, bool) {
	q, ok := s.Quantities[productID]
	return q, ok
}
