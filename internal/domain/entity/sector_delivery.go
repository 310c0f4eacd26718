package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SectorDelivery es una requisición completada: entrega de un producto desde
// la bodega central a un sector. Si hubo sustitución, SubstitutedProductID
// trae el producto contra el que debe contabilizarse la entrega.
type SectorDelivery struct {
	ID                   string
	PropertyID           string
	ProductID            string
	SubstitutedProductID string // vacío si no hubo sustitución
	SectorID             string
	SectorName           string
	Quantity             decimal.Decimal
	CompletedAt          time.Time
}

// EffectiveProductID devuelve el producto al que se atribuye la entrega:
// el sustituto cuando existe, si no el solicitado.
func (d SectorDelivery) EffectiveProductID() string {
	if d.SubstitutedProductID != "" {
		return d.SubstitutedProductID
	}
	return d.ProductID
}
