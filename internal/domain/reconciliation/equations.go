// Package reconciliation contiene las ecuaciones de flujo de la conciliación
// semanal (servicios de dominio puros, sin dependencias de infraestructura).
//
// Convención de signos: las cantidades almacenadas son no negativas; la merma
// (loss) es firmada y nunca se recorta — un valor negativo es sobrante y es
// información válida, no un error.
package reconciliation

import "github.com/shopspring/decimal"

// CalculatedFinalStock stock final esperado de la bodega central:
// inicial + compras - Σ(entregas a sectores).
func CalculatedFinalStock(initial, purchases, sectorDeliveries decimal.Decimal) decimal.Decimal {
	return initial.Add(purchases).Sub(sectorDeliveries)
}

// WarehouseLoss merma de la bodega central: stock real - stock calculado.
// Negativo significa faltante (shrinkage).
func WarehouseLoss(actualFinal, calculatedFinal decimal.Decimal) decimal.Decimal {
	return actualFinal.Sub(calculatedFinal)
}

// SectorLoss merma de un sector ordinario:
// inicial + recibido - ventas - consumo - conteo físico.
// Positivo = faltante, negativo = sobrante; ambos se muestran tal cual.
func SectorLoss(initial, received, sales, consumption, counted decimal.Decimal) decimal.Decimal {
	return initial.Add(received).Sub(sales).Sub(consumption).Sub(counted)
}

// DerivedConsumption consumo de un sector sin ventas (mantenimiento):
// inicial + recibido - conteo físico. Para estos sectores la merma es cero
// por definición.
func DerivedConsumption(initial, received, counted decimal.Decimal) decimal.Decimal {
	return initial.Add(received).Sub(counted)
}

// ReverseInitialStock reconstruye el stock al inicio del período cuando no hay
// snapshot: stock actual - movimientos netos desde el inicio. Un resultado
// negativo es un artefacto de datos inconsistentes y se recorta a cero — a
// diferencia de la merma, un stock inicial negativo no es un nivel válido.
func ReverseInitialStock(current, netMovements decimal.Decimal) decimal.Decimal {
	initial := current.Sub(netMovements)
	if initial.IsNegative() {
		return decimal.Zero
	}
	return initial
}
