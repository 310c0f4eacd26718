package report

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/hotelstock-api/internal/application/dto"
	"github.com/tu-usuario/hotelstock-api/internal/domain/entity"
	"github.com/tu-usuario/hotelstock-api/internal/domain/reconciliation"
)

// El presentador de conciliación es una función pura de
// (reporte armado, vista elegida, entradas manuales) -> filas derivadas.
// No guarda estado: recalcular con otras entradas solo requiere volver a llamar.

// BuildWarehouseView deriva la vista de bodega central. Aquí no hay campos
// editables: ventas y consumo no aplican, solo compras, entregas y la merma
// ya determinada por la ecuación de bodega.
func BuildWarehouseView(full *dto.FullReportDTO) dto.ReconciliationViewDTO {
	view := dto.ReconciliationViewDTO{
		ReportID: full.ID,
		View:     "warehouse",
		Rows:     make([]dto.ReconciliationRowDTO, 0, len(full.Items)),
	}
	for _, item := range full.Items {
		delivered := decimal.Zero
		for _, m := range item.SectorMovements {
			delivered = delivered.Add(m.Quantity)
		}
		view.Rows = append(view.Rows, dto.ReconciliationRowDTO{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			InitialStock: item.InitialStock,
			Purchases:    item.Purchases,
			Received:     delivered,
			Sales:        decimal.Zero,
			Consumption:  decimal.Zero,
			CountedStock: item.FinalStock,
			Loss:         item.Loss,
		})
	}
	return view
}

// BuildSectorView deriva la vista de un sector a partir del reporte y las
// entradas manuales por producto. Solo aparecen productos con huella en el
// sector (inicial o recibido distintos de cero); el resto se filtra para no
// producir el producto cruzado todos-los-productos × todos-los-sectores.
//
// Sector ordinario: merma = inicial + recibido - ventas - consumo - conteo,
// firmada y sin recorte. Sector de consumo derivado (mantenimiento): el
// consumo se deriva del flujo, las ventas se ignoran y la merma es cero.
func BuildSectorView(full *dto.FullReportDTO, sector *entity.Sector, entries []dto.ManualEntryDTO) dto.ReconciliationViewDTO {
	entryByProduct := make(map[string]dto.ManualEntryDTO, len(entries))
	for _, e := range entries {
		entryByProduct[e.ProductID] = e
	}

	view := dto.ReconciliationViewDTO{
		ReportID:   full.ID,
		View:       "sector",
		SectorID:   sector.ID,
		SectorName: sector.Name,
		SectorKind: string(sector.Kind),
	}
	for _, item := range full.Items {
		received := decimal.Zero
		for _, m := range item.SectorMovements {
			if m.SectorID == sector.ID {
				received = received.Add(m.Quantity)
			}
		}
		entry := entryByProduct[item.ProductID]
		if entry.InitialStock.IsZero() && received.IsZero() {
			continue // sin huella en el sector, no aparece
		}

		row := dto.ReconciliationRowDTO{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			InitialStock: entry.InitialStock,
			Received:     received,
			CountedStock: entry.CountedStock,
		}
		if sector.IsDerivedConsumption() {
			row.Sales = decimal.Zero
			row.Consumption = reconciliation.DerivedConsumption(entry.InitialStock, received, entry.CountedStock)
			row.Loss = decimal.Zero
		} else {
			row.Sales = entry.Sales
			row.Consumption = entry.Consumption
			row.Loss = reconciliation.SectorLoss(entry.InitialStock, received, entry.Sales, entry.Consumption, entry.CountedStock)
		}
		view.Rows = append(view.Rows, row)
	}
	return view
}
