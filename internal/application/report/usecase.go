package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/hotelstock-api/internal/application/dto"
	"github.com/tu-usuario/hotelstock-api/internal/domain"
	"github.com/tu-usuario/hotelstock-api/internal/domain/entity"
	"github.com/tu-usuario/hotelstock-api/internal/domain/reconciliation"
	"github.com/tu-usuario/hotelstock-api/internal/domain/repository"
	"github.com/tu-usuario/hotelstock-api/pkg/batch"
	"github.com/tu-usuario/hotelstock-api/pkg/logger"
)

// PeriodDays días que cubre un período semanal (inicio + 6).
const PeriodDays = 6

// Options parámetros de procesamiento por lotes del generador.
type Options struct {
	ChunkSize  int           // productos por lote (consultas en paralelo dentro del lote)
	ChunkDelay time.Duration // pausa entre lotes para acotar la carga sobre la BD
}

// UseCase orquesta la conciliación semanal: generación idempotente del
// reporte, lectura completa, edición manual de filas y borrado.
type UseCase struct {
	reportRepo   repository.WeeklyReportRepository
	productRepo  repository.ProductRepository
	propertyRepo repository.PropertyRepository
	resolver     *SnapshotResolver
	aggregator   *MovementAggregator
	opts         Options
	log          *logger.Logger
}

// NewUseCase construye el caso de uso del reporte semanal.
func NewUseCase(
	reportRepo repository.WeeklyReportRepository,
	productRepo repository.ProductRepository,
	propertyRepo repository.PropertyRepository,
	resolver *SnapshotResolver,
	aggregator *MovementAggregator,
	opts Options,
	log *logger.Logger,
) *UseCase {
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = 25
	}
	return &UseCase{
		reportRepo:   reportRepo,
		productRepo:  productRepo,
		propertyRepo: propertyRepo,
		resolver:     resolver,
		aggregator:   aggregator,
		opts:         opts,
		log:          log,
	}
}

// Generate genera (o reutiliza) el reporte semanal de la propiedad para el
// período que inicia en periodStart. Idempotente: si el período ya fue
// generado se devuelven sus filas existentes sin duplicar nada.
func (uc *UseCase) Generate(ctx context.Context, propertyID string, periodStart time.Time) (*dto.FullReportDTO, error) {
	if propertyID == "" || periodStart.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	periodStart = truncateToDay(periodStart)
	periodEnd := periodStart.AddDate(0, 0, PeriodDays)

	property, err := uc.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, domain.ErrNotFound
	}

	rep, isNew, err := uc.reportRepo.GetOrCreate(ctx, propertyID, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}
	if !isNew {
		uc.log.Info().Str("report_id", rep.ID).Msg("reporte ya generado para el período, se reutiliza")
		return uc.assembleFromStore(ctx, rep)
	}

	products, err := uc.productRepo.ListByProperty(ctx, propertyID)
	if err != nil {
		// Falla de nivel superior: aborta la generación completa
		return nil, err
	}

	items := make([]*entity.WeeklyReportItem, len(products))
	summaries := make([]MovementSummary, len(products))

	err = batch.ProcessInWaves(ctx, products, uc.opts.ChunkSize, uc.opts.ChunkDelay, func(i int, p *entity.Product) {
		initial, rerr := uc.resolver.ResolveInitialStock(ctx, propertyID, p.ID, periodStart, periodEnd)
		if rerr != nil {
			// Falla blanda por producto: fila en ceros, marcada, y se sigue
			uc.log.Warn().Err(rerr).Str("product_id", p.ID).Msg("resolución de stock inicial falló, fila en ceros")
			items[i] = zeroFilledItem(rep.ID, p)
			summaries[i] = MovementSummary{Purchases: decimal.Zero}
			return
		}
		summary := uc.aggregator.Aggregate(ctx, propertyID, p.ID, periodStart, periodEnd)
		items[i] = &entity.WeeklyReportItem{
			ReportID:     rep.ID,
			ProductID:    p.ID,
			ProductName:  p.Name,
			InitialStock: initial,
			Purchases:    summary.Purchases,
			Sales:        decimal.Zero, // entrada manual posterior
			Losses:       decimal.Zero, // entrada manual posterior
			FinalStock:   p.CurrentStock,
		}
		summaries[i] = summary
	})
	if err != nil {
		return nil, err
	}

	if err := uc.reportRepo.BulkInsertItems(ctx, items); err != nil {
		return nil, err
	}

	// Segunda pasada: registros hijos con los IDs recién generados
	var movementRecords []*entity.SectorMovementRecord
	var transferRecords []*entity.TransferRecord
	for i, item := range items {
		for _, g := range summaries[i].SectorMovements {
			movementRecords = append(movementRecords, &entity.SectorMovementRecord{
				ReportItemID: item.ID,
				SectorID:     g.SectorID,
				SectorName:   g.SectorName,
				Quantity:     g.Quantity,
			})
		}
		for _, g := range summaries[i].Transfers {
			transferRecords = append(transferRecords, &entity.TransferRecord{
				ReportItemID: item.ID,
				PropertyName: g.PropertyName,
				Quantity:     g.Quantity,
			})
		}
	}
	if err := uc.reportRepo.BulkInsertSectorMovements(ctx, movementRecords); err != nil {
		return nil, err
	}
	if err := uc.reportRepo.BulkInsertTransfers(ctx, transferRecords); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("report_id", rep.ID).
		Str("property_id", propertyID).
		Int("items", len(items)).
		Msg("reporte semanal generado")

	full := assemble(rep, items, movementRecords, transferRecords)
	full.Reused = false
	return full, nil
}

// GetReportData devuelve el reporte completo para presentación o export.
func (uc *UseCase) GetReportData(ctx context.Context, reportID string) (*dto.FullReportDTO, error) {
	rep, err := uc.reportRepo.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if rep == nil {
		return nil, domain.ErrNotFound
	}
	return uc.assembleFromStore(ctx, rep)
}

// UpdateItem fija ventas y mermas ingresadas manualmente en una fila.
// Las ventas almacenadas no pueden ser negativas; la merma sí (sobrante).
func (uc *UseCase) UpdateItem(ctx context.Context, itemID string, sales, losses decimal.Decimal) error {
	if itemID == "" || sales.IsNegative() {
		return domain.ErrInvalidInput
	}
	return uc.reportRepo.UpdateItem(ctx, itemID, sales, losses)
}

// Delete elimina el reporte con sus filas y registros hijos.
func (uc *UseCase) Delete(ctx context.Context, reportID string) error {
	if reportID == "" {
		return domain.ErrInvalidInput
	}
	return uc.reportRepo.Delete(ctx, reportID)
}

func (uc *UseCase) assembleFromStore(ctx context.Context, rep *entity.WeeklyReport) (*dto.FullReportDTO, error) {
	items, err := uc.reportRepo.ListItems(ctx, rep.ID)
	if err != nil {
		return nil, err
	}
	movements, err := uc.reportRepo.ListSectorMovements(ctx, rep.ID)
	if err != nil {
		return nil, err
	}
	transfers, err := uc.reportRepo.ListTransfers(ctx, rep.ID)
	if err != nil {
		return nil, err
	}
	full := assemble(rep, items, movements, transfers)
	full.Reused = true
	return full, nil
}

// assemble arma el DTO completo y deriva la ecuación de bodega por fila.
func assemble(
	rep *entity.WeeklyReport,
	items []*entity.WeeklyReportItem,
	movements []*entity.SectorMovementRecord,
	transfers []*entity.TransferRecord,
) *dto.FullReportDTO {
	movementsByItem := make(map[string][]dto.SectorMovementDTO)
	for _, m := range movements {
		movementsByItem[m.ReportItemID] = append(movementsByItem[m.ReportItemID], dto.SectorMovementDTO{
			SectorID:   m.SectorID,
			SectorName: m.SectorName,
			Quantity:   m.Quantity,
		})
	}
	transfersByItem := make(map[string][]dto.TransferDTO)
	for _, t := range transfers {
		transfersByItem[t.ReportItemID] = append(transfersByItem[t.ReportItemID], dto.TransferDTO{
			PropertyName: t.PropertyName,
			Quantity:     t.Quantity,
		})
	}

	full := &dto.FullReportDTO{
		ID:          rep.ID,
		PropertyID:  rep.PropertyID,
		PeriodStart: rep.PeriodStart,
		PeriodEnd:   rep.PeriodEnd,
		Items:       make([]dto.ReportItemDTO, 0, len(items)),
	}
	for _, item := range items {
		sectorMovs := movementsByItem[item.ID]
		delivered := decimal.Zero
		for _, m := range sectorMovs {
			delivered = delivered.Add(m.Quantity)
		}
		calculated := reconciliation.CalculatedFinalStock(item.InitialStock, item.Purchases, delivered)
		full.Items = append(full.Items, dto.ReportItemDTO{
			ID:                   item.ID,
			ProductID:            item.ProductID,
			ProductName:          item.ProductName,
			InitialStock:         item.InitialStock,
			Purchases:            item.Purchases,
			Sales:                item.Sales,
			Losses:               item.Losses,
			FinalStock:           item.FinalStock,
			CalculatedFinalStock: calculated,
			Loss:                 reconciliation.WarehouseLoss(item.FinalStock, calculated),
			ZeroFilled:           item.ZeroFilled,
			SectorMovements:      sectorMovs,
			Transfers:            transfersByItem[item.ID],
		})
	}
	return full
}

func zeroFilledItem(reportID string, p *entity.Product) *entity.WeeklyReportItem {
	return &entity.WeeklyReportItem{
		ReportID:     reportID,
		ProductID:    p.ID,
		ProductName:  p.Name,
		InitialStock: decimal.Zero,
		Purchases:    decimal.Zero,
		Sales:        decimal.Zero,
		Losses:       decimal.Zero,
		FinalStock:   decimal.Zero,
		ZeroFilled:   true,
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
