package report_test

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/hotelstock-api/internal/domain/entity"
	"github.com/tu-usuario/hotelstock-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

type fakeSnapshotRepo struct {
	snapshot *entity.StockSnapshot
	err      error
}

func (f *fakeSnapshotRepo) GetLatestAtOrBefore(_ context.Context, propertyID string, date time.Time) (*entity.StockSnapshot, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.snapshot == nil || f.snapshot.PropertyID != propertyID || f.snapshot.Date.After(date) {
		return nil, nil
	}
	return f.snapshot, nil
}

type fakeProductRepo struct {
	products []*entity.Product
	listErr  error
	stockErr error
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) ListByProperty(_ context.Context, propertyID string) ([]*entity.Product, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*entity.Product
	for _, p := range f.products {
		if p.PropertyID == propertyID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) GetCurrentStock(_ context.Context, productID string) (decimal.Decimal, error) {
	if f.stockErr != nil {
		return decimal.Zero, f.stockErr
	}
	for _, p := range f.products {
		if p.ID == productID {
			return p.CurrentStock, nil
		}
	}
	return decimal.Zero, fmt.Errorf("producto %s no existe", productID)
}

type fakeMovementRepo struct {
	net         map[string]decimal.Decimal // product_id -> suma neta
	purchases   map[string]decimal.Decimal // product_id -> compras
	netErr      error
	purchaseErr error
}

func (f *fakeMovementRepo) SumNetChange(_ context.Context, _, productID string, _, _ time.Time) (decimal.Decimal, error) {
	if f.netErr != nil {
		return decimal.Zero, f.netErr
	}
	return f.net[productID], nil
}

func (f *fakeMovementRepo) SumPurchases(_ context.Context, _, productID string, _, _ time.Time) (decimal.Decimal, error) {
	if f.purchaseErr != nil {
		return decimal.Zero, f.purchaseErr
	}
	return f.purchases[productID], nil
}

type fakeDeliveryRepo struct {
	deliveries []*entity.SectorDelivery
	err        error
}

func (f *fakeDeliveryRepo) ListCompletedForProduct(_ context.Context, propertyID, productID string, from, to time.Time) ([]*entity.SectorDelivery, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.SectorDelivery
	for _, del := range f.deliveries {
		if del.PropertyID != propertyID || del.EffectiveProductID() != productID {
			continue
		}
		if del.CompletedAt.Before(from) || !del.CompletedAt.Before(to) {
			continue
		}
		out = append(out, del)
	}
	return out, nil
}

type fakeTransferRepo struct {
	transfers []*entity.PropertyTransfer
	err       error
}

func (f *fakeTransferRepo) ListCompletedFromSource(_ context.Context, sourcePropertyID, productID string, from, to time.Time) ([]*entity.PropertyTransfer, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.PropertyTransfer
	for _, tr := range f.transfers {
		if tr.SourcePropertyID != sourcePropertyID || tr.ProductID != productID {
			continue
		}
		if tr.CompletedAt.Before(from) || !tr.CompletedAt.Before(to) {
			continue
		}
		out = append(out, tr)
	}
	return out, nil
}

type fakePropertyRepo struct {
	properties []*entity.Property
}

func (f *fakePropertyRepo) GetByID(_ context.Context, id string) (*entity.Property, error) {
	for _, p := range f.properties {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePropertyRepo) List(_ context.Context) ([]*entity.Property, error) {
	return f.properties, nil
}

// fakeReportRepo almacén en memoria con la misma semántica de unicidad por
// (property, period_start, period_end) que el adaptador real.
type fakeReportRepo struct {
	reports   map[string]*entity.WeeklyReport // clave (property|start|end)
	byID      map[string]*entity.WeeklyReport
	items     map[string][]*entity.WeeklyReportItem     // report_id -> filas
	movements map[string][]*entity.SectorMovementRecord // report_id -> registros
	transfers map[string][]*entity.TransferRecord
	itemByID  map[string]*entity.WeeklyReportItem

	bulkItemsErr error
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{
		reports:   map[string]*entity.WeeklyReport{},
		byID:      map[string]*entity.WeeklyReport{},
		items:     map[string][]*entity.WeeklyReportItem{},
		movements: map[string][]*entity.SectorMovementRecord{},
		transfers: map[string][]*entity.TransferRecord{},
		itemByID:  map[string]*entity.WeeklyReportItem{},
	}
}

func periodKey(propertyID string, start, end time.Time) string {
	return fmt.Sprintf("%s|%s|%s", propertyID, start.Format("2006-01-02"), end.Format("2006-01-02"))
}

func (f *fakeReportRepo) GetOrCreate(_ context.Context, propertyID string, periodStart, periodEnd time.Time) (*entity.WeeklyReport, bool, error) {
	key := periodKey(propertyID, periodStart, periodEnd)
	if existing, ok := f.reports[key]; ok {
		return existing, false, nil
	}
	rep := &entity.WeeklyReport{
		ID:          uuid.New().String(),
		PropertyID:  propertyID,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		CreatedAt:   time.Now(),
	}
	f.reports[key] = rep
	f.byID[rep.ID] = rep
	return rep, true, nil
}

func (f *fakeReportRepo) GetByID(_ context.Context, id string) (*entity.WeeklyReport, error) {
	return f.byID[id], nil
}

func (f *fakeReportRepo) BulkInsertItems(_ context.Context, items []*entity.WeeklyReportItem) error {
	if f.bulkItemsErr != nil {
		return f.bulkItemsErr
	}
	for _, item := range items {
		item.ID = uuid.New().String()
		f.items[item.ReportID] = append(f.items[item.ReportID], item)
		f.itemByID[item.ID] = item
	}
	return nil
}

func (f *fakeReportRepo) ListItems(_ context.Context, reportID string) ([]*entity.WeeklyReportItem, error) {
	return f.items[reportID], nil
}

func (f *fakeReportRepo) BulkInsertSectorMovements(_ context.Context, records []*entity.SectorMovementRecord) error {
	for _, r := range records {
		r.ID = uuid.New().String()
		item := f.itemByID[r.ReportItemID]
		if item == nil {
			return fmt.Errorf("report item %s no existe", r.ReportItemID)
		}
		f.movements[item.ReportID] = append(f.movements[item.ReportID], r)
	}
	return nil
}

func (f *fakeReportRepo) BulkInsertTransfers(_ context.Context, records []*entity.TransferRecord) error {
	for _, r := range records {
		r.ID = uuid.New().String()
		item := f.itemByID[r.ReportItemID]
		if item == nil {
			return fmt.Errorf("report item %s no existe", r.ReportItemID)
		}
		f.transfers[item.ReportID] = append(f.transfers[item.ReportID], r)
	}
	return nil
}

func (f *fakeReportRepo) ListSectorMovements(_ context.Context, reportID string) ([]*entity.SectorMovementRecord, error) {
	return f.movements[reportID], nil
}

func (f *fakeReportRepo) ListTransfers(_ context.Context, reportID string) ([]*entity.TransferRecord, error) {
	return f.transfers[reportID], nil
}

func (f *fakeReportRepo) UpdateItem(_ context.Context, itemID string, sales, losses decimal.Decimal) error {
	item, ok := f.itemByID[itemID]
	if !ok {
		return fmt.Errorf("fila %s no existe", itemID)
	}
	item.Sales = sales
	item.Losses = losses
	return nil
}

func (f *fakeReportRepo) Delete(_ context.Context, reportID string) error {
	rep, ok := f.byID[reportID]
	if !ok {
		return nil
	}
	delete(f.byID, reportID)
	delete(f.reports, periodKey(rep.PropertyID, rep.PeriodStart, rep.PeriodEnd))
	for _, item := range f.items[reportID] {
		delete(f.itemByID, item.ID)
	}
	delete(f.items, reportID)
	delete(f.movements, reportID)
	delete(f.transfers, reportID)
	return nil
}
