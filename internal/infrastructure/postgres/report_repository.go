package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/hotelstock-api/internal/domain"
	"github.com/tu-usuario/hotelstock-api/internal/domain/entity"
	"github.com/tu-usuario/hotelstock-api/internal/domain/repository"
)

var _ repository.WeeklyReportRepository = (*WeeklyReportRepo)(nil)

// WeeklyReportRepo persistencia del almacén de reportes semanales. Recibe el
// pool (no un Querier) porque Delete necesita abrir su propia transacción.
type WeeklyReportRepo struct {
	pool *pgxpool.Pool
}

func NewWeeklyReportRepository(pool *pgxpool.Pool) *WeeklyReportRepo {
	return &WeeklyReportRepo{pool: pool}
}

// GetOrCreate devuelve el reporte del período, creándolo si no existe.
// La carrera entre dos generaciones concurrentes la resuelve el constraint
// único: la que pierde relee el reporte insertado por la otra.
func (r *WeeklyReportRepo) GetOrCreate(ctx context.Context, propertyID string, periodStart, periodEnd time.Time) (*entity.WeeklyReport, bool, error) {
	existing, err := r.getByPeriod(ctx, propertyID, periodStart, periodEnd)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	report := &entity.WeeklyReport{
		ID:          uuid.NewString(),
		PropertyID:  propertyID,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		CreatedAt:   time.Now().UTC(),
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO weekly_reports (id, property_id, period_start, period_end, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		report.ID, report.PropertyID, report.PeriodStart, report.PeriodEnd, report.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			existing, err = r.getByPeriod(ctx, propertyID, periodStart, periodEnd)
			if err != nil {
				return nil, false, err
			}
			if existing == nil {
				return nil, false, fmt.Errorf("reporte desapareció tras violación de unicidad")
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("insert report: %w", err)
	}
	return report, true, nil
}

func (r *WeeklyReportRepo) getByPeriod(ctx context.Context, propertyID string, periodStart, periodEnd time.Time) (*entity.WeeklyReport, error) {
	var rep entity.WeeklyReport
	err := r.pool.QueryRow(ctx, `
		SELECT id, property_id, period_start, period_end, created_at
		FROM weekly_reports
		WHERE property_id = $1 AND period_start = $2 AND period_end = $3`,
		propertyID, periodStart, periodEnd).
		Scan(&rep.ID, &rep.PropertyID, &rep.PeriodStart, &rep.PeriodEnd, &rep.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get report by period: %w", err)
	}
	return &rep, nil
}

func (r *WeeklyReportRepo) GetByID(ctx context.Context, id string) (*entity.WeeklyReport, error) {
	var rep entity.WeeklyReport
	err := r.pool.QueryRow(ctx, `
		SELECT id, property_id, period_start, period_end, created_at
		FROM weekly_reports WHERE id = $1`, id).
		Scan(&rep.ID, &rep.PropertyID, &rep.PeriodStart, &rep.PeriodEnd, &rep.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get report: %w", err)
	}
	return &rep, nil
}

// BulkInsertItems inserta todas las filas en un solo round-trip (pgx.Batch)
// y deja en cada item el ID generado.
func (r *WeeklyReportRepo) BulkInsertItems(ctx context.Context, items []*entity.WeeklyReportItem) error {
	if len(items) == 0 {
		return nil
	}
	now := time.Now().UTC()
	batch := &pgx.Batch{}
	for _, item := range items {
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		item.CreatedAt = now
		item.UpdatedAt = now
		batch.Queue(`
			INSERT INTO weekly_report_items
				(id, report_id, product_id, product_name, initial_stock, purchases,
				 sales, losses, final_stock, zero_filled, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			item.ID, item.ReportID, item.ProductID, item.ProductName,
			item.InitialStock, item.Purchases, item.Sales, item.Losses,
			item.FinalStock, item.ZeroFilled, item.CreatedAt, item.UpdatedAt)
	}
	if err := r.pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("bulk insert items: %w", err)
	}
	return nil
}

func (r *WeeklyReportRepo) ListItems(ctx context.Context, reportID string) ([]*entity.WeeklyReportItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, report_id, product_id, product_name, initial_stock, purchases,
		       sales, losses, final_stock, zero_filled, created_at, updated_at
		FROM weekly_report_items
		WHERE report_id = $1
		ORDER BY product_name`, reportID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []*entity.WeeklyReportItem
	for rows.Next() {
		var it entity.WeeklyReportItem
		if err := rows.Scan(&it.ID, &it.ReportID, &it.ProductID, &it.ProductName,
			&it.InitialStock, &it.Purchases, &it.Sales, &it.Losses,
			&it.FinalStock, &it.ZeroFilled, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

func (r *WeeklyReportRepo) BulkInsertSectorMovements(ctx context.Context, records []*entity.SectorMovementRecord) error {
	if len(records) == 0 {
		return nil
	}
	now := time.Now().UTC()
	batch := &pgx.Batch{}
	for _, rec := range records {
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		rec.CreatedAt = now
		batch.Queue(`
			INSERT INTO report_sector_movements (id, report_item_id, sector_id, sector_name, quantity, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			rec.ID, rec.ReportItemID, rec.SectorID, rec.SectorName, rec.Quantity, rec.CreatedAt)
	}
	if err := r.pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("bulk insert sector movements: %w", err)
	}
	return nil
}

func (r *WeeklyReportRepo) BulkInsertTransfers(ctx context.Context, records []*entity.TransferRecord) error {
	if len(records) == 0 {
		return nil
	}
	now := time.Now().UTC()
	batch := &pgx.Batch{}
	for _, rec := range records {
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		rec.CreatedAt = now
		batch.Queue(`
			INSERT INTO report_transfers (id, report_item_id, property_name, quantity, created_at)
			VALUES ($1, $2, $3, $4, $5)`,
			rec.ID, rec.ReportItemID, rec.PropertyName, rec.Quantity, rec.CreatedAt)
	}
	if err := r.pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("bulk insert transfers: %w", err)
	}
	return nil
}

func (r *WeeklyReportRepo) ListSectorMovements(ctx context.Context, reportID string) ([]*entity.SectorMovementRecord, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT m.id, m.report_item_id, m.sector_id, m.sector_name, m.quantity, m.created_at
		FROM report_sector_movements m
		JOIN weekly_report_items i ON i.id = m.report_item_id
		WHERE i.report_id = $1
		ORDER BY m.sector_name`, reportID)
	if err != nil {
		return nil, fmt.Errorf("list sector movements: %w", err)
	}
	defer rows.Close()

	var records []*entity.SectorMovementRecord
	for rows.Next() {
		var rec entity.SectorMovementRecord
		if err := rows.Scan(&rec.ID, &rec.ReportItemID, &rec.SectorID, &rec.SectorName, &rec.Quantity, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sector movement: %w", err)
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}

func (r *WeeklyReportRepo) ListTransfers(ctx context.Context, reportID string) ([]*entity.TransferRecord, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT t.id, t.report_item_id, t.property_name, t.quantity, t.created_at
		FROM report_transfers t
		JOIN weekly_report_items i ON i.id = t.report_item_id
		WHERE i.report_id = $1
		ORDER BY t.property_name`, reportID)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()

	var records []*entity.TransferRecord
	for rows.Next() {
		var rec entity.TransferRecord
		if err := rows.Scan(&rec.ID, &rec.ReportItemID, &rec.PropertyName, &rec.Quantity, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transfer record: %w", err)
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}

func (r *WeeklyReportRepo) UpdateItem(ctx context.Context, itemID string, sales, losses decimal.Decimal) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE weekly_report_items
		SET sales = $1, losses = $2, updated_at = $3
		WHERE id = $4`,
		sales, losses, time.Now().UTC(), itemID)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el reporte, sus filas y registros hijos en una transacción.
func (r *WeeklyReportRepo) Delete(ctx context.Context, reportID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		DELETE FROM report_sector_movements
		WHERE report_item_id IN (SELECT id FROM weekly_report_items WHERE report_id = $1)`, reportID)
	if err != nil {
		return fmt.Errorf("delete sector movements: %w", err)
	}
	_, err = tx.Exec(ctx, `
		DELETE FROM report_transfers
		WHERE report_item_id IN (SELECT id FROM weekly_report_items WHERE report_id = $1)`, reportID)
	if err != nil {
		return fmt.Errorf("delete transfer records: %w", err)
	}
	if _, err = tx.Exec(ctx, `DELETE FROM weekly_report_items WHERE report_id = $1`, reportID); err != nil {
		return fmt.Errorf("delete items: %w", err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM weekly_reports WHERE id = $1`, reportID)
	if err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit(ctx)
}
