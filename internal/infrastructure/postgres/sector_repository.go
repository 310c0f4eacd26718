package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/hotelstock-api/internal/domain"
	"github.com/tu-usuario/hotelstock-api/internal/domain/entity"
	"github.com/tu-usuario/hotelstock-api/internal/domain/repository"
)

var _ repository.SectorRepository = (*SectorRepo)(nil)

// SectorRepo catálogo de sectores por propiedad. El kind se resuelve al
// escanear la fila: filas legadas sin kind se clasifican por nombre.
type SectorRepo struct {
	q Querier
}

func NewSectorRepository(q Querier) *SectorRepo {
	return &SectorRepo{q: q}
}

func (r *SectorRepo) GetByID(ctx context.Context, id string) (*entity.Sector, error) {
	var s entity.Sector
	var storedKind string
	err := r.q.QueryRow(ctx, `
		SELECT id, property_id, name, COALESCE(kind, ''), created_at, updated_at
		FROM sectors WHERE id = $1`, id).
		Scan(&s.ID, &s.PropertyID, &s.Name, &storedKind, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get sector: %w", err)
	}
	s.Kind = entity.ResolveKind(storedKind, s.Name)
	return &s, nil
}

func (r *SectorRepo) ListByProperty(ctx context.Context, propertyID string) ([]*entity.Sector, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, property_id, name, COALESCE(kind, ''), created_at, updated_at
		FROM sectors WHERE property_id = $1 ORDER BY name`, propertyID)
	if err != nil {
		return nil, fmt.Errorf("list sectors: %w", err)
	}
	defer rows.Close()

	var sectors []*entity.Sector
	for rows.Next() {
		var s entity.Sector
		var storedKind string
		if err := rows.Scan(&s.ID, &s.PropertyID, &s.Name, &storedKind, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sector: %w", err)
		}
		s.Kind = entity.ResolveKind(storedKind, s.Name)
		sectors = append(sectors, &s)
	}
	return sectors, rows.Err()
}
