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

var _ repository.PropertyRepository = (*PropertyRepo)(nil)

// PropertyRepo catálogo de propiedades del grupo.
type PropertyRepo struct {
	q Querier
}

func NewPropertyRepository(q Querier) *PropertyRepo {
	return &PropertyRepo{q: q}
}

func (r *PropertyRepo) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	var p entity.Property
	err := r.q.QueryRow(ctx, `
		SELECT id, name, created_at, updated_at
		FROM properties WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get property: %w", err)
	}
	return &p, nil
}

func (r *PropertyRepo) List(ctx context.Context) ([]*entity.Property, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, name, created_at, updated_at
		FROM properties ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()

	var properties []*entity.Property
	for rows.Next() {
		var p entity.Property
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		properties = append(properties, &p)
	}
	return properties, rows.Err()
}
