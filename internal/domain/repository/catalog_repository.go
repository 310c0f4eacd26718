package repository

import (
	"context"

	"github.com/tu-usuario/hotelstock-api/internal/domain/entity"
)

// PropertyRepository catálogo de propiedades del grupo (solo lectura).
type PropertyRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Property, error)
	List(ctx context.Context) ([]*entity.Property, error)
}

// SectorRepository catálogo de sectores de consumo por propiedad (solo lectura).
// El kind del sector se resuelve al cargar la fila (entity.ResolveKind).
type SectorRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Sector, error)
	ListByProperty(ctx context.Context, propertyID string) ([]*entity.Sector, error)
}
