package entity

import "time"

// Property representa un hotel del grupo. Cada propiedad tiene su bodega
// central y sus propios sectores de consumo interno.
type Property struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
