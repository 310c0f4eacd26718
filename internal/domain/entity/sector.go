package entity

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SectorKind clasifica el sector según su ecuación de conciliación.
type SectorKind string

const (
	// SectorKindOrdinary sector con ventas: la merma se deriva del flujo
	// (inicial + recibido - ventas - consumo - conteo).
	SectorKindOrdinary SectorKind = "ORDINARY"
	// SectorKindDerivedConsumption sector sin concepto de venta (mantenimiento):
	// el consumo se deriva del flujo y la merma es cero por definición.
	SectorKindDerivedConsumption SectorKind = "DERIVED_CONSUMPTION"
)

// Sector representa un punto de consumo interno de una propiedad
// (cocina, restaurante, housekeeping, mantenimiento, etc.).
type Sector struct {
	ID         string
	PropertyID string
	Name       string
	Kind       SectorKind
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsDerivedConsumption indica si el sector usa la ecuación de consumo derivado.
func (s Sector) IsDerivedConsumption() bool {
	return s.Kind == SectorKindDerivedConsumption
}

// Nombres históricos de sectores de mantenimiento, ya normalizados (sin tildes,
// minúsculas). Filas legadas sin columna kind se clasifican contra esta lista
// una sola vez al cargar, nunca comparando strings por fila en caliente.
var legacyDerivedNames = map[string]struct{}{
	"manutencao":    {},
	"mantenimiento": {},
	"maintenance":   {},
}

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// ResolveKind devuelve el kind explícito si viene informado; si no, clasifica
// el nombre legado (insensible a mayúsculas y tildes: "Manutenção" == "manutencao").
func ResolveKind(stored string, name string) SectorKind {
	switch SectorKind(stored) {
	case SectorKindOrdinary, SectorKindDerivedConsumption:
		return SectorKind(stored)
	}
	normalized, _, err := transform.String(stripAccents, strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		normalized = strings.ToLower(strings.TrimSpace(name))
	}
	if _, ok := legacyDerivedNames[normalized]; ok {
		return SectorKindDerivedConsumption
	}
	return SectorKindOrdinary
}
