package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/hotelstock-api/internal/application/dto"
	"github.com/tu-usuario/hotelstock-api/internal/domain/repository"
)

// CatalogHandler lectura de catálogos (propiedades y sectores).
type CatalogHandler struct {
	propertyRepo repository.PropertyRepository
	sectorRepo   repository.SectorRepository
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(propertyRepo repository.PropertyRepository, sectorRepo repository.SectorRepository) *CatalogHandler {
	return &CatalogHandler{propertyRepo: propertyRepo, sectorRepo: sectorRepo}
}

// ListProperties godoc
// @Summary      Listar propiedades del grupo
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  dto.PropertyDTO
// @Router       /api/properties [get]
func (h *CatalogHandler) ListProperties(c *fiber.Ctx) error {
	properties, err := h.propertyRepo.List(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}
	out := make([]dto.PropertyDTO, 0, len(properties))
	for _, p := range properties {
		out = append(out, dto.PropertyDTO{ID: p.ID, Name: p.Name})
	}
	return c.JSON(out)
}

// ListSectors godoc
// @Summary      Listar sectores de una propiedad
// @Tags         catalog
// @Produce      json
// @Param        id  path  string  true  "ID de la propiedad"
// @Success      200  {array}  dto.SectorDTO
// @Router       /api/properties/{id}/sectors [get]
func (h *CatalogHandler) ListSectors(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	sectors, err := h.sectorRepo.ListByProperty(c.UserContext(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	out := make([]dto.SectorDTO, 0, len(sectors))
	for _, s := range sectors {
		out = append(out, dto.SectorDTO{ID: s.ID, PropertyID: s.PropertyID, Name: s.Name, Kind: string(s.Kind)})
	}
	return c.JSON(out)
}
