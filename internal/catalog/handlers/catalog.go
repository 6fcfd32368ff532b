package handlers

import (
	"log/slog"
	"net/http"

	"plantbuilder-server/internal/catalog"
	"plantbuilder-server/internal/shared/errors"
	"plantbuilder-server/internal/shared/response"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

type sectorResponse struct {
	Sector              string                        `json:"sector"`
	Components          []catalog.ComponentDefinition `json:"components"`
	Sequence            []string                      `json:"sequence"`
	SlotCount           int                           `json:"slot_count"`
	ExpectedConnections int                           `json:"expected_connections"`
}

// HandleSectors lists the sectors available on the build surface.
func (h *CatalogHandler) HandleSectors(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "catalog_sectors")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	response.Success(w, http.StatusOK, h.catalog.Sectors())
}

// HandleSector serves the component definitions and the canonical sequence
// the rendering UI needs for one sector.
func (h *CatalogHandler) HandleSector(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "catalog_sector")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	sector := r.PathValue("sector")
	if sector == "" {
		response.Error(w, r, logger, errors.Validation("sector is required"))
		return
	}

	seq, err := h.catalog.Sequence(sector)
	if err != nil {
		response.Error(w, r, logger, errors.NotFoundf("sector %s not found", sector))
		return
	}

	components, err := h.catalog.Components(sector)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	expected, _ := h.catalog.ExpectedConnections(sector)

	response.Success(w, http.StatusOK, sectorResponse{
		Sector:              sector,
		Components:          components,
		Sequence:            seq.ComponentIDs,
		SlotCount:           len(seq.ComponentIDs),
		ExpectedConnections: expected,
	})
}
