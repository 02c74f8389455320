package list_studio_types

import (
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

type CatalogService interface {
	Types() []domain.StudioType
}

type Handler struct {
	catalog CatalogService
}

func NewHandler(catalog CatalogService) *Handler {
	return &Handler{catalog: catalog}
}

// Handle GET /api/v1/studio-types
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, map[string][]domain.StudioType{
		"types": h.catalog.Types(),
	})
}
