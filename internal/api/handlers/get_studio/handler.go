package get_studio

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog"
)

const (
	msgInvalidStudioID = "invalid studio ID"
	msgNotFound        = "studio not found"
)

type Handler struct {
	catalog CatalogService
	logger  Logger
}

func NewHandler(catalog CatalogService, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/studios/{studioId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	studioID, ok := handlers.PathInt64(r, "studioId")
	if !ok {
		h.logger.Warn("GET /studios/{id} - Invalid studio ID")
		handlers.RespondBadRequest(w, msgInvalidStudioID)
		return
	}

	studio, err := h.catalog.GetByID(studioID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrStudioNotFound):
			h.logger.Warn("GET /studios/{id} - Studio not found: studio_id=%d", studioID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /studios/{id} - Failed to get studio: studio_id=%d, error=%v", studioID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, studio)
}
