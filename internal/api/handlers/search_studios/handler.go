package search_studios

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	searchStudios "github.com/m04kA/SMC-StudioBooking/internal/usecase/search_studios"
)

const (
	msgInvalidQuery   = "invalid search parameters"
	msgInvalidFilters = "invalid search filters"
)

type Handler struct {
	useCase SearchStudiosUseCase
	logger  Logger
}

func NewHandler(useCase SearchStudiosUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/studios
// Query params: location, radius, type, minPrice, maxPrice, minRating, lat, lon, useCurrentLocation, sort
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	useCaseReq, err := ToUseCaseRequest(r.URL.Query(), handlers.ClientIP(r))
	if err != nil {
		h.logger.Warn("GET /studios - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, searchStudios.ErrInvalidInput):
			h.logger.Warn("GET /studios - Invalid filters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilters)

		default:
			h.logger.Error("GET /studios - Search failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /studios - Search completed: found=%d, proximity=%t", response.Count, response.ProximityActive)
	handlers.RespondJSON(w, http.StatusOK, response)
}
