package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-StudioBooking/internal/usecase/get_available_slots"
)

const (
	msgInvalidStudioID = "invalid studio ID"
	msgMissingDate     = "date is required"
	msgInvalidDate     = "invalid date format, expected YYYY-MM-DD"
	msgDateOutOfRange  = "Please select a date within the next 30 days"
	msgStudioNotFound  = "studio not found"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/studios/{studioId}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	studioID, ok := handlers.PathInt64(r, "studioId")
	if !ok {
		h.logger.Warn("GET /studios/{id}/available-slots - Invalid studio ID")
		handlers.RespondBadRequest(w, msgInvalidStudioID)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /studios/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		StudioID: studioID,
		Date:     date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrStudioNotFound):
			h.logger.Warn("GET /studios/{id}/available-slots - Studio not found: studio_id=%d", studioID)
			handlers.RespondNotFound(w, msgStudioNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate), errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /studios/{id}/available-slots - Invalid date: studio_id=%d, date=%s", studioID, date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrDateOutOfRange):
			h.logger.Warn("GET /studios/{id}/available-slots - Date out of range: studio_id=%d, date=%s", studioID, date)
			handlers.RespondBadRequest(w, msgDateOutOfRange)

		default:
			h.logger.Error("GET /studios/{id}/available-slots - Failed to get slots: studio_id=%d, date=%s, error=%v",
				studioID, date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /studios/{id}/available-slots - Slots retrieved successfully: studio_id=%d, date=%s, available=%d of %d",
		studioID, date, response.AvailableCount, len(response.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
