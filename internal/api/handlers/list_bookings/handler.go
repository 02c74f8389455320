package list_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/bookings"
	"github.com/m04kA/SMC-StudioBooking/internal/service/bookings/models"
)

const (
	msgInvalidFilter = "invalid filter, expected all, upcoming or past"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
// Query params: filter (all | upcoming | past), q (поиск по имени, email, студии)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceReq := &models.ListRequest{
		Period: domain.BookingPeriod(r.URL.Query().Get("filter")),
		Search: r.URL.Query().Get("q"),
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid filter: %s", serviceReq.Period)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: count=%d, total=%d",
		len(result.Bookings), result.Summary.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
