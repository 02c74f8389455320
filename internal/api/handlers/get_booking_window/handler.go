package get_booking_window

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/availability"
)

// WindowResponse границы выбора даты в форме бронирования
type WindowResponse struct {
	MinDate             string `json:"minDate"`
	MaxDate             string `json:"maxDate"`
	MaxAdvanceDays      int    `json:"maxAdvanceDays"`
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
}

type Handler struct {
	now func() time.Time
}

func NewHandler() *Handler {
	return &Handler{now: time.Now}
}

// Handle GET /api/v1/booking-window
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	now := h.now()
	handlers.RespondJSON(w, http.StatusOK, &WindowResponse{
		MinDate:             availability.MinDate(now),
		MaxDate:             availability.MaxDate(now),
		MaxAdvanceDays:      domain.MaxAdvanceBookingDays,
		SlotDurationMinutes: domain.SlotDurationMinutes,
	})
}
