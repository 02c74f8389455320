package export_bookings

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service BookingService
	logger  Logger
	now     func() time.Time
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		now:     time.Now,
	}
}

// Handle GET /api/v1/bookings/export
// Книга собирается в памяти целиком, чтобы ошибка не обрывала уже начатый ответ
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.service.Export(r.Context(), &buf); err != nil {
		h.logger.Error("GET /bookings/export - Failed to export bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	filename := fmt.Sprintf("bookings_%s.xlsx", h.now().Format("2006-01-02"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("GET /bookings/export - Failed to write response: %v", err)
		return
	}

	h.logger.Info("GET /bookings/export - Export sent: %s", filename)
}
