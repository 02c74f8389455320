package get_location

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/integrations/location"
)

type LocationProvider interface {
	Locate(ctx context.Context, clientIP string) (*domain.Coordinates, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// LocationResponse HTTP response model
type LocationResponse struct {
	Coordinates *domain.Coordinates `json:"coordinates"`
}

type Handler struct {
	locator LocationProvider
	logger  Logger
}

// NewHandler locator может быть nil: тогда геолокация считается неподдерживаемой
func NewHandler(locator LocationProvider, logger Logger) *Handler {
	return &Handler{
		locator: locator,
		logger:  logger,
	}
}

// Handle GET /api/v1/location
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientIP := handlers.ClientIP(r)

	var (
		coords *domain.Coordinates
		err    error = location.ErrNotSupported
	)
	if h.locator != nil {
		coords, err = h.locator.Locate(r.Context(), clientIP)
	}
	if err != nil {
		locErr := location.AsLocationError(err)
		h.logger.Warn("GET /location - Location unavailable: ip=%s, kind=%s", clientIP, locErr.Kind)
		handlers.RespondJSON(w, statusFor(locErr.Kind), locErr)
		return
	}

	h.logger.Info("GET /location - Location resolved: ip=%s", clientIP)
	handlers.RespondJSON(w, http.StatusOK, &LocationResponse{Coordinates: coords})
}

func statusFor(kind location.ErrorKind) int {
	switch kind {
	case location.KindPermissionDenied:
		return http.StatusForbidden
	case location.KindTimeout:
		return http.StatusGatewayTimeout
	case location.KindPositionUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}
