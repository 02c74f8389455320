package get_location

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/integrations/location"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

type stubLocator struct {
	coords *domain.Coordinates
	err    error
	ip     string
}

func (s *stubLocator) Locate(_ context.Context, clientIP string) (*domain.Coordinates, error) {
	s.ip = clientIP
	return s.coords, s.err
}

func TestHandler_Resolved(t *testing.T) {
	locator := &stubLocator{coords: &domain.Coordinates{Latitude: 23.79, Longitude: 90.41}}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/location", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	rec := httptest.NewRecorder()
	NewHandler(locator, logger.NewNop()).Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "203.0.113.7", locator.ip)

	var resp LocationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, locator.coords, resp.Coordinates)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   location.ErrorKind
	}{
		{"denied", location.NewError(location.KindPermissionDenied, nil), http.StatusForbidden, location.KindPermissionDenied},
		{"timeout", location.NewError(location.KindTimeout, context.DeadlineExceeded), http.StatusGatewayTimeout, location.KindTimeout},
		{"unavailable", location.NewError(location.KindPositionUnavailable, nil), http.StatusServiceUnavailable, location.KindPositionUnavailable},
		{"plain error", errors.New("dns failure"), http.StatusBadGateway, location.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHandler(&stubLocator{err: tt.err}, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/location", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body location.LocationError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantKind, body.Kind)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestHandler_NoLocator(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(nil, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/location", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), location.MessageNotSupported)
}
