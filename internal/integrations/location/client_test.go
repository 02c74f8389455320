package location

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

func TestClient_Locate(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind ErrorKind
		wantLat  float64
	}{
		{name: "success", status: http.StatusOK, body: `{"status":"success","lat":23.78,"lon":90.41}`, wantLat: 23.78},
		{name: "lookup failed", status: http.StatusOK, body: `{"status":"fail","message":"private range"}`, wantKind: KindPositionUnavailable},
		{name: "forbidden", status: http.StatusForbidden, body: `{}`, wantKind: KindPermissionDenied},
		{name: "rate limited", status: http.StatusTooManyRequests, body: ``, wantKind: KindPositionUnavailable},
		{name: "server error", status: http.StatusInternalServerError, body: `boom`, wantKind: KindUnknown},
		{name: "broken json", status: http.StatusOK, body: `{`, wantKind: KindUnknown},
		{name: "out of range", status: http.StatusOK, body: `{"status":"success","lat":123,"lon":0}`, wantKind: KindPositionUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/json/203.0.113.5", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, time.Second, logger.NewNop())
			coords, err := client.Locate(context.Background(), "203.0.113.5")

			if tt.wantKind != "" {
				var locErr *LocationError
				require.True(t, errors.As(err, &locErr))
				assert.Equal(t, tt.wantKind, locErr.Kind)
				assert.Nil(t, coords)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLat, coords.Latitude)
		})
	}
}

func TestClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, 50*time.Millisecond, logger.NewNop())
	_, err := client.Locate(context.Background(), "203.0.113.5")

	locErr := AsLocationError(err)
	assert.Equal(t, KindTimeout, locErr.Kind)
	assert.Equal(t, MessageTimeout, locErr.Message)
}

func TestClient_NotConfigured(t *testing.T) {
	client := NewClient("", time.Second, logger.NewNop())
	_, err := client.Locate(context.Background(), "203.0.113.5")

	locErr := AsLocationError(err)
	assert.Equal(t, KindPositionUnavailable, locErr.Kind)
	assert.Equal(t, "Geolocation is not supported by this browser", locErr.Message)
}

func TestAsLocationError(t *testing.T) {
	assert.Nil(t, AsLocationError(nil))

	locErr := AsLocationError(errors.New("weird"))
	assert.Equal(t, KindUnknown, locErr.Kind)
	assert.Equal(t, "An unknown error occurred", locErr.Message)

	wrapped := AsLocationError(NewError(KindPermissionDenied, nil))
	assert.Equal(t, "Location access denied. Please enable location services and try again.", wrapped.Message)
}
