package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer(reg, "studio-booking")

	m.IncBookingCreated("Photography")
	m.IncBookingCreated("Photography")
	m.IncBookingRejected("slot_not_available")
	m.IncSaveFailure()
	m.IncSlotQuery()
	m.SessionOpened()
	m.SessionOpened()
	m.SessionClosed()
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/studios", http.StatusOK, 15*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookingsCreated.WithLabelValues("Photography")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingsRejected.WithLabelValues("slot_not_available")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.saveFailures))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.slotQueries))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.activeSessions))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/v1/studios", "200")))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestMetrics_ObserveDBQuery(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer(reg, "studio-booking")

	m.ObserveDBQuery("select", nil, 2*time.Millisecond)
	m.ObserveDBQuery("insert", assert.AnError, 3*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.dbQueries.WithLabelValues("select", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dbQueries.WithLabelValues("insert", "error")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncSlotQuery()
		m.IncBookingCreated("Photography")
		m.SessionOpened()
		m.ObserveDBQuery("select", nil, time.Millisecond)
		m.ObserveHTTPRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
	})
}
