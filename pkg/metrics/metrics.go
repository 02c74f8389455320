package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics коллекторы Prometheus сервиса бронирования студий.
// Методы безопасно вызывать на nil (метрики выключены).
type Metrics struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	bookingsCreated  *prometheus.CounterVec
	bookingsRejected *prometheus.CounterVec
	saveFailures     prometheus.Counter
	slotQueries      prometheus.Counter
	activeSessions   prometheus.Gauge

	dbQueries  *prometheus.CounterVec
	dbDuration *prometheus.HistogramVec
}

// New создает метрики и регистрирует их в DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegisterer создает метрики в указанном реестре (в тестах используется отдельный реестр)
func NewWithRegisterer(reg prometheus.Registerer, serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests.",
				ConstLabels: constLabels,
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request latency.",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		bookingsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "bookings_created_total",
				Help:        "Bookings successfully stored, by studio type.",
				ConstLabels: constLabels,
			},
			[]string{"studio_type"},
		),
		bookingsRejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "bookings_rejected_total",
				Help:        "Booking submissions rejected, by reason.",
				ConstLabels: constLabels,
			},
			[]string{"reason"},
		),
		saveFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name:        "booking_store_save_failures_total",
				Help:        "Failed writes of the booking collection.",
				ConstLabels: constLabels,
			},
		),
		slotQueries: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name:        "slot_queries_total",
				Help:        "Availability computations.",
				ConstLabels: constLabels,
			},
		),
		activeSessions: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name:        "booking_sessions_active",
				Help:        "Open booking interactions with a running availability refresher.",
				ConstLabels: constLabels,
			},
		),
		dbQueries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "db_queries_total",
				Help:        "SQL statements executed, by operation and outcome.",
				ConstLabels: constLabels,
			},
			[]string{"operation", "status"},
		),
		dbDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "db_query_duration_seconds",
				Help:        "SQL statement latency.",
				ConstLabels: constLabels,
				Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"operation"},
		),
	}

	reg.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.bookingsCreated,
		m.bookingsRejected,
		m.saveFailures,
		m.slotQueries,
		m.activeSessions,
		m.dbQueries,
		m.dbDuration,
	)

	return m
}

// ObserveHTTPRequest фиксирует один обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) IncBookingCreated(studioType string) {
	if m == nil {
		return
	}
	m.bookingsCreated.WithLabelValues(studioType).Inc()
}

func (m *Metrics) IncBookingRejected(reason string) {
	if m == nil {
		return
	}
	m.bookingsRejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) IncSaveFailure() {
	if m == nil {
		return
	}
	m.saveFailures.Inc()
}

func (m *Metrics) IncSlotQuery() {
	if m == nil {
		return
	}
	m.slotQueries.Inc()
}

func (m *Metrics) SessionOpened() {
	if m == nil {
		return
	}
	m.activeSessions.Inc()
}

func (m *Metrics) SessionClosed() {
	if m == nil {
		return
	}
	m.activeSessions.Dec()
}

// ObserveDBQuery фиксирует выполнение SQL запроса
func (m *Metrics) ObserveDBQuery(operation string, err error, duration time.Duration) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.dbQueries.WithLabelValues(operation, status).Inc()
	m.dbDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
