// Package api HTTP-маршруты сервиса бронирования студий
package api

import (
	"net/http"

	"github.com/gorilla/mux"

	createBookingHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/create_booking"
	exportBookingsHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/export_bookings"
	getAvailableSlotsHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_booking"
	getBookingWindowHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_booking_window"
	getLocationHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_location"
	getStudioHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_studio"
	listBookingsHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/list_bookings"
	listStudioTypesHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/list_studio_types"
	searchStudiosHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/search_studios"
	suggestAreasHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/suggest_areas"
	watchAvailabilityHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/watch_availability"
	"github.com/m04kA/SMC-StudioBooking/internal/api/middleware"
)

// Handlers обработчики всех маршрутов API
type Handlers struct {
	SearchStudios     *searchStudiosHandler.Handler
	GetStudio         *getStudioHandler.Handler
	SuggestAreas      *suggestAreasHandler.Handler
	ListStudioTypes   *listStudioTypesHandler.Handler
	GetAvailableSlots *getAvailableSlotsHandler.Handler
	WatchAvailability *watchAvailabilityHandler.Handler
	CreateBooking     *createBookingHandler.Handler
	ListBookings      *listBookingsHandler.Handler
	GetBooking        *getBookingHandler.Handler
	ExportBookings    *exportBookingsHandler.Handler
	GetLocation       *getLocationHandler.Handler
	GetBookingWindow  *getBookingWindowHandler.Handler
}

// Options сквозные настройки роутера
type Options struct {
	Logger      middleware.Logger
	Metrics     middleware.MetricsRecorder // nil отключает HTTP-метрики
	MetricsPath string
	MetricsHTTP http.Handler // обработчик /metrics, nil если метрики выключены
}

// NewRouter собирает роутер с middleware и маршрутами /api/v1
func NewRouter(h Handlers, opts Options) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.Recover(opts.Logger))
	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))
	}
	r.Use(middleware.Logging(opts.Logger))

	if opts.MetricsHTTP != nil && opts.MetricsPath != "" {
		r.Handle(opts.MetricsPath, opts.MetricsHTTP).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Каталог и поиск ---
	api.HandleFunc("/studios", h.SearchStudios.Handle).Methods(http.MethodGet)
	api.HandleFunc("/studios/areas", h.SuggestAreas.Handle).Methods(http.MethodGet)
	api.HandleFunc("/studios/{studioId:[0-9]+}", h.GetStudio.Handle).Methods(http.MethodGet)
	api.HandleFunc("/studio-types", h.ListStudioTypes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/location", h.GetLocation.Handle).Methods(http.MethodGet)

	// --- Доступность ---
	api.HandleFunc("/booking-window", h.GetBookingWindow.Handle).Methods(http.MethodGet)
	api.HandleFunc("/studios/{studioId:[0-9]+}/available-slots", h.GetAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/studios/{studioId:[0-9]+}/availability/ws", h.WatchAvailability.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", h.CreateBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", h.ListBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/export", h.ExportBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", h.GetBooking.Handle).Methods(http.MethodGet)

	return r
}
