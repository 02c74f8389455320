package domain

import "time"

// Параметры слотов и окна бронирования
const (
	SlotDurationMinutes   = 60
	MaxAdvanceBookingDays = 30
	MinUserNameLength     = 2
)

// Значения фильтров поиска по умолчанию
const (
	DefaultRadiusKm  = 10.0
	DefaultMinPrice  = 0.0
	DefaultMaxPrice  = 5000.0
	DefaultMinRating = 0.0
)

// BookingsStorageKey ключ, под которым хранится сериализованная коллекция бронирований
const BookingsStorageKey = "studioBookings"

// Тайминги взаимодействия с клиентом
const (
	AvailabilityRefreshInterval = 30 * time.Second
	LocationTimeout             = 10 * time.Second
	LocationMaximumAge          = 5 * time.Minute
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
