package models

import (
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/display"
)

// ListRequest параметры списка бронирований
type ListRequest struct {
	Period domain.BookingPeriod // all | upcoming | past, пусто = all
	Search string               // подстрока имени, email или названия студии
}

// BookingResponse бронирование со статусом на текущий момент
type BookingResponse struct {
	ID             string                        `json:"id"`
	StudioID       int64                         `json:"studioId"`
	StudioName     string                        `json:"studioName"`
	StudioType     domain.StudioType             `json:"studioType"`
	StudioLocation domain.StudioLocationSnapshot `json:"studioLocation"`
	Date           string                        `json:"date"`
	TimeSlot       string                        `json:"timeSlot"`
	UserName       string                        `json:"userName"`
	UserEmail      string                        `json:"userEmail"`
	BookingTime    time.Time                     `json:"bookingTime"`
	TotalPrice     float64                       `json:"totalPrice"`
	Status         domain.BookingStatus          `json:"status"`
	DateDisplay    string                        `json:"dateDisplay"`
	TimeDisplay    string                        `json:"timeDisplay"`
}

// Summary счётчики по всем бронированиям, без учёта фильтров
type Summary struct {
	Total    int `json:"total"`
	Upcoming int `json:"upcoming"`
	Past     int `json:"past"`
}

// BookingListResponse список бронирований со сводкой
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Summary  Summary           `json:"summary"`
}

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(b *domain.Booking, now time.Time) BookingResponse {
	return BookingResponse{
		ID:             b.ID,
		StudioID:       b.StudioID,
		StudioName:     b.StudioName,
		StudioType:     b.StudioType,
		StudioLocation: b.StudioLocation,
		Date:           b.Date,
		TimeSlot:       b.TimeSlot.String(),
		UserName:       b.UserName,
		UserEmail:      b.UserEmail,
		BookingTime:    b.BookingTime,
		TotalPrice:     b.TotalPrice,
		Status:         b.Status(now),
		DateDisplay:    display.FormatDate(b.Date),
		TimeDisplay:    display.FormatTimeRange(b.TimeSlot, domain.SlotDurationMinutes),
	}
}
