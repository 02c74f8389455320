package events

import (
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// BookingCreatedQueue очередь событий о новых бронированиях
const BookingCreatedQueue = "booking.created"

// BookingCreatedEvent событие о подтверждённом бронировании
type BookingCreatedEvent struct {
	BookingID  string    `json:"bookingId"`
	StudioID   int64     `json:"studioId"`
	StudioName string    `json:"studioName"`
	StudioType string    `json:"studioType"`
	Area       string    `json:"area"`
	Date       string    `json:"date"`
	TimeSlot   string    `json:"timeSlot"`
	UserName   string    `json:"userName"`
	UserEmail  string    `json:"userEmail"`
	TotalPrice float64   `json:"totalPrice"`
	BookedAt   time.Time `json:"bookedAt"`
}

// NewBookingCreatedEvent собирает событие из сохранённого бронирования
func NewBookingCreatedEvent(b *domain.Booking) BookingCreatedEvent {
	return BookingCreatedEvent{
		BookingID:  b.ID,
		StudioID:   b.StudioID,
		StudioName: b.StudioName,
		StudioType: string(b.StudioType),
		Area:       b.StudioLocation.Area,
		Date:       b.Date,
		TimeSlot:   b.TimeSlot.String(),
		UserName:   b.UserName,
		UserEmail:  b.UserEmail,
		TotalPrice: b.TotalPrice,
		BookedAt:   b.BookingTime,
	}
}
