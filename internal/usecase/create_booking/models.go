package create_booking

import (
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// Request модель запроса на создание бронирования (данные формы)
type Request struct {
	StudioID  int64  `json:"studioId"`
	Date      string `json:"date" validate:"required"`
	TimeSlot  string `json:"timeSlot" validate:"required"`
	UserName  string `json:"userName" validate:"required,min=2"`
	UserEmail string `json:"userEmail" validate:"required,booking_email"`
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking

	// Отображение для экрана подтверждения
	DateDisplay string // "Monday, June 2, 2025"
	TimeDisplay string // "2:00 PM - 3:00 PM"
}
