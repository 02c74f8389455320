package create_booking

import (
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-StudioBooking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model (данные формы бронирования)
type CreateBookingRequest struct {
	StudioID  int64  `json:"studioId"`
	Date      string `json:"date"`     // "2025-06-02"
	TimeSlot  string `json:"timeSlot"` // "14:00"
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	*domain.Booking
	DateDisplay string `json:"dateDisplay"`
	TimeDisplay string `json:"timeDisplay"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		StudioID:  r.StudioID,
		Date:      r.Date,
		TimeSlot:  r.TimeSlot,
		UserName:  r.UserName,
		UserEmail: r.UserEmail,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		Booking:     resp.Booking,
		DateDisplay: resp.DateDisplay,
		TimeDisplay: resp.TimeDisplay,
	}
}
