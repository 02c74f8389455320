package session

import (
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// Snapshot состояние сессии, отправляемое подписчикам
type Snapshot struct {
	StudioID       int64              `json:"studioId"`
	Date           string             `json:"date"`
	SelectedTime   types.TimeString   `json:"selectedTime"`
	Slots          []domain.TimeSlot  `json:"slots"`
	AvailableCount int                `json:"availableCount"`
	Errors         domain.FieldErrors `json:"errors"`
	Booking        *domain.Booking    `json:"booking,omitempty"`
	Closed         bool               `json:"closed"`
}

// Contact данные пользователя для отправки формы
type Contact struct {
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
}
