package get_available_slots

import (
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// Request модель запроса на получение слотов
type Request struct {
	StudioID int64  // ID студии
	Date     string // Дата в формате YYYY-MM-DD
}

// Response модель ответа со слотами студии на дату
type Response struct {
	StudioID       int64
	StudioName     string
	Date           string
	DateDisplay    string // "Sunday, June 1, 2025"
	OperatingHours domain.OperatingHours
	PricePerHour   float64
	Currency       string
	Slots          []Slot
	AvailableCount int
}

// Slot модель часового слота
type Slot struct {
	Time      types.TimeString // Время начала слота (например, "10:00")
	Available bool
	Display   string // "10:00 AM - 11:00 AM"
}
