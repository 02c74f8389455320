package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/SMC-StudioBooking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	StudioID       int64           `json:"studioId"`
	StudioName     string          `json:"studioName"`
	Date           string          `json:"date"`
	DateDisplay    string          `json:"dateDisplay"`
	Open           string          `json:"open"`
	Close          string          `json:"close"`
	PricePerHour   float64         `json:"pricePerHour"`
	Currency       string          `json:"currency"`
	AvailableCount int             `json:"availableCount"`
	Slots          []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Display   string `json:"display"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Time:      slot.Time.String(),
			Available: slot.Available,
			Display:   slot.Display,
		}
	}

	return &AvailableSlotsResponse{
		StudioID:       resp.StudioID,
		StudioName:     resp.StudioName,
		Date:           resp.Date,
		DateDisplay:    resp.DateDisplay,
		Open:           resp.OperatingHours.Open.String(),
		Close:          resp.OperatingHours.Close.String(),
		PricePerHour:   resp.PricePerHour,
		Currency:       resp.Currency,
		AvailableCount: resp.AvailableCount,
		Slots:          slots,
	}
}
