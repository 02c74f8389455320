package domain

import "github.com/m04kA/SMC-StudioBooking/pkg/types"

// TimeSlot часовой интервал с отметкой доступности. Вычисляется по запросу, не хранится.
type TimeSlot struct {
	Time      types.TimeString `json:"time"`
	Available bool             `json:"available"`
}

// CountAvailable количество свободных слотов
func CountAvailable(slots []TimeSlot) int {
	count := 0
	for _, slot := range slots {
		if slot.Available {
			count++
		}
	}
	return count
}
