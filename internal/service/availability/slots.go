package availability

import (
	"fmt"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// GenerateSlots генерирует сетку часовых слотов от открытия до закрытия.
// Слот попадает в сетку, только если целиком заканчивается не позже закрытия,
// поэтому для пары open/close получается floor((close-open)/60) слотов.
// Все слоты изначально свободны. При close <= open сетка пуста.
func GenerateSlots(open, close types.TimeString) ([]domain.TimeSlot, error) {
	if err := open.Validate(); err != nil {
		return nil, fmt.Errorf("%w: open %q: %v", ErrInvalidOperatingHours, open, err)
	}
	if err := close.Validate(); err != nil {
		return nil, fmt.Errorf("%w: close %q: %v", ErrInvalidOperatingHours, close, err)
	}

	slots := make([]domain.TimeSlot, 0)
	for start := open.Minutes(); start+domain.SlotDurationMinutes <= close.Minutes(); start += domain.SlotDurationMinutes {
		slotTime, err := types.FromMinutes(start)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidOperatingHours, err)
		}
		slots = append(slots, domain.TimeSlot{Time: slotTime, Available: true})
	}

	return slots, nil
}

// ContainingSlot возвращает начало слота сетки, в который попадает время t.
// Время вне [open, close) или в хвосте дня, не покрытом целым слотом, отклоняется.
func ContainingSlot(hours domain.OperatingHours, t types.TimeString) (types.TimeString, error) {
	if t.Minutes() < 0 {
		return "", fmt.Errorf("%w: %q", ErrOutsideOperatingHours, t)
	}
	if !hours.Contains(t) {
		return "", ErrOutsideOperatingHours
	}

	open := hours.Open.Minutes()
	start := open + (t.Minutes()-open)/domain.SlotDurationMinutes*domain.SlotDurationMinutes
	if start+domain.SlotDurationMinutes > hours.Close.Minutes() {
		return "", ErrOutsideOperatingHours
	}

	return types.FromMinutes(start)
}

// ValidateSelection проверяет выбранное время против часов работы и текущих слотов.
// Возвращает слот сетки, которому соответствует выбор (17:30 при открытии в 10:00 даёт 17:00).
// Проверка идемпотентна и может только понизить выбор до недопустимого.
func ValidateSelection(studio *domain.Studio, slots []domain.TimeSlot, selected types.TimeString) (types.TimeString, error) {
	if selected == "" {
		return "", ErrTimeRequired
	}

	slotTime, err := ContainingSlot(studio.Availability, selected)
	if err != nil {
		return "", err
	}

	for _, slot := range slots {
		if slot.Time == slotTime && !slot.Available {
			return "", ErrSlotNotAvailable
		}
	}

	return slotTime, nil
}
