package get_available_slots

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/service/availability"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StudioID <= 0 {
		return fmt.Errorf("%w: studioID must be positive", ErrInvalidInput)
	}
	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}

// validateDate проверяет, что дата в окне бронирования
func validateDate(date string, now time.Time) error {
	_, err := availability.ValidateDate(date, now)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, availability.ErrInvalidDate):
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	default:
		return fmt.Errorf("%w: %v", ErrDateOutOfRange, err)
	}
}
