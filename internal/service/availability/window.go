package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// MinDate первая доступная для бронирования дата (сегодня)
func MinDate(now time.Time) string {
	return now.Format(domain.DateFormat)
}

// MaxDate последняя доступная дата (сегодня + 30 дней)
func MaxDate(now time.Time) string {
	return now.AddDate(0, 0, domain.MaxAdvanceBookingDays).Format(domain.DateFormat)
}

// ValidateDate проверяет, что дата в окне [сегодня, сегодня + 30 дней]
// Сравнение идёт по календарным дням в часовом поясе now.
func ValidateDate(date string, now time.Time) (time.Time, error) {
	if date == "" {
		return time.Time{}, ErrDateRequired
	}

	parsed, err := time.ParseInLocation(domain.DateFormat, date, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if parsed.Before(today) {
		return time.Time{}, ErrDateInPast
	}
	if parsed.After(today.AddDate(0, 0, domain.MaxAdvanceBookingDays)) {
		return time.Time{}, ErrDateTooFarInFuture
	}

	return parsed, nil
}
