// Package display форматирование дат и времени бронирований для клиента
package display

import (
	"time"

	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

const (
	dateLayout = "2006-01-02"
	longDate   = "Monday, January 2, 2006"
	clock12h   = "3:04 PM"
)

// FormatDate "2025-06-01" -> "Sunday, June 1, 2025"
// Некорректная дата возвращается как есть
func FormatDate(date string) string {
	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	return parsed.Format(longDate)
}

// FormatTime "13:00" -> "1:00 PM"
func FormatTime(t types.TimeString) string {
	minutes := t.Minutes()
	if minutes < 0 {
		return t.String()
	}
	return clockAt(minutes).Format(clock12h)
}

// FormatTimeRange отображает часовой слот: "13:00" -> "1:00 PM - 2:00 PM"
func FormatTimeRange(start types.TimeString, durationMinutes int) string {
	minutes := start.Minutes()
	if minutes < 0 {
		return start.String()
	}
	// Конец слота может перейти через полночь, time.Time переносит дату сам
	end := clockAt(minutes + durationMinutes)
	return clockAt(minutes).Format(clock12h) + " - " + end.Format(clock12h)
}

func clockAt(minutes int) time.Time {
	return time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(minutes) * time.Minute)
}
