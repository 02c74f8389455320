package domain

import (
	"time"

	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// BookingStatus статус бронирования относительно текущего момента (вычисляемый, не хранится)
type BookingStatus string

const (
	StatusCompleted BookingStatus = "Completed"
	StatusToday     BookingStatus = "Today"
	StatusUpcoming  BookingStatus = "Upcoming"
)

// Booking запись о бронировании. Создаётся один раз при подтверждении и больше не меняется.
// Данные студии денормализованы на момент бронирования, чтобы последующие
// изменения каталога не влияли на историю.
type Booking struct {
	ID             string                 `json:"id"`
	StudioID       int64                  `json:"studioId"`
	StudioName     string                 `json:"studioName"`
	StudioType     StudioType             `json:"studioType"`
	StudioLocation StudioLocationSnapshot `json:"studioLocation"`
	Date           string                 `json:"date"`     // YYYY-MM-DD
	TimeSlot       types.TimeString       `json:"timeSlot"` // HH:MM
	UserName       string                 `json:"userName"`
	UserEmail      string                 `json:"userEmail"`
	BookingTime    time.Time              `json:"bookingTime"`
	TotalPrice     float64                `json:"totalPrice"`
}

// StudioLocationSnapshot адрес студии на момент бронирования
type StudioLocationSnapshot struct {
	City    string `json:"city"`
	Area    string `json:"area"`
	Address string `json:"address"`
}

// NewStudioLocationSnapshot снимает адрес студии
func NewStudioLocationSnapshot(loc Location) StudioLocationSnapshot {
	return StudioLocationSnapshot{
		City:    loc.City,
		Area:    loc.Area,
		Address: loc.Address,
	}
}

// Matches проверяет совпадение тройки (студия, дата, слот), других правил конфликта нет
func (b *Booking) Matches(studioID int64, date string, slot types.TimeString) bool {
	return b.StudioID == studioID && b.Date == date && b.TimeSlot == slot
}

// StartsAt момент начала бронирования в указанной зоне
func (b *Booking) StartsAt(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateFormat+" "+TimeFormat, b.Date+" "+b.TimeSlot.String(), loc)
}

// Status статус бронирования на момент now
// Бронирования с некорректной датой считаются завершёнными
func (b *Booking) Status(now time.Time) BookingStatus {
	startsAt, err := b.StartsAt(now.Location())
	if err != nil || startsAt.Before(now) {
		return StatusCompleted
	}
	if isSameDay(startsAt, now) {
		return StatusToday
	}
	return StatusUpcoming
}

// IsUpcoming true, если бронирование начинается не раньше now
func (b *Booking) IsUpcoming(now time.Time) bool {
	startsAt, err := b.StartsAt(now.Location())
	if err != nil {
		return false
	}
	return !startsAt.Before(now)
}

// BookingPeriod фильтр списка бронирований по времени
type BookingPeriod string

const (
	PeriodAll      BookingPeriod = "all"
	PeriodUpcoming BookingPeriod = "upcoming"
	PeriodPast     BookingPeriod = "past"
)

// IsValid проверяет значение фильтра
func (p BookingPeriod) IsValid() bool {
	return p == PeriodAll || p == PeriodUpcoming || p == PeriodPast
}

func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
