package availability

import "errors"

var (
	// ErrInvalidOperatingHours возвращается, когда часы работы студии не разбираются
	ErrInvalidOperatingHours = errors.New("invalid operating hours")

	// ErrDateRequired возвращается, когда дата не выбрана
	ErrDateRequired = errors.New("date is required")

	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrDateInPast возвращается для даты раньше сегодняшней
	ErrDateInPast = errors.New("date is in the past")

	// ErrDateTooFarInFuture возвращается для даты позже окна бронирования
	ErrDateTooFarInFuture = errors.New("date is too far in the future")

	// ErrTimeRequired возвращается, когда время не выбрано
	ErrTimeRequired = errors.New("time slot is required")

	// ErrOutsideOperatingHours возвращается, когда время вне часов работы студии
	ErrOutsideOperatingHours = errors.New("time is outside studio operating hours")

	// ErrSlotNotAvailable возвращается, когда слот уже занят
	ErrSlotNotAvailable = errors.New("time slot is not available")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

// Тексты ошибок для пользователя, выводятся рядом с полем формы
const (
	MessageDateRequired          = "Please select a date"
	MessageInvalidDate           = "Please select a date within the next 30 days"
	MessageTimeRequired          = "Please select a time slot"
	MessageOutsideOperatingHours = "The selected time is outside studio operating hours"
	MessageSlotNotAvailable      = "The selected time slot is not available. Please choose another time"
)

// Message текст для пользователя по ошибке проверки даты или времени.
// Для прочих ошибок возвращает пустую строку.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrDateRequired):
		return MessageDateRequired
	case errors.Is(err, ErrInvalidDate), errors.Is(err, ErrDateInPast), errors.Is(err, ErrDateTooFarInFuture):
		return MessageInvalidDate
	case errors.Is(err, ErrTimeRequired):
		return MessageTimeRequired
	case errors.Is(err, ErrOutsideOperatingHours):
		return MessageOutsideOperatingHours
	case errors.Is(err, ErrSlotNotAvailable):
		return MessageSlotNotAvailable
	default:
		return ""
	}
}
