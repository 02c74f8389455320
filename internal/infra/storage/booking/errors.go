package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrLoad возвращается при ошибке чтения коллекции из хранилища
	ErrLoad = errors.New("booking.repository: failed to load bookings")

	// ErrCorruptData возвращается, когда сохранённая коллекция не разбирается.
	// Повреждённые данные не перезаписываются.
	ErrCorruptData = errors.New("booking.repository: stored bookings are corrupt")

	// ErrSave возвращается при ошибке записи коллекции
	ErrSave = errors.New("booking.repository: failed to save bookings")

	// ErrInvalidBooking возвращается при попытке сохранить бронирование без id
	ErrInvalidBooking = errors.New("booking.repository: invalid booking")
)
