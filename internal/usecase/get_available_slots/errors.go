package get_available_slots

import "errors"

var (
	// ErrStudioNotFound возвращается, когда студия не найдена в каталоге
	ErrStudioNotFound = errors.New("studio not found")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrDateOutOfRange возвращается, когда дата вне окна бронирования
	ErrDateOutOfRange = errors.New("date is outside the booking window")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
