package create_booking

import "errors"

// MessageSaveFailed общее сообщение при ошибке записи, пользователь может повторить отправку
const MessageSaveFailed = "Failed to save booking. Please try again."

var (
	// ErrStudioNotFound возвращается, когда студия не найдена в каталоге
	ErrStudioNotFound = errors.New("create_booking: studio not found")

	// ErrSaveFailed возвращается, когда бронирование не удалось записать в хранилище
	ErrSaveFailed = errors.New("create_booking: failed to save booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
