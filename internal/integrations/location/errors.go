package location

import (
	"errors"
	"fmt"
)

// ErrorKind вид ошибки определения местоположения
type ErrorKind string

const (
	KindPermissionDenied    ErrorKind = "PERMISSION_DENIED"
	KindPositionUnavailable ErrorKind = "POSITION_UNAVAILABLE"
	KindTimeout             ErrorKind = "TIMEOUT"
	KindUnknown             ErrorKind = "UNKNOWN"
)

// Сообщения для пользователя по видам ошибок
const (
	MessagePermissionDenied    = "Location access denied. Please enable location services and try again."
	MessagePositionUnavailable = "Location information is unavailable. Please try again later."
	MessageTimeout             = "Location request timed out. Please try again."
	MessageUnknown             = "An unknown error occurred"
	MessageNotSupported        = "Geolocation is not supported by this browser"
)

// LocationError ошибка определения местоположения, показывается рядом с переключателем поиска по близости
type LocationError struct {
	Kind    ErrorKind `json:"type"`
	Message string    `json:"message"`
	cause   error
}

func (e *LocationError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("location %s: %v", e.Kind, e.cause)
	}
	return fmt.Sprintf("location %s: %s", e.Kind, e.Message)
}

func (e *LocationError) Unwrap() error {
	return e.cause
}

// NewError создает ошибку указанного вида со стандартным сообщением
func NewError(kind ErrorKind, cause error) *LocationError {
	return &LocationError{Kind: kind, Message: messageFor(kind), cause: cause}
}

// ErrNotSupported провайдер местоположения не настроен
var ErrNotSupported = &LocationError{Kind: KindPositionUnavailable, Message: MessageNotSupported}

// AsLocationError приводит любую ошибку к LocationError (неизвестные ошибки получают вид UNKNOWN)
func AsLocationError(err error) *LocationError {
	if err == nil {
		return nil
	}
	var locErr *LocationError
	if errors.As(err, &locErr) {
		return locErr
	}
	return NewError(KindUnknown, err)
}

func messageFor(kind ErrorKind) string {
	switch kind {
	case KindPermissionDenied:
		return MessagePermissionDenied
	case KindPositionUnavailable:
		return MessagePositionUnavailable
	case KindTimeout:
		return MessageTimeout
	default:
		return MessageUnknown
	}
}
