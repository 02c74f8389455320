package session

import "errors"

var (
	// ErrClosed возвращается при обращении к закрытой сессии
	ErrClosed = errors.New("session: closed")

	// ErrAlreadyStarted возвращается при повторном запуске обновления
	ErrAlreadyStarted = errors.New("session: refresher already started")
)
