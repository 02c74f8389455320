package blob

import "errors"

var (
	// ErrNotFound возвращается, когда по ключу ничего не записано
	ErrNotFound = errors.New("blob.store: key not found")

	// ErrInvalidKey возвращается для пустого или небезопасного ключа
	ErrInvalidKey = errors.New("blob.store: invalid key")

	// ErrRead возвращается при ошибке чтения из хранилища
	ErrRead = errors.New("blob.store: failed to read value")

	// ErrWrite возвращается при ошибке записи в хранилище
	ErrWrite = errors.New("blob.store: failed to write value")

	// ErrUnknownBackend возвращается для неизвестного типа хранилища в конфигурации
	ErrUnknownBackend = errors.New("blob.store: unknown backend")
)
