package catalog

import "errors"

var (
	// ErrStudioNotFound возвращается, когда студии нет в каталоге
	ErrStudioNotFound = errors.New("studio not found")

	// ErrInvalidCatalog возвращается, когда данные каталога не разбираются или противоречивы
	ErrInvalidCatalog = errors.New("catalog: invalid data")
)
