package blob

import "context"

// Store хранилище сериализованных значений по строковому ключу.
// Значение читается и перезаписывается целиком.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
