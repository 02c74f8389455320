package booking

import (
	"context"
)

// BlobStore хранилище сериализованной коллекции бронирований
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
