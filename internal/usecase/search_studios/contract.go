package search_studios

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// CatalogService интерфейс каталога студий
type CatalogService interface {
	List() []*domain.Studio
}

// LocationProvider интерфейс определения координат пользователя
type LocationProvider interface {
	Locate(ctx context.Context, clientIP string) (*domain.Coordinates, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
