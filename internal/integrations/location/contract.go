package location

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// Provider источник координат пользователя
type Provider interface {
	Locate(ctx context.Context, clientIP string) (*domain.Coordinates, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
