package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// CatalogService интерфейс каталога студий
type CatalogService interface {
	GetByID(id int64) (*domain.Studio, error)
}

// AvailabilityService интерфейс сервиса доступности слотов
type AvailabilityService interface {
	GetAvailableSlots(ctx context.Context, studio *domain.Studio, date string) ([]domain.TimeSlot, error)
}

// MetricsRecorder интерфейс метрик (может быть nil)
type MetricsRecorder interface {
	IncSlotQuery()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
