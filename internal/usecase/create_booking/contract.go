package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/integrations/events"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Append(ctx context.Context, booking *domain.Booking) error
}

// CatalogService интерфейс каталога студий
type CatalogService interface {
	GetByID(id int64) (*domain.Studio, error)
}

// AvailabilityService интерфейс сервиса доступности слотов
type AvailabilityService interface {
	GetAvailableSlots(ctx context.Context, studio *domain.Studio, date string) ([]domain.TimeSlot, error)
}

// EventPublisher интерфейс публикации событий о бронированиях
type EventPublisher interface {
	PublishBookingCreated(ctx context.Context, event events.BookingCreatedEvent) error
}

// MetricsRecorder интерфейс метрик
type MetricsRecorder interface {
	IncBookingCreated(studioType string)
	IncBookingRejected(reason string)
	IncSaveFailure()
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
