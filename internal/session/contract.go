package session

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/usecase/create_booking"
)

// AvailabilityService интерфейс сервиса доступности слотов
type AvailabilityService interface {
	GetAvailableSlots(ctx context.Context, studio *domain.Studio, date string) ([]domain.TimeSlot, error)
}

// BookingCreator создание бронирования (create_booking.UseCase)
type BookingCreator interface {
	Execute(ctx context.Context, req *create_booking.Request) (*create_booking.Response, error)
}

// MetricsRecorder интерфейс метрик
type MetricsRecorder interface {
	SessionOpened()
	SessionClosed()
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
