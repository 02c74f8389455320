package watch_availability

import (
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/session"
)

type CatalogService interface {
	GetByID(id int64) (*domain.Studio, error)
}

// SessionFactory открывает сессию бронирования для студии
type SessionFactory func(studio *domain.Studio) *session.Session

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
