package get_studio

import "github.com/m04kA/SMC-StudioBooking/internal/domain"

type CatalogService interface {
	GetByID(id int64) (*domain.Studio, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
