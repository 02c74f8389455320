package search_studios

import (
	"context"

	searchStudios "github.com/m04kA/SMC-StudioBooking/internal/usecase/search_studios"
)

type SearchStudiosUseCase interface {
	Execute(ctx context.Context, req *searchStudios.Request) (*searchStudios.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
