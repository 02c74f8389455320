package export_bookings

import (
	"context"
	"io"
)

type BookingService interface {
	Export(ctx context.Context, w io.Writer) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
