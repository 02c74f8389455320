package suggest_areas

import "github.com/m04kA/SMC-StudioBooking/internal/service/catalog"

type CatalogService interface {
	SuggestAreas(query string) []catalog.AreaSuggestion
	Areas() []string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
