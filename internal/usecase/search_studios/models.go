package search_studios

import (
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/integrations/location"
)

// Request модель запроса поиска студий
type Request struct {
	Filters  domain.SearchFilters
	Order    SortOrder // пустое значение означает SortRating
	ClientIP string    // для определения местоположения, если координаты не переданы
}

// Response модель ответа поиска
type Response struct {
	Studios         []Match
	TotalInCatalog  int
	ProximityActive bool
	RadiusKm        float64
	Location        string                  // применённый текстовый фильтр района
	UserLocation    *domain.Coordinates     // координаты, по которым считались расстояния
	LocationError   *location.LocationError // ошибка определения местоположения (поиск продолжается без неё)
}
