package domain

// SearchFilters состояние фильтров поиска. Не сохраняется.
type SearchFilters struct {
	Location           string       // подстрока района (без учёта регистра)
	RadiusKm           float64      // радиус поиска рядом с пользователем
	Type               StudioType   // пусто, если все категории
	MinPrice           float64      // включительно
	MaxPrice           float64      // включительно
	MinRating          float64      // 0 отключает фильтр
	UserLocation       *Coordinates // координаты пользователя (если известны)
	UseCurrentLocation bool         // включён поиск по близости
}

// DefaultSearchFilters фильтры, с которыми открывается страница поиска
func DefaultSearchFilters() SearchFilters {
	return SearchFilters{
		RadiusKm:  DefaultRadiusKm,
		MinPrice:  DefaultMinPrice,
		MaxPrice:  DefaultMaxPrice,
		MinRating: DefaultMinRating,
	}
}

// ProximityActive поиск по радиусу включён и координаты известны
func (f SearchFilters) ProximityActive() bool {
	return f.UseCurrentLocation && f.UserLocation != nil
}
