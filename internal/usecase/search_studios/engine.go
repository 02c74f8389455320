package search_studios

import (
	"sort"
	"strings"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/geo"
)

// SortOrder дополнительный порядок выдачи
type SortOrder string

const (
	// SortRating по убыванию рейтинга после сортировки по расстоянию (порядок страницы поиска)
	SortRating SortOrder = "rating"
	// SortDistance только по расстоянию (при активном поиске по близости)
	SortDistance SortOrder = "distance"
)

// IsValid проверяет значение порядка
func (o SortOrder) IsValid() bool {
	return o == SortRating || o == SortDistance
}

// Match студия, прошедшая фильтры, с расстоянием до пользователя
type Match struct {
	Studio       *domain.Studio
	DistanceKm   *float64 // только при активном поиске по близости
	DistanceText string
}

// Search применяет фильтры к каталогу. Предикаты проверяются по порядку и объединяются по И:
// местоположение (радиус или подстрока района), категория, цена, рейтинг.
// При активном поиске по близости результат сортируется по расстоянию,
// затем при SortRating стабильно по убыванию рейтинга.
func Search(catalog []*domain.Studio, filters domain.SearchFilters, order SortOrder) []Match {
	proximity := filters.ProximityActive()
	area := strings.ToLower(filters.Location)

	matches := make([]Match, 0, len(catalog))
	for _, studio := range catalog {
		match := Match{Studio: studio}

		if proximity {
			distance := geo.ComputeDistance(
				filters.UserLocation.Latitude,
				filters.UserLocation.Longitude,
				studio.Location.Coordinates.Latitude,
				studio.Location.Coordinates.Longitude,
			)
			if distance > filters.RadiusKm {
				continue
			}
			match.DistanceKm = &distance
			match.DistanceText = geo.FormatDistance(distance)
		} else if area != "" && !strings.Contains(strings.ToLower(studio.Location.Area), area) {
			continue
		}

		if filters.Type != "" && studio.Type != filters.Type {
			continue
		}

		if studio.PricePerHour < filters.MinPrice || studio.PricePerHour > filters.MaxPrice {
			continue
		}

		if filters.MinRating > 0 && studio.Rating < filters.MinRating {
			continue
		}

		matches = append(matches, match)
	}

	if proximity {
		sort.SliceStable(matches, func(i, j int) bool {
			return *matches[i].DistanceKm < *matches[j].DistanceKm
		})
	}

	if order == SortRating {
		sort.SliceStable(matches, func(i, j int) bool {
			return matches[i].Studio.Rating > matches[j].Studio.Rating
		})
	}

	return matches
}
