// Package geo расчёт расстояний между координатами для поиска студий рядом с пользователем
package geo

import (
	"fmt"
	"math"
)

// EarthRadiusKm средний радиус Земли в километрах
const EarthRadiusKm = 6371.0

// ComputeDistance расстояние по большому кругу (формула гаверсинусов) в километрах,
// округлённое до 2 знаков после запятой
func ComputeDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(EarthRadiusKm*c*100) / 100
}

// FormatDistance форматирует расстояние для отображения:
// меньше километра выводится в метрах, иначе в километрах
func FormatDistance(distanceKm float64) string {
	if distanceKm < 1 {
		return fmt.Sprintf("%dm", int(math.Round(distanceKm*1000)))
	}
	return fmt.Sprintf("%skm", formatFloat(distanceKm))
}

// IsValidCoordinate проверяет диапазоны широты и долготы
func IsValidCoordinate(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// formatFloat печатает число без хвостовых нулей: 2.5 -> "2.5", 3 -> "3"
func formatFloat(v float64) string {
	return fmt.Sprintf("%g", math.Round(v*100)/100)
}
