package search_studios

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/integrations/location"
	searchStudios "github.com/m04kA/SMC-StudioBooking/internal/usecase/search_studios"
)

// StudioResult HTTP модель студии в выдаче
type StudioResult struct {
	*domain.Studio
	DistanceKm   *float64 `json:"distanceKm,omitempty"`
	DistanceText string   `json:"distanceText,omitempty"`
}

// SearchResponse HTTP response model
type SearchResponse struct {
	Studios         []StudioResult          `json:"studios"`
	Count           int                     `json:"count"`
	TotalInCatalog  int                     `json:"totalInCatalog"`
	ProximityActive bool                    `json:"proximityActive"`
	RadiusKm        float64                 `json:"radiusKm"`
	Location        string                  `json:"location,omitempty"`
	UserLocation    *domain.Coordinates     `json:"userLocation,omitempty"`
	LocationError   *location.LocationError `json:"locationError,omitempty"`
}

// ToUseCaseRequest разбирает query-параметры поверх фильтров по умолчанию
func ToUseCaseRequest(query url.Values, clientIP string) (*searchStudios.Request, error) {
	filters := domain.DefaultSearchFilters()
	filters.Location = query.Get("location")
	filters.Type = domain.StudioType(query.Get("type"))

	floats := []struct {
		name string
		dst  *float64
	}{
		{"radius", &filters.RadiusKm},
		{"minPrice", &filters.MinPrice},
		{"maxPrice", &filters.MaxPrice},
		{"minRating", &filters.MinRating},
	}
	for _, f := range floats {
		if err := parseFloat(query, f.name, f.dst); err != nil {
			return nil, err
		}
	}

	latRaw, lonRaw := query.Get("lat"), query.Get("lon")
	if latRaw != "" || lonRaw != "" {
		var coords domain.Coordinates
		if err := parseFloat(query, "lat", &coords.Latitude); err != nil {
			return nil, err
		}
		if err := parseFloat(query, "lon", &coords.Longitude); err != nil {
			return nil, err
		}
		if latRaw == "" || lonRaw == "" {
			return nil, fmt.Errorf("both lat and lon are required")
		}
		filters.UserLocation = &coords
		filters.UseCurrentLocation = true
	}

	if raw := query.Get("useCurrentLocation"); raw != "" {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("useCurrentLocation: %w", err)
		}
		filters.UseCurrentLocation = enabled
	}

	return &searchStudios.Request{
		Filters:  filters,
		Order:    searchStudios.SortOrder(strings.ToLower(query.Get("sort"))),
		ClientIP: clientIP,
	}, nil
}

func parseFloat(query url.Values, name string, dst *float64) error {
	raw := query.Get(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = value
	return nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *searchStudios.Response) *SearchResponse {
	studios := make([]StudioResult, len(resp.Studios))
	for i, match := range resp.Studios {
		studios[i] = StudioResult{
			Studio:       match.Studio,
			DistanceKm:   match.DistanceKm,
			DistanceText: match.DistanceText,
		}
	}

	return &SearchResponse{
		Studios:         studios,
		Count:           len(studios),
		TotalInCatalog:  resp.TotalInCatalog,
		ProximityActive: resp.ProximityActive,
		RadiusKm:        resp.RadiusKm,
		Location:        resp.Location,
		UserLocation:    resp.UserLocation,
		LocationError:   resp.LocationError,
	}
}
