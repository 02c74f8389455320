package search_studios

import (
	"fmt"
	"math"
	"strings"

	"github.com/m04kA/SMC-StudioBooking/pkg/geo"
)

// validateRequest валидирует параметры поиска и приводит их к каноническому виду
func validateRequest(req *Request) error {
	f := &req.Filters
	f.Location = strings.TrimSpace(f.Location)

	numbers := []struct {
		name  string
		value float64
	}{
		{"radius", f.RadiusKm},
		{"minPrice", f.MinPrice},
		{"maxPrice", f.MaxPrice},
		{"minRating", f.MinRating},
	}
	for _, n := range numbers {
		if math.IsNaN(n.value) || math.IsInf(n.value, 0) {
			return fmt.Errorf("%w: %s must be a finite number", ErrInvalidInput, n.name)
		}
	}

	if f.RadiusKm < 0 {
		return fmt.Errorf("%w: radius must not be negative", ErrInvalidInput)
	}
	if f.MinPrice < 0 || f.MaxPrice < 0 {
		return fmt.Errorf("%w: price bounds must not be negative", ErrInvalidInput)
	}
	if f.MinRating < 0 || f.MinRating > 5 {
		return fmt.Errorf("%w: minRating must be between 0 and 5", ErrInvalidInput)
	}
	if f.Type != "" && !f.Type.IsValid() {
		return fmt.Errorf("%w: unknown studio type %q", ErrInvalidInput, f.Type)
	}
	if f.UserLocation != nil && !geo.IsValidCoordinate(f.UserLocation.Latitude, f.UserLocation.Longitude) {
		return fmt.Errorf("%w: coordinates out of range", ErrInvalidInput)
	}

	if req.Order == "" {
		req.Order = SortRating
	}
	if !req.Order.IsValid() {
		return fmt.Errorf("%w: unknown sort order %q", ErrInvalidInput, req.Order)
	}

	return nil
}
