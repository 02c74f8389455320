package search_studios

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/integrations/location"
)

// UseCase use case поиска студий по фильтрам
type UseCase struct {
	catalog CatalogService
	locator LocationProvider
	logger  Logger
}

// NewUseCase создает новый экземпляр use case. locator может быть nil: тогда поиск
// по близости работает только с координатами из запроса.
func NewUseCase(catalog CatalogService, locator LocationProvider, logger Logger) *UseCase {
	return &UseCase{
		catalog: catalog,
		locator: locator,
		logger:  logger,
	}
}

// Execute выполняет поиск. Ошибка определения местоположения не прерывает поиск:
// она возвращается в ответе, а фильтрация идёт по тексту района.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SearchStudios: validation failed: %v", err)
		return nil, err
	}

	filters := req.Filters
	resp := &Response{}

	if filters.UseCurrentLocation && filters.UserLocation == nil {
		coords, err := uc.resolveLocation(ctx, req.ClientIP)
		if err != nil {
			resp.LocationError = location.AsLocationError(err)
			filters.UseCurrentLocation = false
			uc.logger.Warn("SearchStudios: location unavailable (%s), falling back to area filter", resp.LocationError.Kind)
		} else {
			filters.UserLocation = coords
		}
	}

	studios := uc.catalog.List()
	resp.Studios = Search(studios, filters, req.Order)
	resp.TotalInCatalog = len(studios)
	resp.ProximityActive = filters.ProximityActive()
	resp.RadiusKm = filters.RadiusKm
	if resp.ProximityActive {
		resp.UserLocation = filters.UserLocation
	} else {
		resp.Location = filters.Location
	}

	uc.logger.Info("SearchStudios: area=%q type=%q price=%.0f-%.0f rating>=%.1f proximity=%t -> %d of %d",
		filters.Location, filters.Type, filters.MinPrice, filters.MaxPrice, filters.MinRating,
		resp.ProximityActive, len(resp.Studios), resp.TotalInCatalog)

	return resp, nil
}

func (uc *UseCase) resolveLocation(ctx context.Context, clientIP string) (*domain.Coordinates, error) {
	if uc.locator == nil {
		return nil, location.ErrNotSupported
	}
	return uc.locator.Locate(ctx, clientIP)
}
