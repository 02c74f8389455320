package search_studios

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/integrations/location"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) List() []*domain.Studio {
	args := m.Called()
	return args.Get(0).([]*domain.Studio)
}

type MockLocator struct {
	mock.Mock
}

func (m *MockLocator) Locate(ctx context.Context, clientIP string) (*domain.Coordinates, error) {
	args := m.Called(ctx, clientIP)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Coordinates), args.Error(1)
}

func TestUseCase_Execute_TextSearch(t *testing.T) {
	catalog := new(MockCatalog)
	catalog.On("List").Return(testCatalog())
	locator := new(MockLocator)

	uc := NewUseCase(catalog, locator, logger.NewNop())

	filters := domain.DefaultSearchFilters()
	filters.Location = "  Dhanmondi "
	resp, err := uc.Execute(context.Background(), &Request{Filters: filters})
	require.NoError(t, err)

	// порядок по рейтингу: 2 (4.6) раньше 4 (4.1)
	assert.Equal(t, []int64{2, 4}, ids(resp.Studios))
	assert.Equal(t, 6, resp.TotalInCatalog)
	assert.Equal(t, "Dhanmondi", resp.Location)
	assert.False(t, resp.ProximityActive)
	assert.Nil(t, resp.LocationError)
	locator.AssertNotCalled(t, "Locate", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_ResolvesLocation(t *testing.T) {
	catalog := new(MockCatalog)
	catalog.On("List").Return(testCatalog())
	locator := new(MockLocator)
	locator.On("Locate", mock.Anything, "203.0.113.5").
		Return(&domain.Coordinates{Latitude: 23.7925, Longitude: 90.4078}, nil)

	uc := NewUseCase(catalog, locator, logger.NewNop())

	filters := domain.DefaultSearchFilters()
	filters.UseCurrentLocation = true
	filters.RadiusKm = 2
	resp, err := uc.Execute(context.Background(), &Request{Filters: filters, Order: SortDistance, ClientIP: "203.0.113.5"})
	require.NoError(t, err)

	assert.True(t, resp.ProximityActive)
	require.NotNil(t, resp.UserLocation)
	assert.Equal(t, []int64{1, 3}, ids(resp.Studios))
	locator.AssertExpectations(t)
}

func TestUseCase_Execute_LocationFailureFallsBack(t *testing.T) {
	catalog := new(MockCatalog)
	catalog.On("List").Return(testCatalog())
	locator := new(MockLocator)
	locator.On("Locate", mock.Anything, mock.Anything).
		Return(nil, location.NewError(location.KindPermissionDenied, nil))

	uc := NewUseCase(catalog, locator, logger.NewNop())

	filters := domain.DefaultSearchFilters()
	filters.UseCurrentLocation = true
	filters.Location = "uttara"
	resp, err := uc.Execute(context.Background(), &Request{Filters: filters})
	require.NoError(t, err)

	require.NotNil(t, resp.LocationError)
	assert.Equal(t, location.KindPermissionDenied, resp.LocationError.Kind)
	assert.Equal(t, location.MessagePermissionDenied, resp.LocationError.Message)
	assert.False(t, resp.ProximityActive)
	assert.Equal(t, []int64{5}, ids(resp.Studios))
}

func TestUseCase_Execute_NoLocator(t *testing.T) {
	catalog := new(MockCatalog)
	catalog.On("List").Return(testCatalog())

	uc := NewUseCase(catalog, nil, logger.NewNop())

	filters := domain.DefaultSearchFilters()
	filters.UseCurrentLocation = true
	resp, err := uc.Execute(context.Background(), &Request{Filters: filters})
	require.NoError(t, err)

	require.NotNil(t, resp.LocationError)
	assert.Equal(t, location.KindPositionUnavailable, resp.LocationError.Kind)
	assert.Len(t, resp.Studios, 6)
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	uc := NewUseCase(new(MockCatalog), nil, logger.NewNop())

	tests := []struct {
		name   string
		modify func(r *Request)
	}{
		{name: "negative radius", modify: func(r *Request) { r.Filters.RadiusKm = -1 }},
		{name: "negative price", modify: func(r *Request) { r.Filters.MinPrice = -5 }},
		{name: "rating too high", modify: func(r *Request) { r.Filters.MinRating = 6 }},
		{name: "unknown type", modify: func(r *Request) { r.Filters.Type = "Dance Hall" }},
		{name: "bad coordinates", modify: func(r *Request) { r.Filters.UserLocation = &domain.Coordinates{Latitude: 95} }},
		{name: "bad order", modify: func(r *Request) { r.Order = "price" }},
		{name: "radius not a number", modify: func(r *Request) { r.Filters.RadiusKm = math.NaN() }},
		{name: "infinite max price", modify: func(r *Request) { r.Filters.MaxPrice = math.Inf(1) }},
		{name: "min price not a number", modify: func(r *Request) { r.Filters.MinPrice = math.NaN() }},
		{name: "coordinates not a number", modify: func(r *Request) {
			r.Filters.UserLocation = &domain.Coordinates{Latitude: math.NaN(), Longitude: 90}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &Request{Filters: domain.DefaultSearchFilters()}
			tt.modify(req)
			_, err := uc.Execute(context.Background(), req)
			assert.True(t, errors.Is(err, ErrInvalidInput))
		})
	}
}
