package location

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

type fakeProvider struct {
	mu     sync.Mutex
	calls  int
	coords []domain.Coordinates
	err    error
	block  bool
}

func (p *fakeProvider) Locate(ctx context.Context, _ string) (*domain.Coordinates, error) {
	p.mu.Lock()
	idx := p.calls
	p.calls++
	p.mu.Unlock()

	if p.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if p.err != nil {
		return nil, p.err
	}
	c := p.coords[idx%len(p.coords)]
	return &c, nil
}

func (p *fakeProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func TestLocator_ReusesRecentResult(t *testing.T) {
	provider := &fakeProvider{coords: []domain.Coordinates{{Latitude: 1, Longitude: 1}, {Latitude: 2, Longitude: 2}}}
	locator := NewLocator(provider, time.Second, 5*time.Minute, logger.NewNop())

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	locator.now = func() time.Time { return now }

	first, err := locator.Locate(context.Background(), "1.1.1.1")
	require.NoError(t, err)
	assert.Equal(t, 1.0, first.Latitude)

	now = now.Add(4 * time.Minute)
	second, err := locator.Locate(context.Background(), "1.1.1.1")
	require.NoError(t, err)
	assert.Equal(t, 1.0, second.Latitude)
	assert.Equal(t, 1, provider.callCount())

	now = now.Add(2 * time.Minute)
	third, err := locator.Locate(context.Background(), "1.1.1.1")
	require.NoError(t, err)
	assert.Equal(t, 2.0, third.Latitude)
	assert.Equal(t, 2, provider.callCount())
}

func TestLocator_Timeout(t *testing.T) {
	provider := &fakeProvider{block: true}
	locator := NewLocator(provider, 20*time.Millisecond, time.Minute, logger.NewNop())

	_, err := locator.Locate(context.Background(), "1.1.1.1")
	locErr := AsLocationError(err)
	assert.Equal(t, KindTimeout, locErr.Kind)
	assert.Equal(t, "Location request timed out. Please try again.", locErr.Message)
}

func TestLocator_ErrorsAreNotCached(t *testing.T) {
	provider := &fakeProvider{err: NewError(KindPermissionDenied, nil)}
	locator := NewLocator(provider, time.Second, time.Minute, logger.NewNop())

	_, err := locator.Locate(context.Background(), "1.1.1.1")
	assert.Equal(t, KindPermissionDenied, AsLocationError(err).Kind)

	_, err = locator.Locate(context.Background(), "1.1.1.1")
	assert.Error(t, err)
	assert.Equal(t, 2, provider.callCount())
}

func TestLocator_DropsExpiredEntries(t *testing.T) {
	provider := &fakeProvider{coords: []domain.Coordinates{{Latitude: 1, Longitude: 1}}}
	locator := NewLocator(provider, time.Second, time.Minute, logger.NewNop())

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	locator.now = func() time.Time { return now }

	for _, ip := range []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"} {
		_, err := locator.Locate(context.Background(), ip)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, locator.cached())

	now = now.Add(2 * time.Minute)
	_, err := locator.Locate(context.Background(), "10.0.0.4")
	require.NoError(t, err)

	assert.Equal(t, 1, locator.cached())
	assert.NotContains(t, locator.positions, "10.0.0.1")
	assert.Contains(t, locator.positions, "10.0.0.4")
}

func TestLocator_FailedLookupLeavesNoEntry(t *testing.T) {
	provider := &fakeProvider{err: NewError(KindPositionUnavailable, nil)}
	locator := NewLocator(provider, time.Second, time.Minute, logger.NewNop())

	for i := 0; i < 5; i++ {
		_, err := locator.Locate(context.Background(), fmt.Sprintf("203.0.113.%d", i))
		require.Error(t, err)
	}
	assert.Equal(t, 0, locator.cached())
}

func TestNewLocator_Defaults(t *testing.T) {
	locator := NewLocator(&fakeProvider{}, 0, 0, logger.NewNop())
	assert.Equal(t, 10*time.Second, locator.timeout)
	assert.Equal(t, 5*time.Minute, locator.maxAge)
}
