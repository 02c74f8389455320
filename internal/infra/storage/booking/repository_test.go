package booking

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/infra/storage/blob"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

type failingStore struct {
	*blob.MemoryStore
	setErr error
}

func (s *failingStore) Set(ctx context.Context, key string, value []byte) error {
	if s.setErr != nil {
		return s.setErr
	}
	return s.MemoryStore.Set(ctx, key, value)
}

func newBooking(id string, studioID int64, date, slot string) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		StudioID:    studioID,
		StudioName:  "Sound Lab",
		StudioType:  domain.TypeRecordingStudio,
		Date:        date,
		TimeSlot:    types.TimeString(slot),
		UserName:    "Alice",
		UserEmail:   "alice@example.com",
		BookingTime: time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC),
		TotalPrice:  1500,
	}
}

func TestRepository_EmptyStore(t *testing.T) {
	repo := NewRepository(blob.NewMemoryStore(), "")

	bookings, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bookings)
	assert.NotNil(t, bookings)
}

func TestRepository_AppendKeepsOrder(t *testing.T) {
	ctx := context.Background()
	store := blob.NewMemoryStore()
	repo := NewRepository(store, "")

	require.NoError(t, repo.Append(ctx, newBooking("booking_1", 1, "2025-06-01", "10:00")))
	require.NoError(t, repo.Append(ctx, newBooking("booking_2", 2, "2025-06-01", "11:00")))

	bookings, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "booking_1", bookings[0].ID)
	assert.Equal(t, "booking_2", bookings[1].ID)

	raw, err := store.Get(ctx, domain.BookingsStorageKey)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), `[{"id":"booking_1","studioId":1`))
}

func TestRepository_ListByStudioAndDate(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(blob.NewMemoryStore(), "")

	require.NoError(t, repo.Append(ctx, newBooking("a", 1, "2025-06-01", "10:00")))
	require.NoError(t, repo.Append(ctx, newBooking("b", 1, "2025-06-02", "10:00")))
	require.NoError(t, repo.Append(ctx, newBooking("c", 2, "2025-06-01", "10:00")))

	bookings, err := repo.ListByStudioAndDate(ctx, 1, "2025-06-01")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "a", bookings[0].ID)
}

func TestRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(blob.NewMemoryStore(), "")
	require.NoError(t, repo.Append(ctx, newBooking("booking_x", 1, "2025-06-01", "10:00")))

	got, err := repo.GetByID(ctx, "booking_x")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got.UserEmail)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_CorruptDataIsNotOverwritten(t *testing.T) {
	ctx := context.Background()
	store := blob.NewMemoryStore()
	require.NoError(t, store.Set(ctx, domain.BookingsStorageKey, []byte("{not json")))
	repo := NewRepository(store, "")

	_, err := repo.ListAll(ctx)
	assert.ErrorIs(t, err, ErrCorruptData)

	err = repo.Append(ctx, newBooking("a", 1, "2025-06-01", "10:00"))
	assert.ErrorIs(t, err, ErrCorruptData)

	raw, err := store.Get(ctx, domain.BookingsStorageKey)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(raw))
}

func TestRepository_SaveFailure(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{MemoryStore: blob.NewMemoryStore(), setErr: errors.New("quota exceeded")}
	repo := NewRepository(store, "")

	err := repo.Append(ctx, newBooking("a", 1, "2025-06-01", "10:00"))
	assert.ErrorIs(t, err, ErrSave)

	bookings, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestRepository_RejectsBookingWithoutID(t *testing.T) {
	repo := NewRepository(blob.NewMemoryStore(), "")
	assert.ErrorIs(t, repo.Append(context.Background(), &domain.Booking{}), ErrInvalidBooking)
	assert.ErrorIs(t, repo.Append(context.Background(), nil), ErrInvalidBooking)
}

func TestRepository_ConcurrentAppendsAreNotLost(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(blob.NewMemoryStore(), "")

	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, repo.Append(ctx, newBooking(GenerateID(), int64(i), "2025-06-01", "10:00")))
		}(i)
	}
	wg.Wait()

	bookings, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, bookings, writers)
}

func TestGenerateID(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := GenerateID()
		assert.True(t, strings.HasPrefix(id, IDPrefix))
		_, dup := seen[id]
		assert.False(t, dup)
		seen[id] = struct{}{}
	}
}
