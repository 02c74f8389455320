package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/infra/storage/blob"
)

// IDPrefix префикс идентификаторов бронирований
const IDPrefix = "booking_"

// Repository хранилище бронирований поверх одного сериализованного значения.
// Каждое добавление читает всю коллекцию, дописывает запись и перезаписывает значение целиком.
//
// Добавления внутри процесса сериализуются мьютексом. Несколько процессов,
// пишущих в одно хранилище, не координируются: побеждает последняя запись.
type Repository struct {
	store BlobStore
	key   string
	mu    sync.Mutex
}

// NewRepository создает репозиторий. Пустой key заменяется на domain.BookingsStorageKey.
func NewRepository(store BlobStore, key string) *Repository {
	if key == "" {
		key = domain.BookingsStorageKey
	}
	return &Repository{store: store, key: key}
}

// GenerateID уникальный идентификатор бронирования: префикс и UUIDv7 (время + случайная часть)
func GenerateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return IDPrefix + uuid.NewString()
	}
	return IDPrefix + id.String()
}

// Append добавляет бронирование в конец коллекции
// Проверку конфликтов выполняет вызывающий код: хранилище принимает любую запись с id.
func (r *Repository) Append(ctx context.Context, booking *domain.Booking) error {
	if booking == nil || booking.ID == "" {
		return ErrInvalidBooking
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	bookings, err := r.load(ctx)
	if err != nil {
		return err
	}

	bookings = append(bookings, booking)

	data, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("%w: Append - marshal: %v", ErrSave, err)
	}
	if err := r.store.Set(ctx, r.key, data); err != nil {
		return fmt.Errorf("%w: Append - %v", ErrSave, err)
	}
	return nil
}

// ListAll все бронирования в порядке добавления. Отсутствие данных означает пустой список.
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	return r.load(ctx)
}

// ListByStudioAndDate бронирования студии на дату
func (r *Repository) ListByStudioAndDate(ctx context.Context, studioID int64, date string) ([]*domain.Booking, error) {
	bookings, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Booking, 0)
	for _, b := range bookings {
		if b.StudioID == studioID && b.Date == date {
			result = append(result, b)
		}
	}
	return result, nil
}

// GetByID получает бронирование по id
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	bookings, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, b := range bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, ErrBookingNotFound
}

func (r *Repository) load(ctx context.Context) ([]*domain.Booking, error) {
	data, err := r.store.Get(ctx, r.key)
	if errors.Is(err, blob.ErrNotFound) {
		return make([]*domain.Booking, 0), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}

	bookings := make([]*domain.Booking, 0)
	if len(data) == 0 {
		return bookings, nil
	}
	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	return bookings, nil
}
