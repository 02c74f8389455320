package availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// Service вычисляет доступность слотов по хранилищу бронирований.
// Результат не кэшируется: хранилище может измениться между вызовами.
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// IsSlotAvailable true, если нет бронирования с точным совпадением (студия, дата, слот)
func (s *Service) IsSlotAvailable(ctx context.Context, studioID int64, date string, slot types.TimeString) (bool, error) {
	bookings, err := s.bookingRepo.ListByStudioAndDate(ctx, studioID, date)
	if err != nil {
		s.logger.Error("IsSlotAvailable: repository error for studio=%d date=%s: %v", studioID, date, err)
		return false, fmt.Errorf("%w: IsSlotAvailable - repository error: %v", ErrInternal, err)
	}

	return !isBooked(bookings, studioID, date, slot), nil
}

// GetAvailableSlots сетка слотов студии на дату с отметкой занятости
func (s *Service) GetAvailableSlots(ctx context.Context, studio *domain.Studio, date string) ([]domain.TimeSlot, error) {
	slots, err := GenerateSlots(studio.Availability.Open, studio.Availability.Close)
	if err != nil {
		s.logger.Error("GetAvailableSlots: studio=%d has invalid operating hours: %v", studio.ID, err)
		return nil, err
	}

	bookings, err := s.bookingRepo.ListByStudioAndDate(ctx, studio.ID, date)
	if err != nil {
		s.logger.Error("GetAvailableSlots: repository error for studio=%d date=%s: %v", studio.ID, date, err)
		return nil, fmt.Errorf("%w: GetAvailableSlots - repository error: %v", ErrInternal, err)
	}

	for i := range slots {
		slots[i].Available = !isBooked(bookings, studio.ID, date, slots[i].Time)
	}

	s.logger.Info("GetAvailableSlots: studio=%d date=%s slots=%d available=%d",
		studio.ID, date, len(slots), domain.CountAvailable(slots))
	return slots, nil
}

func isBooked(bookings []*domain.Booking, studioID int64, date string, slot types.TimeString) bool {
	for _, b := range bookings {
		if b.Matches(studioID, date, slot) {
			return true
		}
	}
	return false
}
