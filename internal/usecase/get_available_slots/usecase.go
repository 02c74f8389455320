package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/display"
)

// UseCase use case для получения слотов студии на дату
type UseCase struct {
	catalog      CatalogService
	availability AvailabilityService
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil.
func NewUseCase(
	catalog CatalogService,
	availability AvailabilityService,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog:      catalog,
		availability: availability,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case. Доступность всегда считается заново по хранилищу.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: studio=%d, date=%s", req.StudioID, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата должна попадать в окно бронирования
	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем студию
	studio, err := uc.catalog.GetByID(req.StudioID)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: studio id=%d not found", req.StudioID)
		return nil, ErrStudioNotFound
	}

	// 4. Считаем слоты
	slots, err := uc.availability.GetAvailableSlots(ctx, studio, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to compute slots for studio=%d: %v", req.StudioID, err)
		return nil, fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
	}
	if uc.metrics != nil {
		uc.metrics.IncSlotQuery()
	}

	resp := &Response{
		StudioID:       studio.ID,
		StudioName:     studio.Name,
		Date:           req.Date,
		DateDisplay:    display.FormatDate(req.Date),
		OperatingHours: studio.Availability,
		PricePerHour:   studio.PricePerHour,
		Currency:       studio.Currency,
		Slots:          toSlots(slots),
		AvailableCount: domain.CountAvailable(slots),
	}

	uc.logger.Info("GetAvailableSlots: studio=%d date=%s available=%d of %d",
		studio.ID, req.Date, resp.AvailableCount, len(resp.Slots))
	return resp, nil
}

func toSlots(slots []domain.TimeSlot) []Slot {
	result := make([]Slot, len(slots))
	for i, s := range slots {
		result[i] = Slot{
			Time:      s.Time,
			Available: s.Available,
			Display:   display.FormatTimeRange(s.Time, domain.SlotDurationMinutes),
		}
	}
	return result
}
