package create_booking

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/integrations/events"
	"github.com/m04kA/SMC-StudioBooking/internal/service/availability"
	"github.com/m04kA/SMC-StudioBooking/pkg/display"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	catalog      CatalogService
	availability AvailabilityService
	publisher    EventPublisher
	metrics      MetricsRecorder
	timeProvider TimeProvider
	generateID   func() string
	logger       Logger

	// Повторная проверка слота и запись выполняются атомарно в пределах процесса
	commitMu sync.Mutex
}

// NewUseCase создает новый экземпляр use case. publisher и metrics могут быть nil.
func NewUseCase(
	bookingRepo BookingRepository,
	catalog CatalogService,
	availability AvailabilityService,
	publisher EventPublisher,
	metrics MetricsRecorder,
	generateID func() string,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalog:      catalog,
		availability: availability,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		generateID:   generateID,
		logger:       logger,
	}
}

// Execute выполняет use case.
// Ошибки формы возвращаются как domain.FieldErrors (errors.Is(err, domain.ErrValidation)).
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, ErrInvalidInput
	}
	normalizeRequest(req)
	uc.logger.Info("CreateBooking: studio=%d, date=%s, time=%s", req.StudioID, req.Date, req.TimeSlot)

	now := uc.timeProvider.Now()

	// 1. Проверка заполненности полей и окна дат
	fieldErrs := validateForm(req)
	validateDate(req.Date, now, fieldErrs)

	var selected types.TimeString
	if _, exists := fieldErrs[domain.FieldTimeSlot]; !exists {
		parsed, err := types.NewTimeStringFromString(req.TimeSlot)
		if err != nil {
			fieldErrs.Add(domain.FieldTimeSlot, availability.MessageTimeRequired)
		}
		selected = parsed
	}
	if !fieldErrs.Empty() {
		return nil, uc.reject(fieldErrs)
	}

	// 2. Получаем студию
	studio, err := uc.catalog.GetByID(req.StudioID)
	if err != nil {
		uc.logger.Warn("CreateBooking: studio id=%d not found", req.StudioID)
		return nil, ErrStudioNotFound
	}

	uc.commitMu.Lock()
	defer uc.commitMu.Unlock()

	// 3. Повторно считаем слоты: со времени открытия формы их могли занять
	slots, err := uc.availability.GetAvailableSlots(ctx, studio, req.Date)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to compute slots for studio=%d: %v", studio.ID, err)
		return nil, fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
	}

	slotTime, err := availability.ValidateSelection(studio, slots, selected)
	if err != nil {
		fieldErrs.Add(domain.FieldTimeSlot, availability.Message(err))
		return nil, uc.reject(fieldErrs)
	}

	// 4. Фиксируем снимок студии и сохраняем
	booking := &domain.Booking{
		ID:             uc.generateID(),
		StudioID:       studio.ID,
		StudioName:     studio.Name,
		StudioType:     studio.Type,
		StudioLocation: domain.NewStudioLocationSnapshot(studio.Location),
		Date:           req.Date,
		TimeSlot:       slotTime,
		UserName:       req.UserName,
		UserEmail:      req.UserEmail,
		BookingTime:    now.UTC(),
		TotalPrice:     studio.PricePerHour, // один слот = один час
	}

	if err := uc.bookingRepo.Append(ctx, booking); err != nil {
		uc.logger.Error("CreateBooking: failed to save booking for studio=%d: %v", studio.ID, err)
		if uc.metrics != nil {
			uc.metrics.IncSaveFailure()
		}
		return nil, fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	if uc.metrics != nil {
		uc.metrics.IncBookingCreated(string(studio.Type))
	}
	uc.publish(ctx, booking)

	uc.logger.Info("CreateBooking: booking %s created for studio=%d at %s %s by %s",
		booking.ID, studio.ID, booking.Date, booking.TimeSlot, MaskEmail(booking.UserEmail))

	return &Response{
		Booking:     booking,
		DateDisplay: display.FormatDate(booking.Date),
		TimeDisplay: display.FormatTimeRange(booking.TimeSlot, domain.SlotDurationMinutes),
	}, nil
}

func (uc *UseCase) reject(errs domain.FieldErrors) error {
	uc.logger.Warn("CreateBooking: validation failed: %v", errs)
	if uc.metrics != nil {
		uc.metrics.IncBookingRejected(rejectReason(errs))
	}
	return errs
}

// publish отправляет событие о бронировании. Ошибка брокера не отменяет бронирование.
func (uc *UseCase) publish(ctx context.Context, booking *domain.Booking) {
	if uc.publisher == nil {
		return
	}
	if err := uc.publisher.PublishBookingCreated(ctx, events.NewBookingCreatedEvent(booking)); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish event for booking %s: %v", booking.ID, err)
	}
}

// MaskEmail скрывает адрес в логах: j***@example.com
func MaskEmail(email string) string {
	local, domainPart, found := strings.Cut(email, "@")
	if !found || local == "" {
		return "***"
	}
	return local[:1] + "***@" + domainPart
}
