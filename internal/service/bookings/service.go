package bookings

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-StudioBooking/internal/service/bookings/models"
)

// Service сервис для просмотра бронирований
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// List возвращает бронирования, отсортированные по дате и времени начала (новые сверху).
// Сводка считается по всем бронированиям, фильтры на неё не влияют.
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.BookingListResponse, error) {
	period := req.Period
	if period == "" {
		period = domain.PeriodAll
	}
	if !period.IsValid() {
		s.logger.Warn("List: invalid period=%s", req.Period)
		return nil, fmt.Errorf("%w: unknown period %q", ErrInvalidInput, req.Period)
	}
	s.logger.Info("List: period=%s, search=%q", period, req.Search)

	all, err := s.bookingRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	sortByStartDesc(all)

	resp := &models.BookingListResponse{
		Bookings: make([]models.BookingResponse, 0, len(all)),
		Summary:  summarize(all, now),
	}
	query := strings.ToLower(strings.TrimSpace(req.Search))
	for _, b := range all {
		if !matchesPeriod(b, period, now) || !matchesSearch(b, query) {
			continue
		}
		resp.Bookings = append(resp.Bookings, models.FromDomainBooking(b, now))
	}

	s.logger.Info("List: returned %d of %d bookings", len(resp.Bookings), len(all))
	return resp, nil
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainBooking(b, s.timeProvider.Now())
	return &resp, nil
}

func sortByStartDesc(bookings []*domain.Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		left := bookings[i].Date + " " + bookings[i].TimeSlot.String()
		right := bookings[j].Date + " " + bookings[j].TimeSlot.String()
		return left > right
	})
}

func summarize(bookings []*domain.Booking, now time.Time) models.Summary {
	summary := models.Summary{Total: len(bookings)}
	for _, b := range bookings {
		if b.IsUpcoming(now) {
			summary.Upcoming++
		} else {
			summary.Past++
		}
	}
	return summary
}

func matchesPeriod(b *domain.Booking, period domain.BookingPeriod, now time.Time) bool {
	switch period {
	case domain.PeriodUpcoming:
		return b.IsUpcoming(now)
	case domain.PeriodPast:
		return !b.IsUpcoming(now)
	default:
		return true
	}
}

func matchesSearch(b *domain.Booking, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(b.UserName), query) ||
		strings.Contains(strings.ToLower(b.UserEmail), query) ||
		strings.Contains(strings.ToLower(b.StudioName), query)
}
