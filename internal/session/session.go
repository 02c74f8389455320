// Package session состояние одного открытого окна бронирования студии:
// выбранные дата и время, ошибки полей и периодически обновляемые слоты.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/availability"
	"github.com/m04kA/SMC-StudioBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// Session одно окно бронирования студии.
// Методы безопасны для вызова из нескольких горутин.
type Session struct {
	studio       *domain.Studio
	availability AvailabilityService
	creator      BookingCreator
	metrics      MetricsRecorder
	timeProvider TimeProvider
	interval     time.Duration
	logger       Logger

	mu          sync.Mutex
	date        string
	selected    types.TimeString
	slots       []domain.TimeSlot
	errs        domain.FieldErrors
	booking     *domain.Booking
	closed      bool
	started     bool
	subscribers map[int]chan Snapshot
	nextSubID   int

	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// New открывает сессию бронирования. interval <= 0 заменяется на domain.AvailabilityRefreshInterval.
// metrics может быть nil.
func New(
	studio *domain.Studio,
	availabilityService AvailabilityService,
	creator BookingCreator,
	interval time.Duration,
	metrics MetricsRecorder,
	logger Logger,
) *Session {
	if interval <= 0 {
		interval = domain.AvailabilityRefreshInterval
	}
	if metrics != nil {
		metrics.SessionOpened()
	}
	return &Session{
		studio:       studio,
		availability: availabilityService,
		creator:      creator,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		interval:     interval,
		logger:       logger,
		errs:         domain.FieldErrors{},
		subscribers:  make(map[int]chan Snapshot),
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}
}

// Start запускает единственный фоновый опрос доступности.
// Опрос останавливается при Close, успешной отправке или отмене ctx.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if s.started {
		s.mu.Unlock()
		return ErrAlreadyStarted
	}
	s.started = true
	s.mu.Unlock()

	go s.refreshLoop(ctx)
	s.logger.Info("Session: studio=%d refresher started, interval=%v", s.studio.ID, s.interval)
	return nil
}

func (s *Session) refreshLoop(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.Refresh(ctx); err != nil && !errors.Is(err, ErrClosed) {
				s.logger.Warn("Session: studio=%d refresh failed: %v", s.studio.ID, err)
			}
		case <-s.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Close останавливает опрос и закрывает подписки. Повторный вызов ничего не делает.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		started := s.started
		snapshot := s.snapshotLocked()
		subs := s.subscribers
		s.subscribers = make(map[int]chan Snapshot)
		s.mu.Unlock()

		close(s.stop)
		if started {
			<-s.done
		}

		for _, ch := range subs {
			deliver(ch, snapshot)
			close(ch)
		}
		if s.metrics != nil {
			s.metrics.SessionClosed()
		}
		s.logger.Info("Session: studio=%d closed", s.studio.ID)
	})
}

// Subscribe возвращает канал снимков состояния и функцию отписки.
// Медленный подписчик получает только последний снимок.
func (s *Session) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		ch <- s.snapshotLocked()
		close(ch)
		return ch, func() {}
	}

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = ch
	ch <- s.snapshotLocked()

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subscribers[id]; ok {
			delete(s.subscribers, id)
			close(sub)
		}
	}
}

// Snapshot текущее состояние сессии
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// SetDate выбирает дату и загружает слоты. Выбранное время проверяется заново
// и сбрасывается с ошибкой поля, только если на новую дату оно недоступно.
func (s *Session) SetDate(ctx context.Context, date string) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}

	var slots []domain.TimeSlot
	_, dateErr := availability.ValidateDate(date, s.timeProvider.Now())
	if dateErr == nil {
		var err error
		slots, err = s.availability.GetAvailableSlots(ctx, s.studio, date)
		if err != nil {
			s.logger.Error("Session: studio=%d failed to load slots for %s: %v", s.studio.ID, date, err)
			return err
		}
	}

	s.mu.Lock()
	s.date = date
	s.slots = slots
	delete(s.errs, domain.FieldDate)
	delete(s.errs, domain.FieldTimeSlot)
	if dateErr != nil {
		s.errs.Add(domain.FieldDate, availability.Message(dateErr))
	} else if s.selected != "" {
		if _, err := availability.ValidateSelection(s.studio, slots, s.selected); err != nil {
			s.logger.Info("Session: studio=%d selection %s dropped on %s: %v", s.studio.ID, s.selected, date, err)
			s.selected = ""
			s.errs.Add(domain.FieldTimeSlot, availability.Message(err))
		}
	}
	s.mu.Unlock()

	s.broadcast()
	return nil
}

// SetTime выбирает время. Неудачная проверка сбрасывает выбор и записывает ошибку поля.
// Время внутри слота приводится к началу этого слота.
func (s *Session) SetTime(value string) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.errs, domain.FieldTimeSlot)
	s.selected = ""

	parsed, err := types.NewTimeStringFromString(value)
	if err != nil {
		s.errs.Add(domain.FieldTimeSlot, availability.MessageTimeRequired)
	} else if slot, err := availability.ValidateSelection(s.studio, s.slots, parsed); err != nil {
		s.errs.Add(domain.FieldTimeSlot, availability.Message(err))
	} else {
		s.selected = slot
	}
	s.mu.Unlock()

	s.broadcast()
	return nil
}

// Refresh перечитывает слоты на выбранную дату.
// Если выбранный слот заняли, выбор сбрасывается с ошибкой поля.
func (s *Session) Refresh(ctx context.Context) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}

	s.mu.Lock()
	date := s.date
	_, hasDateErr := s.errs[domain.FieldDate]
	s.mu.Unlock()
	if date == "" || hasDateErr {
		return nil
	}

	slots, err := s.availability.GetAvailableSlots(ctx, s.studio, date)
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.closed || s.date != date {
		s.mu.Unlock()
		return nil
	}
	s.slots = slots
	if s.selected != "" {
		if _, err := availability.ValidateSelection(s.studio, slots, s.selected); err != nil {
			s.logger.Info("Session: studio=%d selected slot %s %s taken", s.studio.ID, date, s.selected)
			s.selected = ""
			s.errs.Add(domain.FieldTimeSlot, availability.Message(err))
		}
	}
	s.mu.Unlock()

	s.broadcast()
	return nil
}

// Submit отправляет форму. При успехе сессия закрывается, при ошибках полей они сохраняются.
func (s *Session) Submit(ctx context.Context, contact Contact) (*domain.Booking, error) {
	if err := s.ensureOpen(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	req := &create_booking.Request{
		StudioID:  s.studio.ID,
		Date:      s.date,
		TimeSlot:  s.selected.String(),
		UserName:  contact.UserName,
		UserEmail: contact.UserEmail,
	}
	s.mu.Unlock()

	resp, err := s.creator.Execute(ctx, req)
	if err != nil {
		var fieldErrs domain.FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
			s.applyFieldErrors(fieldErrs)
		case errors.Is(err, create_booking.ErrSaveFailed):
			s.applyFieldErrors(domain.FieldErrors{domain.FieldSubmit: create_booking.MessageSaveFailed})
		}
		return nil, err
	}

	s.mu.Lock()
	s.booking = resp.Booking
	s.errs = domain.FieldErrors{}
	s.mu.Unlock()

	s.Close()
	return resp.Booking, nil
}

func (s *Session) applyFieldErrors(fieldErrs domain.FieldErrors) {
	s.mu.Lock()
	s.errs = domain.FieldErrors{}
	for field, message := range fieldErrs {
		s.errs.Add(field, message)
	}
	if _, exists := fieldErrs[domain.FieldTimeSlot]; exists {
		s.selected = ""
	}
	s.mu.Unlock()

	s.broadcast()
}

func (s *Session) ensureOpen() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	return nil
}

func (s *Session) broadcast() {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := s.snapshotLocked()
	for _, ch := range s.subscribers {
		deliver(ch, snapshot)
	}
}

func (s *Session) snapshotLocked() Snapshot {
	errs := make(domain.FieldErrors, len(s.errs))
	for field, message := range s.errs {
		errs[field] = message
	}
	slots := make([]domain.TimeSlot, len(s.slots))
	copy(slots, s.slots)

	return Snapshot{
		StudioID:       s.studio.ID,
		Date:           s.date,
		SelectedTime:   s.selected,
		Slots:          slots,
		AvailableCount: domain.CountAvailable(slots),
		Errors:         errs,
		Booking:        s.booking,
		Closed:         s.closed,
	}
}

// deliver кладёт снимок в буфер канала, вытесняя непрочитанный
func deliver(ch chan Snapshot, snapshot Snapshot) {
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- snapshot:
	default:
	}
}
