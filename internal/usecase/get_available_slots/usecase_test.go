package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) GetByID(id int64) (*domain.Studio, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Studio), args.Error(1)
}

type MockAvailability struct {
	mock.Mock
}

func (m *MockAvailability) GetAvailableSlots(ctx context.Context, studio *domain.Studio, date string) ([]domain.TimeSlot, error) {
	args := m.Called(ctx, studio, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimeSlot), args.Error(1)
}

type MockMetrics struct {
	mock.Mock
}

func (m *MockMetrics) IncSlotQuery() {
	m.Called()
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

func newTestUseCase(cat *MockCatalog, av *MockAvailability, metrics MetricsRecorder) *UseCase {
	uc := NewUseCase(cat, av, metrics, logger.NewNop())
	uc.timeProvider = fixedTime{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
	return uc
}

func TestUseCase_Execute_Success(t *testing.T) {
	studio := &domain.Studio{
		ID:           1,
		Name:         "Soundwave",
		PricePerHour: 1500,
		Currency:     "BDT",
		Availability: domain.OperatingHours{Open: "10:00", Close: "14:00"},
	}
	cat := new(MockCatalog)
	cat.On("GetByID", int64(1)).Return(studio, nil)
	av := new(MockAvailability)
	av.On("GetAvailableSlots", mock.Anything, studio, "2025-06-02").Return([]domain.TimeSlot{
		{Time: "10:00", Available: true},
		{Time: "11:00", Available: false},
		{Time: "12:00", Available: true},
		{Time: "13:00", Available: true},
	}, nil)
	metrics := new(MockMetrics)
	metrics.On("IncSlotQuery").Once()

	resp, err := newTestUseCase(cat, av, metrics).Execute(context.Background(), &Request{StudioID: 1, Date: "2025-06-02"})
	require.NoError(t, err)

	assert.Equal(t, "Soundwave", resp.StudioName)
	assert.Equal(t, "Monday, June 2, 2025", resp.DateDisplay)
	assert.Equal(t, 3, resp.AvailableCount)
	require.Len(t, resp.Slots, 4)
	assert.Equal(t, "11:00 AM - 12:00 PM", resp.Slots[1].Display)
	assert.False(t, resp.Slots[1].Available)
	metrics.AssertExpectations(t)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		setup   func(cat *MockCatalog, av *MockAvailability)
		wantErr error
	}{
		{
			name:    "missing studio id",
			req:     &Request{Date: "2025-06-02"},
			setup:   func(*MockCatalog, *MockAvailability) {},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing date",
			req:     &Request{StudioID: 1},
			setup:   func(*MockCatalog, *MockAvailability) {},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "malformed date",
			req:     &Request{StudioID: 1, Date: "02/06/2025"},
			setup:   func(*MockCatalog, *MockAvailability) {},
			wantErr: ErrInvalidDate,
		},
		{
			name:    "date in the past",
			req:     &Request{StudioID: 1, Date: "2025-05-31"},
			setup:   func(*MockCatalog, *MockAvailability) {},
			wantErr: ErrDateOutOfRange,
		},
		{
			name:    "date beyond window",
			req:     &Request{StudioID: 1, Date: "2025-07-05"},
			setup:   func(*MockCatalog, *MockAvailability) {},
			wantErr: ErrDateOutOfRange,
		},
		{
			name: "unknown studio",
			req:  &Request{StudioID: 99, Date: "2025-06-02"},
			setup: func(cat *MockCatalog, _ *MockAvailability) {
				cat.On("GetByID", int64(99)).Return(nil, catalog.ErrStudioNotFound)
			},
			wantErr: ErrStudioNotFound,
		},
		{
			name: "storage failure",
			req:  &Request{StudioID: 1, Date: "2025-06-02"},
			setup: func(cat *MockCatalog, av *MockAvailability) {
				cat.On("GetByID", int64(1)).Return(&domain.Studio{ID: 1}, nil)
				av.On("GetAvailableSlots", mock.Anything, mock.Anything, "2025-06-02").Return(nil, errors.New("boom"))
			},
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := new(MockCatalog)
			av := new(MockAvailability)
			tt.setup(cat, av)

			_, err := newTestUseCase(cat, av, nil).Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
