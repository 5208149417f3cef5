package get_slot_grid

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickcourt/QC-BookingService/internal/domain"
	scheduleStorage "github.com/quickcourt/QC-BookingService/internal/infra/storage/schedule"
	"github.com/quickcourt/QC-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetBookedByCourtAndDate(_ context.Context, courtID int64, _ time.Time) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.CourtID == courtID && b.Status == domain.StatusBooked {
			result = append(result, b)
		}
	}
	return result, nil
}

type fakeScheduleRepo struct {
	schedule *domain.CourtSchedule
}

func (f *fakeScheduleRepo) GetScheduleWithHierarchy(context.Context, int64, *int64) (*domain.CourtSchedule, error) {
	if f.schedule == nil {
		return nil, scheduleStorage.ErrScheduleNotFound
	}
	return f.schedule, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func fixedNow() time.Time {
	// Полдень задолго до тестовой даты бронирований
	return time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
}

func futureDate() time.Time {
	return time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
}

func newTestUseCase(bookings []*domain.Booking, schedule *domain.CourtSchedule) *UseCase {
	uc := NewUseCase(&fakeBookingRepo{bookings: bookings}, &fakeScheduleRepo{schedule: schedule}, nopLogger{})
	uc.now = fixedNow
	return uc
}

func findSlot(t *testing.T, slots []Slot, start types.TimeString) Slot {
	t.Helper()
	for _, s := range slots {
		if s.StartTime == start {
			return s
		}
	}
	t.Fatalf("slot starting at %s not found", start)
	return Slot{}
}

func TestExecute_DefaultGrid(t *testing.T) {
	uc := newTestUseCase(nil, nil)

	resp, err := uc.Execute(context.Background(), &Request{FacilityID: 10, CourtID: 1, Date: futureDate()})

	require.NoError(t, err)
	assert.Equal(t, types.TimeString("05:00"), resp.OpenTime)
	assert.Equal(t, types.TimeString("22:00"), resp.CloseTime)
	assert.Equal(t, 30, resp.SlotDurationMinutes)

	// 17 часов по 2 слота в час
	require.Len(t, resp.Slots, 34)
	assert.Equal(t, types.TimeString("05:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("05:30"), resp.Slots[0].EndTime)
	assert.Equal(t, types.TimeString("21:30"), resp.Slots[len(resp.Slots)-1].StartTime)
	assert.Equal(t, types.TimeString("22:00"), resp.Slots[len(resp.Slots)-1].EndTime)

	for _, s := range resp.Slots {
		assert.True(t, s.Available, "slot %s must be available on an empty future date", s.StartTime)
	}
}

func TestExecute_BookedIntervalDisablesCells(t *testing.T) {
	uc := newTestUseCase([]*domain.Booking{
		{CourtID: 1, StartTime: "09:00", EndTime: "10:00", Status: domain.StatusBooked},
	}, nil)

	resp, err := uc.Execute(context.Background(), &Request{FacilityID: 10, CourtID: 1, Date: futureDate()})

	require.NoError(t, err)
	assert.False(t, findSlot(t, resp.Slots, "09:00").Available)
	assert.False(t, findSlot(t, resp.Slots, "09:30").Available)

	// Соседние ячейки свободны: общая граница не считается пересечением
	assert.True(t, findSlot(t, resp.Slots, "08:30").Available)
	assert.True(t, findSlot(t, resp.Slots, "10:00").Available)
}

func TestExecute_CancelledBookingDoesNotDisable(t *testing.T) {
	uc := newTestUseCase([]*domain.Booking{
		{CourtID: 1, StartTime: "09:00", EndTime: "10:00", Status: domain.StatusCancelled},
	}, nil)

	resp, err := uc.Execute(context.Background(), &Request{FacilityID: 10, CourtID: 1, Date: futureDate()})

	require.NoError(t, err)
	assert.True(t, findSlot(t, resp.Slots, "09:00").Available)
}

func TestExecute_PastDateAllUnavailable(t *testing.T) {
	uc := newTestUseCase(nil, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		FacilityID: 10, CourtID: 1,
		Date: time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	require.NotEmpty(t, resp.Slots)
	for _, s := range resp.Slots {
		assert.False(t, s.Available, "slot %s on a past date must be unavailable", s.StartTime)
	}
}

func TestExecute_TodayPastSlotsUnavailable(t *testing.T) {
	uc := newTestUseCase(nil, nil)

	// Дата совпадает с fixedNow (2025-08-01, 12:00)
	resp, err := uc.Execute(context.Background(), &Request{
		FacilityID: 10, CourtID: 1,
		Date: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.False(t, findSlot(t, resp.Slots, "11:30").Available)
	assert.False(t, findSlot(t, resp.Slots, "12:00").Available, "slot starting right now has already begun")
	assert.True(t, findSlot(t, resp.Slots, "12:30").Available)
}

func TestExecute_CustomSchedule(t *testing.T) {
	courtID := int64(1)
	uc := newTestUseCase(nil, &domain.CourtSchedule{
		ID: 5, FacilityID: 10, CourtID: &courtID,
		OpenTime: "08:00", CloseTime: "20:00", SlotDurationMinutes: 60,
	})

	resp, err := uc.Execute(context.Background(), &Request{FacilityID: 10, CourtID: 1, Date: futureDate()})

	require.NoError(t, err)
	assert.Equal(t, types.TimeString("08:00"), resp.OpenTime)
	require.Len(t, resp.Slots, 12)
	assert.Equal(t, types.TimeString("08:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].EndTime)
}

func TestExecute_RequestedDurationLongerThanStep(t *testing.T) {
	uc := newTestUseCase([]*domain.Booking{
		{CourtID: 1, StartTime: "10:00", EndTime: "11:00", Status: domain.StatusBooked},
	}, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		FacilityID: 10, CourtID: 1, Date: futureDate(), DurationMinutes: 60,
	})

	require.NoError(t, err)

	// Часовой интервал с 09:30 задевает бронирование 10:00-11:00
	assert.True(t, findSlot(t, resp.Slots, "09:00").Available)
	assert.False(t, findSlot(t, resp.Slots, "09:30").Available)
	assert.False(t, findSlot(t, resp.Slots, "10:30").Available)
	assert.True(t, findSlot(t, resp.Slots, "11:00").Available)

	// Последняя ячейка заканчивается ровно на закрытии
	last := resp.Slots[len(resp.Slots)-1]
	assert.Equal(t, types.TimeString("21:00"), last.StartTime)
	assert.Equal(t, types.TimeString("22:00"), last.EndTime)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(nil, nil)

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "zero court id", req: &Request{FacilityID: 10, Date: futureDate()}},
		{name: "zero facility id", req: &Request{CourtID: 1, Date: futureDate()}},
		{name: "zero date", req: &Request{FacilityID: 10, CourtID: 1}},
		{name: "duration too short", req: &Request{FacilityID: 10, CourtID: 1, Date: futureDate(), DurationMinutes: 10}},
		{name: "duration too long", req: &Request{FacilityID: 10, CourtID: 1, Date: futureDate(), DurationMinutes: 600}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
