package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickcourt/QC-BookingService/internal/domain"
	bookingRepo "github.com/quickcourt/QC-BookingService/internal/infra/storage/booking"
	"github.com/quickcourt/QC-BookingService/internal/integrations/facilityservice"
	"github.com/quickcourt/QC-BookingService/internal/service/bookings/models"
	"github.com/quickcourt/QC-BookingService/pkg/ptr"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
	cancels  int
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, userID string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.UserID != userID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) GetByFacilityWithFilter(_ context.Context, filter domain.FacilityBookingsFilter) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.FacilityID != filter.FacilityID {
			continue
		}
		if filter.CourtID != nil && b.CourtID != *filter.CourtID {
			continue
		}
		if !filter.IncludeInactive && b.Status == domain.StatusCancelled {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	f.cancels++
	b.Status = domain.StatusCancelled
	now := time.Now()
	b.CancelledAt = &now
	return b, nil
}

// fakeTxManager прозрачно выполняет функцию без настоящей транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeFacilityClient struct {
	facilities map[int64]*facilityservice.Facility
}

func (f *fakeFacilityClient) GetFacility(_ context.Context, facilityID int64) (*facilityservice.Facility, error) {
	facility, ok := f.facilities[facilityID]
	if !ok {
		return nil, facilityservice.ErrFacilityNotFound
	}
	return facility, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testDate() time.Time {
	return time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
}

func newTestService() (*Service, *fakeBookingRepo) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {
			ID: 1, FacilityID: 10, CourtID: 1, UserID: "user-a",
			BookingDate: testDate(), StartTime: "09:00", EndTime: "10:00",
			Status: domain.StatusBooked, TotalAmount: 500,
		},
		2: {
			ID: 2, FacilityID: 10, CourtID: 2, UserID: "user-b",
			BookingDate: testDate(), StartTime: "12:00", EndTime: "13:00",
			Status: domain.StatusCancelled, TotalAmount: 700,
		},
		3: {
			ID: 3, FacilityID: 20, CourtID: 5, UserID: "user-a",
			BookingDate: testDate(), StartTime: "18:00", EndTime: "19:00",
			Status: domain.StatusCompleted, TotalAmount: 900,
		},
	}}
	client := &fakeFacilityClient{facilities: map[int64]*facilityservice.Facility{
		10: {ID: 10, Name: "Center Arena", OwnerID: "owner-1", IsActive: true},
		20: {ID: 20, Name: "River Courts", OwnerID: "owner-2", IsActive: true},
	}}
	return NewService(repo, client, &fakeTxManager{}, nopLogger{}), repo
}

func TestGetByID_Owner(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.GetByID(context.Background(), 1, "user-a")

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, "10:00", resp.EndTime)
}

func TestGetByID_FacilityOwner(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.GetByID(context.Background(), 1, "owner-1")

	require.NoError(t, err)
	assert.Equal(t, "user-a", resp.UserID)
}

func TestGetByID_Stranger(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetByID(context.Background(), 1, "user-x")

	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetByID(context.Background(), 999, "user-a")

	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: "user-a"})

	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)
}

func TestGetUserBookings_StatusFilter(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: "user-a",
		Status: ptr.Ptr("booked"),
	})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(1), resp.Bookings[0].ID)
}

func TestGetUserBookings_InvalidStatus(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: "user-a",
		Status: ptr.Ptr("paused"),
	})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetFacilityBookings_Owner(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.GetFacilityBookings(context.Background(), &models.GetFacilityBookingsRequest{
		UserID:     "owner-1",
		FacilityID: 10,
	})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1, "cancelled bookings are excluded by default")
	assert.Equal(t, int64(1), resp.Bookings[0].ID)
}

func TestGetFacilityBookings_IncludeInactive(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.GetFacilityBookings(context.Background(), &models.GetFacilityBookingsRequest{
		UserID:          "owner-1",
		FacilityID:      10,
		IncludeInactive: true,
	})

	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)
}

func TestGetFacilityBookings_NotOwner(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetFacilityBookings(context.Background(), &models.GetFacilityBookingsRequest{
		UserID:     "user-a",
		FacilityID: 10,
	})

	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_Owner(t *testing.T) {
	svc, repo := newTestService()

	resp, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: "user-a"})

	require.NoError(t, err)
	assert.Equal(t, 1, repo.cancels)
	assert.Equal(t, domain.StatusCancelled, repo.bookings[1].Status)

	// Клиент получает обновленное бронирование, а не пустой ответ
	require.NotNil(t, resp)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	require.NotNil(t, resp.CancelledAt)
}

func TestCancel_NotOwner(t *testing.T) {
	svc, repo := newTestService()

	// Даже владелец площадки не может отменить чужое бронирование
	for _, userID := range []string{"user-b", "owner-1"} {
		_, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: userID})
		require.ErrorIs(t, err, ErrAccessDenied)
	}
	assert.Equal(t, 0, repo.cancels)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.Cancel(context.Background(), 2, &models.CancelBookingRequest{UserID: "user-b"})

	require.ErrorIs(t, err, ErrCannotCancel)
	assert.Equal(t, 0, repo.cancels)
}

func TestCancel_Completed(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Cancel(context.Background(), 3, &models.CancelBookingRequest{UserID: "user-a"})

	require.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Cancel(context.Background(), 999, &models.CancelBookingRequest{UserID: "user-a"})

	require.ErrorIs(t, err, ErrBookingNotFound)
}
