package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickcourt/QC-BookingService/internal/domain"
	scheduleRepo "github.com/quickcourt/QC-BookingService/internal/infra/storage/schedule"
	"github.com/quickcourt/QC-BookingService/internal/integrations/facilityservice"
	"github.com/quickcourt/QC-BookingService/internal/service/schedule/models"
	"github.com/quickcourt/QC-BookingService/pkg/ptr"
)

type fakeScheduleRepo struct {
	schedules []*domain.CourtSchedule
	nextID    int64
}

func sameCourt(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func (f *fakeScheduleRepo) GetByFacilityAndCourt(_ context.Context, facilityID int64, courtID *int64) (*domain.CourtSchedule, error) {
	for _, s := range f.schedules {
		if s.FacilityID == facilityID && sameCourt(s.CourtID, courtID) {
			return s, nil
		}
	}
	return nil, scheduleRepo.ErrScheduleNotFound
}

func (f *fakeScheduleRepo) GetScheduleWithHierarchy(ctx context.Context, facilityID int64, courtID *int64) (*domain.CourtSchedule, error) {
	if courtID != nil {
		if s, err := f.GetByFacilityAndCourt(ctx, facilityID, courtID); err == nil {
			return s, nil
		}
	}
	return f.GetByFacilityAndCourt(ctx, facilityID, nil)
}

func (f *fakeScheduleRepo) Upsert(ctx context.Context, schedule *domain.CourtSchedule) (*domain.CourtSchedule, error) {
	if existing, err := f.GetByFacilityAndCourt(ctx, schedule.FacilityID, schedule.CourtID); err == nil {
		existing.OpenTime = schedule.OpenTime
		existing.CloseTime = schedule.CloseTime
		existing.SlotDurationMinutes = schedule.SlotDurationMinutes
		return existing, nil
	}

	f.nextID++
	stored := *schedule
	stored.ID = f.nextID
	f.schedules = append(f.schedules, &stored)
	return &stored, nil
}

func (f *fakeScheduleRepo) Delete(_ context.Context, id int64) error {
	for i, s := range f.schedules {
		if s.ID == id {
			f.schedules = append(f.schedules[:i], f.schedules[i+1:]...)
			return nil
		}
	}
	return scheduleRepo.ErrScheduleNotFound
}

type fakeFacilityClient struct {
	facilities map[int64]*facilityservice.Facility
	courts     map[int64]*facilityservice.Court
}

func (f *fakeFacilityClient) GetFacility(_ context.Context, facilityID int64) (*facilityservice.Facility, error) {
	facility, ok := f.facilities[facilityID]
	if !ok {
		return nil, facilityservice.ErrFacilityNotFound
	}
	return facility, nil
}

func (f *fakeFacilityClient) GetCourt(_ context.Context, _, courtID int64) (*facilityservice.Court, error) {
	court, ok := f.courts[courtID]
	if !ok {
		return nil, facilityservice.ErrCourtNotFound
	}
	return court, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() (*Service, *fakeScheduleRepo) {
	repo := &fakeScheduleRepo{}
	client := &fakeFacilityClient{
		facilities: map[int64]*facilityservice.Facility{
			10: {ID: 10, Name: "Center Arena", OwnerID: "owner-1", IsActive: true},
		},
		courts: map[int64]*facilityservice.Court{
			1: {ID: 1, FacilityID: 10, Name: "Court 1", SportType: "badminton", PricePerHour: 500, IsActive: true},
		},
	}
	return NewService(repo, client, nopLogger{}), repo
}

func validUpsert() *models.UpsertScheduleRequest {
	return &models.UpsertScheduleRequest{
		UserID:              "owner-1",
		FacilityID:          10,
		OpenTime:            "08:00",
		CloseTime:           "20:00",
		SlotDurationMinutes: 60,
	}
}

func TestGet_DefaultWhenNothingConfigured(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.Get(context.Background(), &models.GetScheduleRequest{FacilityID: 10})

	require.NoError(t, err)
	assert.True(t, resp.IsDefault)
	assert.Equal(t, domain.DefaultOpenTime, resp.OpenTime)
	assert.Equal(t, domain.DefaultCloseTime, resp.CloseTime)
	assert.Equal(t, domain.DefaultSlotDurationMinutes, resp.SlotDurationMinutes)
}

func TestUpsertThenGet_FacilityWide(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Upsert(context.Background(), validUpsert())
	require.NoError(t, err)
	assert.False(t, created.IsDefault)

	resp, err := svc.Get(context.Background(), &models.GetScheduleRequest{FacilityID: 10, CourtID: ptr.Ptr(int64(1))})
	require.NoError(t, err)
	assert.Equal(t, "08:00", resp.OpenTime)
	assert.Equal(t, 60, resp.SlotDurationMinutes)
}

func TestUpsert_CourtLevelOverridesFacility(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Upsert(ctx, validUpsert())
	require.NoError(t, err)

	courtReq := validUpsert()
	courtReq.CourtID = ptr.Ptr(int64(1))
	courtReq.OpenTime = "06:00"
	courtReq.SlotDurationMinutes = 30
	_, err = svc.Upsert(ctx, courtReq)
	require.NoError(t, err)

	// Для корта 1 действует его собственное расписание
	resp, err := svc.Get(ctx, &models.GetScheduleRequest{FacilityID: 10, CourtID: ptr.Ptr(int64(1))})
	require.NoError(t, err)
	assert.Equal(t, "06:00", resp.OpenTime)

	// Без указания корта - уровень площадки
	resp, err = svc.Get(ctx, &models.GetScheduleRequest{FacilityID: 10})
	require.NoError(t, err)
	assert.Equal(t, "08:00", resp.OpenTime)
}

func TestUpsert_NotOwner(t *testing.T) {
	svc, repo := newTestService()

	req := validUpsert()
	req.UserID = "user-x"

	_, err := svc.Upsert(context.Background(), req)

	require.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.schedules)
}

func TestUpsert_FacilityNotFound(t *testing.T) {
	svc, _ := newTestService()

	req := validUpsert()
	req.FacilityID = 999

	_, err := svc.Upsert(context.Background(), req)

	require.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestUpsert_CourtNotFound(t *testing.T) {
	svc, _ := newTestService()

	req := validUpsert()
	req.CourtID = ptr.Ptr(int64(999))

	_, err := svc.Upsert(context.Background(), req)

	require.ErrorIs(t, err, ErrCourtNotFound)
}

func TestUpsert_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *models.UpsertScheduleRequest)
	}{
		{name: "open after close", mutate: func(r *models.UpsertScheduleRequest) { r.OpenTime, r.CloseTime = r.CloseTime, r.OpenTime }},
		{name: "open equals close", mutate: func(r *models.UpsertScheduleRequest) { r.CloseTime = r.OpenTime }},
		{name: "malformed open time", mutate: func(r *models.UpsertScheduleRequest) { r.OpenTime = "8am" }},
		{name: "duration too short", mutate: func(r *models.UpsertScheduleRequest) { r.SlotDurationMinutes = 5 }},
		{name: "duration too long", mutate: func(r *models.UpsertScheduleRequest) { r.SlotDurationMinutes = 720 }},
		{name: "missing user id", mutate: func(r *models.UpsertScheduleRequest) { r.UserID = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService()

			req := validUpsert()
			tt.mutate(req)

			_, err := svc.Upsert(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestDelete(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := svc.Upsert(ctx, validUpsert())
	require.NoError(t, err)

	err = svc.Delete(ctx, 10, nil, "owner-1")
	require.NoError(t, err)
	assert.Empty(t, repo.schedules)

	// Повторное удаление - расписание уже не настроено
	err = svc.Delete(ctx, 10, nil, "owner-1")
	require.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestDelete_NotOwner(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Upsert(ctx, validUpsert())
	require.NoError(t, err)

	err = svc.Delete(ctx, 10, nil, "user-x")
	require.ErrorIs(t, err, ErrAccessDenied)
}
