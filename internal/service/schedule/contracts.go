package schedule

import (
	"context"

	"github.com/quickcourt/QC-BookingService/internal/domain"
	"github.com/quickcourt/QC-BookingService/internal/integrations/facilityservice"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetByFacilityAndCourt(ctx context.Context, facilityID int64, courtID *int64) (*domain.CourtSchedule, error)
	GetScheduleWithHierarchy(ctx context.Context, facilityID int64, courtID *int64) (*domain.CourtSchedule, error)
	Upsert(ctx context.Context, schedule *domain.CourtSchedule) (*domain.CourtSchedule, error)
	Delete(ctx context.Context, id int64) error
}

// FacilityServiceClient интерфейс клиента для FacilityService
type FacilityServiceClient interface {
	GetFacility(ctx context.Context, facilityID int64) (*facilityservice.Facility, error)
	GetCourt(ctx context.Context, facilityID, courtID int64) (*facilityservice.Court, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
