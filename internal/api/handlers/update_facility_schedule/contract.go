package update_facility_schedule

import (
	"context"

	"github.com/quickcourt/QC-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	Upsert(ctx context.Context, req *models.UpsertScheduleRequest) (*models.ScheduleResponse, error)
	Delete(ctx context.Context, facilityID int64, courtID *int64, userID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
