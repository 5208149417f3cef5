package update_facility_schedule

import (
	"github.com/quickcourt/QC-BookingService/internal/service/schedule/models"
)

// UpdateScheduleRequest HTTP request model
type UpdateScheduleRequest struct {
	CourtID             *int64 `json:"courtId,omitempty"` // NULL = расписание для всей площадки
	OpenTime            string `json:"openTime"`          // "08:00"
	CloseTime           string `json:"closeTime"`         // "22:00"
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateScheduleRequest) ToServiceRequest(facilityID int64, userID string) *models.UpsertScheduleRequest {
	return &models.UpsertScheduleRequest{
		UserID:              userID,
		FacilityID:          facilityID,
		CourtID:             r.CourtID,
		OpenTime:            r.OpenTime,
		CloseTime:           r.CloseTime,
		SlotDurationMinutes: r.SlotDurationMinutes,
	}
}
