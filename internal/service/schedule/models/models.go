package models

import (
	"time"

	"github.com/quickcourt/QC-BookingService/internal/domain"
	"github.com/quickcourt/QC-BookingService/pkg/types"
)

// Request модели

// GetScheduleRequest запрос на получение действующего расписания
// CourtID может быть nil - тогда возвращается расписание уровня площадки
type GetScheduleRequest struct {
	FacilityID int64  `json:"facilityId"`
	CourtID    *int64 `json:"courtId,omitempty"`
}

// UpsertScheduleRequest запрос на создание или обновление расписания
type UpsertScheduleRequest struct {
	UserID              string `json:"userId"`
	FacilityID          int64  `json:"facilityId"`
	CourtID             *int64 `json:"courtId,omitempty"` // NULL = для всех кортов площадки
	OpenTime            string `json:"openTime"`          // "08:00"
	CloseTime           string `json:"closeTime"`         // "22:00"
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
}

// ToDomainSchedule конвертирует UpsertScheduleRequest в domain модель
func (r *UpsertScheduleRequest) ToDomainSchedule() *domain.CourtSchedule {
	return &domain.CourtSchedule{
		FacilityID:          r.FacilityID,
		CourtID:             r.CourtID,
		OpenTime:            types.TimeString(r.OpenTime),
		CloseTime:           types.TimeString(r.CloseTime),
		SlotDurationMinutes: r.SlotDurationMinutes,
	}
}

// Response модели

// ScheduleResponse ответ с данными расписания
type ScheduleResponse struct {
	ID                  int64      `json:"id,omitempty"` // 0 для встроенного дефолта
	FacilityID          int64      `json:"facilityId"`
	CourtID             *int64     `json:"courtId,omitempty"`
	OpenTime            string     `json:"openTime"`
	CloseTime           string     `json:"closeTime"`
	SlotDurationMinutes int        `json:"slotDurationMinutes"`
	IsDefault           bool       `json:"isDefault"` // true, если расписание не настроено и действует дефолт
	CreatedAt           *time.Time `json:"createdAt,omitempty"`
	UpdatedAt           *time.Time `json:"updatedAt,omitempty"`
}

// Методы конвертации

// FromDomainSchedule конвертирует domain модель в DTO
func FromDomainSchedule(s *domain.CourtSchedule) *ScheduleResponse {
	if s == nil {
		return nil
	}

	resp := &ScheduleResponse{
		ID:                  s.ID,
		FacilityID:          s.FacilityID,
		CourtID:             s.CourtID,
		OpenTime:            s.OpenTime.String(),
		CloseTime:           s.CloseTime.String(),
		SlotDurationMinutes: s.SlotDurationMinutes,
	}

	if s.ID != 0 {
		createdAt := s.CreatedAt
		updatedAt := s.UpdatedAt
		resp.CreatedAt = &createdAt
		resp.UpdatedAt = &updatedAt
	} else {
		resp.IsDefault = true
	}

	return resp
}
