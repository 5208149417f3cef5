package domain

import (
	"time"

	"github.com/quickcourt/QC-BookingService/pkg/types"
)

// CourtSchedule represents the slot grid configuration for a facility
// Supports two-level configuration:
// 1. Court-specific (facility_id, court_id)
// 2. Facility-wide (facility_id, NULL)
// When neither exists the built-in defaults apply (05:00-22:00, 30 min grid)
type CourtSchedule struct {
	ID                  int64
	FacilityID          int64
	CourtID             *int64 // NULL = schedule for all courts of the facility
	OpenTime            types.TimeString
	CloseTime           types.TimeString
	SlotDurationMinutes int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsFacilityWide returns true if this schedule applies to every court of the facility
func (s *CourtSchedule) IsFacilityWide() bool {
	return s.CourtID == nil
}

// DefaultSchedule returns the built-in grid used when nothing is configured
func DefaultSchedule() *CourtSchedule {
	return &CourtSchedule{
		OpenTime:            DefaultOpenTime,
		CloseTime:           DefaultCloseTime,
		SlotDurationMinutes: DefaultSlotDurationMinutes,
	}
}
