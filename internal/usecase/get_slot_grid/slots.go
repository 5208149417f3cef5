package get_slot_grid

import (
	"time"

	"github.com/quickcourt/QC-BookingService/internal/domain"
	"github.com/quickcourt/QC-BookingService/pkg/types"
)

// buildGrid строит сетку слотов: ячейки шагают от открытия до закрытия
// с шагом расписания, интервал каждой ячейки имеет длительность duration
func (uc *UseCase) buildGrid(schedule *domain.CourtSchedule, duration int, date time.Time, bookings []*domain.Booking) []Slot {
	now := uc.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	pastDate := day.Before(today)
	isToday := day.Equal(today)
	nowTime := types.NewTimeString(now)

	slots := make([]Slot, 0)

	for cellStart := schedule.OpenTime; cellStart.IsBefore(schedule.CloseTime); {
		cellEnd, err := cellStart.AddMinutes(duration)
		if err != nil {
			// Интервал вышел за границу суток
			break
		}

		if schedule.CloseTime.IsBefore(cellEnd) {
			break
		}

		available := true
		switch {
		case pastDate:
			available = false
		case isToday && !nowTime.IsBefore(cellStart):
			// Начало слота уже прошло
			available = false
		case domain.CountBlocking(bookings, cellStart, cellEnd) > 0:
			available = false
		}

		slots = append(slots, Slot{
			StartTime: cellStart,
			EndTime:   cellEnd,
			Available: available,
		})

		next, err := cellStart.AddMinutes(schedule.SlotDurationMinutes)
		if err != nil {
			break
		}
		cellStart = next
	}

	return slots
}
