package get_slot_grid

import (
	"time"

	"github.com/quickcourt/QC-BookingService/pkg/types"
)

// Request модель запроса сетки слотов
type Request struct {
	FacilityID int64     // ID площадки
	CourtID    int64     // ID корта
	Date       time.Time // Дата, на которую строится сетка

	// Длительность запрашиваемого бронирования в минутах
	// 0 означает длительность шага сетки из расписания
	DurationMinutes int
}

// Slot один элемент сетки: интервал [StartTime, EndTime) и его доступность
type Slot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Available bool
}

// Response модель ответа с построенной сеткой
type Response struct {
	CourtID             int64
	Date                time.Time
	OpenTime            types.TimeString
	CloseTime           types.TimeString
	SlotDurationMinutes int
	Slots               []Slot
}
