package check_availability

import (
	"time"

	"github.com/quickcourt/QC-BookingService/pkg/types"
)

// AvailabilityStatus вердикт проверки доступности слота
type AvailabilityStatus string

const (
	StatusAvailable   AvailabilityStatus = "available"
	StatusConflicting AvailabilityStatus = "conflicting"
)

// Request модель запроса на проверку доступности
type Request struct {
	CourtID   int64            // ID корта
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Начало интервала (например, "10:00")
	EndTime   types.TimeString // Конец интервала, не включается (например, "11:00")
}

// Response модель ответа с вердиктом доступности
type Response struct {
	CourtID   int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    AvailabilityStatus
}
