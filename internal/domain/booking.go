package domain

import (
	"time"

	"github.com/quickcourt/QC-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusBooked    BookingStatus = "booked"
	StatusCancelled BookingStatus = "cancelled"
	// StatusCompleted is informational: it is written by an external batch
	// process after the slot has passed, no operation of this service sets it
	StatusCompleted BookingStatus = "completed"
)

// Booking represents one reservation of a court for a time window on a date
type Booking struct {
	ID         int64
	FacilityID int64
	CourtID    int64
	UserID     string // Идентификатор из внешнего identity-провайдера, непрозрачный для сервиса

	BookingDate time.Time // Дата по локальному времени площадки, без тайзоны
	StartTime   types.TimeString
	EndTime     types.TimeString
	Status      BookingStatus

	TotalAmount float64 // Снимок цены на момент бронирования, неизменяемый

	PaymentRef *string // Ссылки платежного шлюза, сервис их только хранит
	OrderRef   *string

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BlocksSlot returns true if the booking holds its interval against new bookings.
// Cancelled bookings free their slot; completed ones are kept for history only.
func (b *Booking) BlocksSlot() bool {
	return b.Status == StatusBooked
}

// CanBeCancelled returns true if the booking may transition to cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusBooked
}

// IsTerminal returns true if the booking is in a terminal state
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCancelled || b.Status == StatusCompleted
}

// OverlapsInterval reports whether the booking interval intersects [start, end)
func (b *Booking) OverlapsInterval(start, end types.TimeString) bool {
	return Overlaps(b.StartTime, b.EndTime, start, end)
}

// FacilityBookingsFilter фильтр для выборки бронирований площадки (дашборд владельца)
type FacilityBookingsFilter struct {
	FacilityID      int64          // Обязательный параметр
	CourtID         *int64         // Фильтр по корту (опционально)
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отмененные бронирования
}
