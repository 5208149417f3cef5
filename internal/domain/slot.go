package domain

import "github.com/quickcourt/QC-BookingService/pkg/types"

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect.
//
// Строгие неравенства: граничащие интервалы пересечением не считаются.
// Слот 10:00-11:00 и слот 11:00-12:00 бронируются независимо — ровно это
// поведение ожидает пользователь, бронирующий два часа подряд
func Overlaps(aStart, aEnd, bStart, bEnd types.TimeString) bool {
	return aStart.IsBefore(bEnd) && bStart.IsBefore(aEnd)
}

// CountBlocking возвращает количество бронирований, удерживающих интервал [start, end)
// Учитываются только бронирования в статусе booked
func CountBlocking(bookings []*Booking, start, end types.TimeString) int {
	count := 0
	for _, booking := range bookings {
		if !booking.BlocksSlot() {
			continue
		}
		if booking.OverlapsInterval(start, end) {
			count++
		}
	}
	return count
}
