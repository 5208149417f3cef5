package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quickcourt/QC-BookingService/pkg/types"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     types.TimeString
		want                           bool
	}{
		{name: "identical intervals", aStart: "10:00", aEnd: "11:00", bStart: "10:00", bEnd: "11:00", want: true},
		{name: "partial overlap", aStart: "10:00", aEnd: "11:00", bStart: "10:30", bEnd: "11:30", want: true},
		{name: "contained interval", aStart: "10:00", aEnd: "12:00", bStart: "10:30", bEnd: "11:00", want: true},
		{name: "touching end to start", aStart: "10:00", aEnd: "11:00", bStart: "11:00", bEnd: "12:00", want: false},
		{name: "touching start to end", aStart: "11:00", aEnd: "12:00", bStart: "10:00", bEnd: "11:00", want: false},
		{name: "disjoint", aStart: "08:00", aEnd: "09:00", bStart: "14:00", bEnd: "15:00", want: false},
		{name: "one minute overlap", aStart: "10:00", aEnd: "11:01", bStart: "11:00", bEnd: "12:00", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Предикат симметричен относительно порядка интервалов
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestCountBlocking(t *testing.T) {
	bookings := []*Booking{
		{StartTime: "09:00", EndTime: "10:00", Status: StatusBooked},
		{StartTime: "10:00", EndTime: "11:00", Status: StatusCancelled}, // отменено — слот свободен
		{StartTime: "10:30", EndTime: "11:30", Status: StatusBooked},
		{StartTime: "12:00", EndTime: "13:00", Status: StatusCompleted}, // история, не блокирует
	}

	assert.Equal(t, 1, CountBlocking(bookings, "09:30", "10:30"))
	assert.Equal(t, 1, CountBlocking(bookings, "10:00", "11:00"))
	assert.Equal(t, 0, CountBlocking(bookings, "11:30", "12:30"))
	assert.Equal(t, 2, CountBlocking(bookings, "09:00", "11:00"))
}

func TestBooking_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusBooked}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCompleted}).CanBeCancelled())
}
