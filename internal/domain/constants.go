package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default slot grid values, used when a facility has no schedule configured
const (
	DefaultOpenTime            = "05:00"
	DefaultCloseTime           = "22:00"
	DefaultSlotDurationMinutes = 30
)

// Business validation constants
const (
	MinSlotDurationMinutes = 15
	MaxSlotDurationMinutes = 480 // 8 hours
)
