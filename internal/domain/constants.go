package domain

import "time"

// Calendar grid constants
const (
	FirstHour    = 9  // first visible hour row
	LastHour     = 17 // last visible hour row (inclusive)
	DaysInWeek   = 7
	SlotDuration = time.Hour
)

// Validation constants
const (
	MaxBookerNameLength   = 255
	MaxScheduleNameLength = 255
)

// Fixed labels and messages
const (
	HolidayName     = "Holiday (added by system)"
	ConflictMessage = "A booking arrived first for this slot. Please pick another time."
)

// Time format constants
const (
	TimeFormat     = "15:04"            // HH:MM
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	DateTimeFormat = "2006-01-02 15:04" // YYYY-MM-DD HH:MM
)

// VisibleHours returns the hour rows of the calendar grid in order.
func VisibleHours() []int {
	hours := make([]int, 0, LastHour-FirstHour+1)
	for h := FirstHour; h <= LastHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// IsVisibleHour reports whether hour is one of the calendar grid rows.
func IsVisibleHour(hour int) bool {
	return hour >= FirstHour && hour <= LastHour
}
