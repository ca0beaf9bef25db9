package domain

import "time"

// ScheduleKind distinguishes customer bookings from staff-added blocks
type ScheduleKind string

const (
	KindBooking ScheduleKind = "booking"
	KindHoliday ScheduleKind = "holiday"
)

// Schedule represents a reservation of a staff member's time.
// Start and End are absolute instants; End is normally Start + 1h.
type Schedule struct {
	ID      int64
	StaffID int64
	Start   time.Time
	End     time.Time
	Name    string
	Kind    ScheduleKind

	CreatedAt time.Time
}

// Overlaps reports whether the schedule intersects the half-open window [start, end).
// The same rule is used by the SQL predicate of the schedule repository.
func (s *Schedule) Overlaps(start, end time.Time) bool {
	return s.Start.Before(end) && s.End.After(start)
}

// IsHoliday returns true for staff-added blocks
func (s *Schedule) IsHoliday() bool {
	return s.Kind == KindHoliday
}
