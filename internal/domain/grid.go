package domain

import "time"

// WeekGrid is the 7-day x 9-hour availability table of one staff member.
// Cells[i][j] is true when hour Hours[i] on Days[j] is free.
type WeekGrid struct {
	StaffID int64
	Days    []time.Time // local midnights, ordered
	Hours   []int
	Cells   [][]bool

	PreviousWeekStart time.Time
	NextWeekStart     time.Time
	Today             time.Time
	PublicHolidays    []string
}

// NewWeekGrid creates a grid for the given days with every cell available.
func NewWeekGrid(staffID int64, days []time.Time) *WeekGrid {
	hours := VisibleHours()
	cells := make([][]bool, len(hours))
	for i := range cells {
		row := make([]bool, len(days))
		for j := range row {
			row[j] = true
		}
		cells[i] = row
	}
	return &WeekGrid{StaffID: staffID, Days: days, Hours: hours, Cells: cells}
}

// FirstDay returns the first date of the grid
func (g *WeekGrid) FirstDay() time.Time {
	if len(g.Days) == 0 {
		return time.Time{}
	}
	return g.Days[0]
}

// LastDay returns the last date of the grid
func (g *WeekGrid) LastDay() time.Time {
	if len(g.Days) == 0 {
		return time.Time{}
	}
	return g.Days[len(g.Days)-1]
}

// Mark sets the cell holding start to booked. start is read in the zone of the grid days.
// Instants outside the visible hours or dates are ignored.
func (g *WeekGrid) Mark(start time.Time) {
	if len(g.Days) == 0 {
		return
	}
	localStart := start.In(g.Days[0].Location())
	row := localStart.Hour() - FirstHour
	if row < 0 || row >= len(g.Cells) {
		return
	}
	col := g.dayIndex(localStart)
	if col < 0 {
		return
	}
	g.Cells[row][col] = false
}

// Available reports whether (hour, date) is free. Cells outside the grid report false.
func (g *WeekGrid) Available(hour int, date time.Time) bool {
	row := hour - FirstHour
	if row < 0 || row >= len(g.Cells) {
		return false
	}
	col := g.dayIndex(date)
	if col < 0 {
		return false
	}
	return g.Cells[row][col]
}

func (g *WeekGrid) dayIndex(t time.Time) int {
	for i, d := range g.Days {
		local := t.In(d.Location())
		if local.Year() == d.Year() && local.Month() == d.Month() && local.Day() == d.Day() {
			return i
		}
	}
	return -1
}

// DayDetail lists the schedules of one date grouped by visible hour.
type DayDetail struct {
	StaffID int64
	Date    time.Time
	Hours   []int
	Slots   map[int][]*Schedule
}
