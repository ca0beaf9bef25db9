package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func weekFrom(loc *time.Location, y int, m time.Month, d int) []time.Time {
	days := make([]time.Time, DaysInWeek)
	for i := range days {
		days[i] = time.Date(y, m, d+i, 0, 0, 0, 0, loc)
	}
	return days
}

func TestWeekGrid_DefaultsToAvailable(t *testing.T) {
	g := NewWeekGrid(1, weekFrom(time.UTC, 2026, 10, 16))

	assert.Len(t, g.Hours, 9)
	assert.Equal(t, 9, g.Hours[0])
	assert.Equal(t, 17, g.Hours[8])
	for _, row := range g.Cells {
		assert.Len(t, row, DaysInWeek)
		for _, free := range row {
			assert.True(t, free)
		}
	}
}

func TestWeekGrid_Mark(t *testing.T) {
	loc := time.FixedZone("JST", 9*3600)
	days := weekFrom(loc, 2026, 10, 16)

	tests := []struct {
		name   string
		start  time.Time
		marked bool
	}{
		{name: "first visible hour", start: time.Date(2026, 10, 17, 9, 0, 0, 0, loc), marked: true},
		{name: "last visible hour", start: time.Date(2026, 10, 22, 17, 0, 0, 0, loc), marked: true},
		{name: "utc instant rendered in local zone", start: time.Date(2026, 10, 16, 1, 0, 0, 0, time.UTC), marked: true},
		{name: "hour 8", start: time.Date(2026, 10, 17, 8, 0, 0, 0, loc)},
		{name: "hour 18", start: time.Date(2026, 10, 17, 18, 0, 0, 0, loc)},
		{name: "midnight holiday", start: time.Date(2026, 10, 17, 0, 0, 0, 0, loc)},
		{name: "week before", start: time.Date(2026, 10, 9, 10, 0, 0, 0, loc)},
		{name: "week after", start: time.Date(2026, 10, 23, 10, 0, 0, 0, loc)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWeekGrid(1, days)
			g.Mark(tt.start)

			booked := 0
			for _, row := range g.Cells {
				for _, free := range row {
					if !free {
						booked++
					}
				}
			}

			if tt.marked {
				assert.Equal(t, 1, booked)
				local := tt.start.In(loc)
				assert.False(t, g.Available(local.Hour(), local))
			} else {
				assert.Zero(t, booked)
			}
		})
	}
}

func TestWeekGrid_AvailableOutOfRange(t *testing.T) {
	g := NewWeekGrid(1, weekFrom(time.UTC, 2026, 10, 16))

	assert.False(t, g.Available(8, g.FirstDay()))
	assert.False(t, g.Available(9, g.LastDay().AddDate(0, 0, 1)))
	assert.True(t, g.Available(9, g.LastDay()))
}

func TestSchedule_Overlaps(t *testing.T) {
	base := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	s := &Schedule{Start: base, End: base.Add(time.Hour)}

	assert.True(t, s.Overlaps(base, base.Add(time.Hour)))
	assert.True(t, s.Overlaps(base.Add(30*time.Minute), base.Add(90*time.Minute)))
	assert.False(t, s.Overlaps(base.Add(time.Hour), base.Add(2*time.Hour)))
	assert.False(t, s.Overlaps(base.Add(-time.Hour), base))
}
