// Package localtime normalizes wall-clock values to the single configured local zone.
package localtime

import (
	"errors"
	"fmt"
	"time"
)

// DefaultZone is used when the configuration does not name a zone.
const DefaultZone = "Asia/Tokyo"

// ErrInvalidDateTime is returned when date/time components do not name a real local instant.
var ErrInvalidDateTime = errors.New("localtime: invalid date/time components")

// Clock converts between absolute time and the configured local zone.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

// New returns a Clock for the named IANA zone.
func New(zone string) (*Clock, error) {
	if zone == "" {
		zone = DefaultZone
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("localtime: load location %q: %w", zone, err)
	}
	return &Clock{loc: loc, now: time.Now}, nil
}

// NewFixed returns a Clock whose Now always reports t. Used by tests.
func NewFixed(loc *time.Location, t time.Time) *Clock {
	return &Clock{loc: loc, now: func() time.Time { return t }}
}

// Location returns the configured zone.
func (c *Clock) Location() *time.Location {
	return c.loc
}

// Now returns the current instant in the local zone.
func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

// Local converts t to the local zone.
func (c *Clock) Local(t time.Time) time.Time {
	return t.In(c.loc)
}

// Today returns local midnight of the current date.
func (c *Clock) Today() time.Time {
	return c.DayStart(c.Now())
}

// DayStart returns local midnight of the date t falls on in the local zone.
func (c *Clock) DayStart(t time.Time) time.Time {
	y, m, d := t.In(c.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, c.loc)
}

// AddDays moves a date by n calendar days, keeping local midnight across DST changes.
func (c *Clock) AddDays(date time.Time, n int) time.Time {
	y, m, d := date.In(c.loc).Date()
	return time.Date(y, m, d+n, 0, 0, 0, 0, c.loc)
}

// NextDay is AddDays(date, 1).
func (c *Clock) NextDay(date time.Time) time.Time {
	return c.AddDays(date, 1)
}

// Date builds local midnight of year/month/day, rejecting values time.Date would normalize.
// In zones where DST starts at midnight the result is the first existing instant of that date.
func (c *Clock) Date(year, month, day int) (time.Time, error) {
	return c.build(year, month, day, 0)
}

// DateTime builds the local instant year-month-day hour:00:00.
// An hour skipped by a DST transition is rejected rather than shifted.
func (c *Clock) DateTime(year, month, day, hour int) (time.Time, error) {
	t, err := c.build(year, month, day, hour)
	if err != nil {
		return time.Time{}, err
	}
	if t.Hour() != hour {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d %02d:00 does not exist in %s",
			ErrInvalidDateTime, year, month, day, hour, c.loc)
	}
	return t, nil
}

func (c *Clock) build(year, month, day, hour int) (time.Time, error) {
	if year < 1 || month < 1 || month > 12 || day < 1 || hour < 0 || hour > 23 {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d %02d:00", ErrInvalidDateTime, year, month, day, hour)
	}
	t := time.Date(year, time.Month(month), day, hour, 0, 0, 0, c.loc)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d %02d:00", ErrInvalidDateTime, year, month, day, hour)
	}
	return t, nil
}

// SameDate reports whether a and b fall on the same local calendar date.
func (c *Clock) SameDate(a, b time.Time) bool {
	y1, m1, d1 := a.In(c.loc).Date()
	y2, m2, d2 := b.In(c.loc).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
