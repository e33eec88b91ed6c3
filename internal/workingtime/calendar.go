// Package workingtime implements working-time arithmetic over a fixed business
// calendar: weekends and holidays are skipped, as are the hours outside the
// daily schedule and the lunch break.
//
// All calendar decisions are made on the schedule's location; callers may pass
// instants in any location.
package workingtime

import (
	"time"

	"github.com/rickar/cal/v2"
)

// Holidays reports whether a calendar date is a full non-working day. The
// date is taken from t in t's own location.
type Holidays interface {
	IsHoliday(t time.Time) bool
}

// Calendar combines a Schedule with a holiday set. It holds no mutable state
// and is safe for concurrent use as long as the Holidays value is.
type Calendar struct {
	schedule Schedule
	holidays Holidays
}

// Option configures a Calendar.
type Option func(*Calendar)

// WithSchedule replaces DefaultSchedule.
func WithSchedule(s Schedule) Option {
	return func(c *Calendar) {
		c.schedule = s
	}
}

// New builds a Calendar. holidays may be nil, in which case only weekends are
// non-working days.
func New(holidays Holidays, opts ...Option) (*Calendar, error) {
	c := &Calendar{
		schedule: DefaultSchedule,
		holidays: holidays,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if err := c.schedule.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Schedule returns the calendar's work schedule.
func (c *Calendar) Schedule() Schedule {
	return c.schedule
}

// Location returns the business timezone.
func (c *Calendar) Location() *time.Location {
	return c.schedule.Location
}

// IsNonWorkingDay reports whether t falls on a Saturday, a Sunday or a holiday.
// Only the calendar date matters, not the time of day.
func (c *Calendar) IsNonWorkingDay(t time.Time) bool {
	local := t.In(c.schedule.Location)
	if cal.IsWeekend(local) {
		return true
	}
	return c.holidays != nil && c.holidays.IsHoliday(local)
}

// IsLunchBreak reports whether lunch-start <= hour < lunch-end.
func (c *Calendar) IsLunchBreak(t time.Time) bool {
	h := t.In(c.schedule.Location).Hour()
	return h >= c.schedule.LunchStartHour && h < c.schedule.LunchEndHour
}

// at returns hour:00 on the calendar date of t.
func (c *Calendar) at(t time.Time, hour int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, hour, 0, 0, 0, c.schedule.Location)
}

// startOfNextDay returns start-hour on the calendar day after t.
func (c *Calendar) startOfNextDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+1, c.schedule.StartHour, 0, 0, 0, c.schedule.Location)
}
