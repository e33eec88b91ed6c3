package workingtime

import "time"

// NextWorkingInstant returns t itself when it already lies within working
// hours of a working day, otherwise the first working instant after it.
//
// The result is never on a non-working day, outside [start, end) or inside
// [lunch-start, lunch-end). Every branch moves the clock forward and the
// holiday set is finite, so the loop terminates.
func (c *Calendar) NextWorkingInstant(t time.Time) time.Time {
	cur := t.In(c.schedule.Location)
	for {
		if c.IsNonWorkingDay(cur) {
			cur = c.startOfNextDay(cur)
			continue
		}
		if start := c.at(cur, c.schedule.StartHour); cur.Before(start) {
			cur = start
		}
		if !cur.Before(c.at(cur, c.schedule.EndHour)) {
			cur = c.startOfNextDay(cur)
			continue
		}
		if c.IsLunchBreak(cur) {
			cur = c.at(cur, c.schedule.LunchEndHour)
		}
		return cur
	}
}

// IsWorkingInstant reports whether t is a fixed point of NextWorkingInstant.
func (c *Calendar) IsWorkingInstant(t time.Time) bool {
	return c.NextWorkingInstant(t).Equal(t)
}
