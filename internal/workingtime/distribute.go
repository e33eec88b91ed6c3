package workingtime

import "time"

// AddWorkingDays advances n working days. Each step moves to start-hour of the
// next calendar day and counts it only when it is a working day, so the result
// is pinned to start-hour regardless of t's time of day. n <= 0 returns t.
func (c *Calendar) AddWorkingDays(t time.Time, n int) time.Time {
	if n <= 0 {
		return t
	}
	cur := t.In(c.schedule.Location)
	for added := 0; added < n; {
		cur = c.startOfNextDay(cur)
		if !c.IsNonWorkingDay(cur) {
			added++
		}
	}
	return cur
}

// AddWorkingHours consumes d of working time starting at t. Time is consumed
// in blocks ending at lunch-start or end-hour; a block's length is counted
// from the start of the current hour, so 11:30 has one hour available before
// lunch. Whenever the clock leaves working time it moves to the next working
// instant, which also applies to the result. d <= 0 returns t.
func (c *Calendar) AddWorkingHours(t time.Time, d time.Duration) time.Time {
	if d <= 0 {
		return t
	}
	cur := t.In(c.schedule.Location)
	remaining := d
	for remaining > 0 {
		cur = c.NextWorkingInstant(cur)

		boundary := c.schedule.EndHour
		if cur.Hour() < c.schedule.LunchStartHour {
			boundary = c.schedule.LunchStartHour
		}
		available := time.Duration(boundary-cur.Hour()) * time.Hour

		step := min(available, remaining)
		cur = cur.Add(step)
		remaining -= step
	}
	return c.NextWorkingInstant(cur)
}

// Add applies days first, then hours from the resulting anchor.
func (c *Calendar) Add(t time.Time, days int, hours time.Duration) time.Time {
	return c.AddWorkingHours(c.AddWorkingDays(t, days), hours)
}
