package workingtime

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddWorkingHours(t *testing.T) {
	c := newCalendar(t, holidaySet{"2025-01-13": true})

	tests := []struct {
		name  string
		start time.Time
		hours float64
		want  time.Time
	}{
		{"one hour inside the morning", at(6, 8, 0), 1, at(6, 9, 0)},
		{"crosses lunch", at(6, 11, 0), 2, at(6, 14, 0)},
		{"half hour before lunch plus one", at(6, 11, 30), 1, at(6, 13, 0)},
		{"landing on lunch start moves to lunch end", at(6, 8, 0), 4, at(6, 13, 0)},
		{"end of day rollover", at(6, 16, 0), 2, at(7, 9, 0)},
		{"landing on end of day moves to next morning", at(6, 16, 0), 1, at(7, 8, 0)},
		{"full working day", at(6, 8, 0), 8, at(7, 8, 0)},
		{"friday afternoon into monday", at(3, 16, 0), 3, at(6, 10, 0)},
		{"weekend start normalizes first", at(4, 10, 0), 1, at(6, 9, 0)},
		{"lunch start normalizes first", at(6, 12, 15), 1, at(6, 14, 0)},
		{"before start normalizes first", at(6, 5, 0), 2, at(6, 10, 0)},
		{"skips holiday monday", at(10, 16, 0), 2, at(14, 9, 0)},
		{"fractional hours", at(6, 8, 0), 0.5, at(6, 8, 30)},
		{"fractional into lunch", at(6, 11, 45), 0.75, at(6, 13, 0)},
		{"mid-hour start past the end of day", at(6, 16, 30), 1, at(7, 8, 0)},
		{"mid-hour start spanning lunch", at(6, 11, 30), 2, at(6, 14, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := HoursToDuration(tt.hours)
			require.NoError(t, err)
			got := c.AddWorkingHours(tt.start, d)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestAddWorkingHoursZeroIsIdentity(t *testing.T) {
	c := newCalendar(t, nil)

	for _, start := range []time.Time{at(6, 9, 0), at(4, 10, 0), at(6, 12, 30), at(6, 20, 0)} {
		assert.Equal(t, start, c.AddWorkingHours(start, 0))
		assert.Equal(t, start, c.AddWorkingHours(start, -time.Hour))
	}
}

func TestAddWorkingHoursAlwaysLandsOnWorkingInstant(t *testing.T) {
	c := newCalendar(t, holidaySet{"2025-01-07": true, "2025-01-13": true})
	durations := []time.Duration{
		time.Minute, 30 * time.Minute, time.Hour, 3*time.Hour + 20*time.Minute, 4 * time.Hour, 8 * time.Hour, 27 * time.Hour,
	}

	for cur := at(3, 0, 0); cur.Before(at(13, 0, 0)); cur = cur.Add(23 * time.Minute) {
		for _, d := range durations {
			assertWorking(t, c, c.AddWorkingHours(cur, d))
		}
	}
}

func TestAddWorkingHoursDoesNotDrift(t *testing.T) {
	c := newCalendar(t, nil)

	step, err := HoursToDuration(0.1)
	require.NoError(t, err)

	stepped := at(6, 8, 0)
	for range 80 {
		stepped = c.AddWorkingHours(stepped, step)
	}
	whole := c.AddWorkingHours(at(6, 8, 0), 8*time.Hour)

	assert.True(t, whole.Equal(stepped), "want %s, got %s", whole, stepped)
	assert.True(t, at(7, 8, 0).Equal(stepped))
}

func TestAddWorkingHoursIsAdditiveOnWholeHours(t *testing.T) {
	c := newCalendar(t, holidaySet{"2025-01-13": true})

	start := at(6, 10, 0)
	split := c.AddWorkingHours(c.AddWorkingHours(start, 5*time.Hour), 7*time.Hour)
	once := c.AddWorkingHours(start, 12*time.Hour)
	assert.True(t, once.Equal(split), "want %s, got %s", once, split)
}

func TestAddWorkingHoursCountsBlocksFromTheHour(t *testing.T) {
	c := newCalendar(t, nil)

	// 11:30 has a full hour before lunch, so splitting the same hour differs.
	once := c.AddWorkingHours(at(6, 11, 30), time.Hour)
	split := c.AddWorkingHours(c.AddWorkingHours(at(6, 11, 30), 30*time.Minute), 30*time.Minute)

	assert.True(t, at(6, 13, 0).Equal(once), "got %s", once)
	assert.True(t, at(6, 13, 30).Equal(split), "got %s", split)
}

func TestAddWorkingDays(t *testing.T) {
	c := newCalendar(t, holidaySet{"2025-01-10": true})

	tests := []struct {
		name  string
		start time.Time
		days  int
		want  time.Time
	}{
		{"friday plus one skips the weekend", at(3, 8, 0), 1, at(6, 8, 0)},
		{"time of day is pinned to start", at(6, 15, 30), 1, at(7, 8, 0)},
		{"next day holiday is skipped", at(9, 8, 0), 1, at(13, 8, 0)},
		{"one week", at(6, 8, 0), 5, at(14, 8, 0)},
		{"saturday plus one", at(4, 10, 0), 1, at(6, 8, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.AddWorkingDays(tt.start, tt.days)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}

	t.Run("zero and negative are no-ops", func(t *testing.T) {
		start := at(6, 15, 30)
		assert.Equal(t, start, c.AddWorkingDays(start, 0))
		assert.Equal(t, start, c.AddWorkingDays(start, -3))
	})
}

func TestAdd(t *testing.T) {
	c := newCalendar(t, nil)

	t.Run("days first then hours", func(t *testing.T) {
		got := c.Add(at(3, 8, 0), 1, time.Hour)
		assert.True(t, at(6, 9, 0).Equal(got), "got %s", got)
	})

	t.Run("hours only", func(t *testing.T) {
		got := c.Add(at(6, 16, 0), 0, 2*time.Hour)
		assert.True(t, at(7, 9, 0).Equal(got), "got %s", got)
	})

	t.Run("days only keeps start hour", func(t *testing.T) {
		got := c.Add(at(6, 11, 0), 2, 0)
		assert.True(t, at(8, 8, 0).Equal(got), "got %s", got)
	})
}

func TestHoursToDuration(t *testing.T) {
	tests := []struct {
		name    string
		hours   float64
		want    time.Duration
		wantErr bool
	}{
		{"whole hours", 3, 3 * time.Hour, false},
		{"tenth of an hour", 0.1, 6 * time.Minute, false},
		{"rounds to millisecond", 1.0 / 3.0, 20 * time.Minute, false},
		{"zero", 0, 0, false},
		{"negative", -1, 0, true},
		{"too large", MaxHours + 1, 0, true},
		{"not a number", math.NaN(), 0, true},
		{"infinite", math.Inf(1), 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HoursToDuration(tt.hours)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidHours)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
