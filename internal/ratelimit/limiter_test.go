package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time         { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestLimiter_Allow(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 1, 6, 13, 0, 0, 0, time.UTC)}
	l := NewLimiter(1, 2, WithClock(clock.Now))

	first := l.Allow("203.0.113.7")
	assert.True(t, first.Allowed)
	assert.Equal(t, 2, first.Limit)
	assert.Equal(t, 1, first.Remaining)

	assert.True(t, l.Allow("203.0.113.7").Allowed)

	denied := l.Allow("203.0.113.7")
	assert.False(t, denied.Allowed)
	assert.Equal(t, time.Second, denied.RetryAfter)

	t.Run("keys are independent", func(t *testing.T) {
		assert.True(t, l.Allow("198.51.100.4").Allowed)
	})

	t.Run("tokens refill over time", func(t *testing.T) {
		clock.Advance(time.Second)
		assert.True(t, l.Allow("203.0.113.7").Allowed)
	})
}

func TestLimiter_EvictsIdleBuckets(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 1, 6, 13, 0, 0, 0, time.UTC)}
	l := NewLimiter(10, 10, WithClock(clock.Now), WithIdleTTL(time.Minute))

	l.Allow("a")
	l.Allow("b")
	assert.Equal(t, 2, l.Len())

	clock.Advance(30 * time.Second)
	l.Allow("b")

	clock.Advance(45 * time.Second)
	l.Allow("c")
	assert.Equal(t, 2, l.Len(), "only the idle bucket is dropped")
}
