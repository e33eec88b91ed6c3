package workingtime

import (
	"fmt"
	"math"
	"time"
)

// MaxHours bounds a single request; time.Duration overflows near 2.5M hours.
const MaxHours = 1_000_000

// HoursToDuration converts a real number of hours to a fixed-precision
// duration rounded to the millisecond.
func HoursToDuration(hours float64) (time.Duration, error) {
	switch {
	case math.IsNaN(hours), math.IsInf(hours, 0):
		return 0, fmt.Errorf("%w: %v is not a finite number", ErrInvalidHours, hours)
	case hours < 0:
		return 0, fmt.Errorf("%w: %v is negative", ErrInvalidHours, hours)
	case hours > MaxHours:
		return 0, fmt.Errorf("%w: %v exceeds %d", ErrInvalidHours, hours, MaxHours)
	}
	ms := math.Round(hours * float64(time.Hour/time.Millisecond))
	return time.Duration(ms) * time.Millisecond, nil
}
