package workingtime

import "errors"

var (
	// ErrInvalidSchedule is returned when a Schedule violates its ordering invariant.
	ErrInvalidSchedule = errors.New("invalid work schedule")
	// ErrInvalidHours is returned for negative, non-finite or unrepresentable hour amounts.
	ErrInvalidHours = errors.New("invalid hours")
)
