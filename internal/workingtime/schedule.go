package workingtime

import (
	"fmt"
	"time"
	_ "time/tzdata" // business timezone must resolve on hosts without zoneinfo
)

// BusinessTimezone is the IANA zone the work schedule is defined in.
const BusinessTimezone = "America/Bogota"

// Schedule is the fixed daily work schedule. Hours are whole hours of the day
// in Location.
type Schedule struct {
	StartHour      int
	LunchStartHour int
	LunchEndHour   int
	EndHour        int
	Location       *time.Location
}

// DefaultSchedule is Monday to Friday, 08:00-17:00 with a 12:00-13:00 break.
var DefaultSchedule = Schedule{
	StartHour:      8,
	LunchStartHour: 12,
	LunchEndHour:   13,
	EndHour:        17,
	Location:       BusinessLocation(),
}

// BusinessLocation loads BusinessTimezone. Colombia has no DST, so a fixed
// UTC-5 zone is an exact substitute if the database lookup fails.
func BusinessLocation() *time.Location {
	loc, err := time.LoadLocation(BusinessTimezone)
	if err != nil {
		return time.FixedZone("COT", -5*60*60)
	}
	return loc
}

// Validate enforces 0 <= start < lunch-start < lunch-end < end <= 24.
func (s Schedule) Validate() error {
	if s.Location == nil {
		return fmt.Errorf("%w: location is required", ErrInvalidSchedule)
	}
	if s.StartHour < 0 || s.EndHour > 24 {
		return fmt.Errorf("%w: hours must be within [0, 24]", ErrInvalidSchedule)
	}
	if !(s.StartHour < s.LunchStartHour && s.LunchStartHour < s.LunchEndHour && s.LunchEndHour < s.EndHour) {
		return fmt.Errorf("%w: want start < lunch-start < lunch-end < end, got %d/%d/%d/%d",
			ErrInvalidSchedule, s.StartHour, s.LunchStartHour, s.LunchEndHour, s.EndHour)
	}
	return nil
}

// WorkingHoursPerDay is the working time available on one working day.
func (s Schedule) WorkingHoursPerDay() time.Duration {
	return time.Duration((s.LunchStartHour-s.StartHour)+(s.EndHour-s.LunchEndHour)) * time.Hour
}
