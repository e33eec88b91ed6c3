package workingdate

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// OutputLayout is the UTC ISO-8601 layout of computed dates.
const OutputLayout = "2006-01-02T15:04:05Z"

// localLayouts are ISO-8601 forms without an offset; they are read as
// business-time wall clock.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	time.DateOnly,
}

// ErrInvalidAnchor is returned when a timestamp matches none of the accepted
// forms.
var ErrInvalidAnchor = errors.New("unrecognized timestamp")

const acceptedAnchorForms = "RFC 3339 (2006-01-02T15:04:05Z07:00), 2006-01-02T15:04:05, 2006-01-02T15:04 or 2006-01-02"

// ParseAnchor parses an ISO-8601 timestamp and converts it to loc. Timestamps
// with a zone designator keep their instant; those without are wall-clock
// time in loc.
func ParseAnchor(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.In(loc), nil
	}
	for _, layout := range localLayouts {
		if local, err := time.ParseInLocation(layout, value, loc); err == nil {
			return local, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w %q: want %s", ErrInvalidAnchor, value, acceptedAnchorForms)
}

// FormatInstant renders t in UTC with seconds precision.
func FormatInstant(t time.Time) string {
	return t.UTC().Format(OutputLayout)
}
