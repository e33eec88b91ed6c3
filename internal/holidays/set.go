package holidays

import (
	"encoding/json"
	"slices"
	"strings"
	"time"
)

// Set is an immutable set of calendar dates, each a full non-working day.
// The zero value is an empty set.
type Set struct {
	dates map[string]struct{}
}

// NewSet builds a Set from feed entries. An entry is accepted when it starts
// with a YYYY-MM-DD date ("2025-01-06" or "2025-01-06T00:00:00Z"); the rejected
// entries are returned so callers can report them.
func NewSet(entries []string) (Set, []string) {
	dates := make(map[string]struct{}, len(entries))
	var rejected []string
	for _, e := range entries {
		key, ok := dateKey(e)
		if !ok {
			rejected = append(rejected, e)
			continue
		}
		dates[key] = struct{}{}
	}
	return Set{dates: dates}, rejected
}

// MustSet is NewSet for literals in tests and static configuration. It panics
// on a malformed entry.
func MustSet(entries ...string) Set {
	s, rejected := NewSet(entries)
	if len(rejected) > 0 {
		panic("holidays: malformed dates " + strings.Join(rejected, ", "))
	}
	return s
}

func dateKey(entry string) (string, bool) {
	entry = strings.TrimSpace(entry)
	if len(entry) < len(time.DateOnly) {
		return "", false
	}
	key := entry[:len(time.DateOnly)]
	if _, err := time.Parse(time.DateOnly, key); err != nil {
		return "", false
	}
	if len(entry) > len(key) && entry[len(key)] != 'T' && entry[len(key)] != ' ' {
		return "", false
	}
	return key, true
}

// IsHoliday reports whether t's calendar date, in t's location, is in the set.
func (s Set) IsHoliday(t time.Time) bool {
	_, ok := s.dates[t.Format(time.DateOnly)]
	return ok
}

// Len returns the number of dates.
func (s Set) Len() int {
	return len(s.dates)
}

// Dates returns the dates in ascending order.
func (s Set) Dates() []string {
	out := make([]string, 0, len(s.dates))
	for d := range s.dates {
		out = append(out, d)
	}
	slices.Sort(out)
	return out
}

// MarshalJSON encodes the set as a sorted array of dates.
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Dates())
}

// UnmarshalJSON decodes an array of dates. Malformed entries are dropped.
func (s *Set) UnmarshalJSON(data []byte) error {
	var entries []string
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	*s, _ = NewSet(entries)
	return nil
}

// Merge returns the union of sets.
func Merge(sets ...Set) Set {
	n := 0
	for _, s := range sets {
		n += len(s.dates)
	}
	dates := make(map[string]struct{}, n)
	for _, s := range sets {
		for d := range s.dates {
			dates[d] = struct{}{}
		}
	}
	return Set{dates: dates}
}
