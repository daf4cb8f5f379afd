package activity

import (
	"sort"
	"time"
)

// DayKeyLayout is the canonical day-key format.
const DayKeyLayout = "2006-01-02"

// DayKey returns the local calendar date of t in loc as "YYYY-MM-DD".
// A nil loc means time.Local.
func DayKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DayKeyLayout)
}

// DayOf parses a day key back to local midnight in loc.
func DayOf(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(DayKeyLayout, key, loc)
}

// noon returns 12:00 on t's local date. Stepping days from noon with
// AddDate never skips or repeats a date across DST transitions.
func noon(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, t.Location())
}

// DaySet is a set of day keys with O(1) membership.
type DaySet map[string]struct{}

func (s DaySet) Add(key string) { s[key] = struct{}{} }

func (s DaySet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

func (s DaySet) Len() int { return len(s) }

// Keys returns the keys in ascending date order.
func (s DaySet) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ActiveDays collects the day keys of qualifying records.
func ActiveDays(records []Record, loc *time.Location) DaySet {
	set := make(DaySet)
	for _, r := range records {
		if r.Qualifies() {
			set.Add(DayKey(r.At, loc))
		}
	}
	return set
}
