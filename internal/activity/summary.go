package activity

import "time"

// Summary holds the dashboard statistics for a set of records.
type Summary struct {
	Total         int
	DaysActive    int
	Streak        int
	LongestStreak int
	ThisWeek      int // Monday 00:00 through the end of now's day
	ThisMonth     int // the 1st through the end of now's day
	First         *time.Time
	Last          *time.Time
}

// Summarize computes statistics over the qualifying records, in now's zone.
func Summarize(records []Record, now time.Time) Summary {
	loc := now.Location()
	active := ActiveDays(records, loc)

	s := Summary{
		DaysActive:    active.Len(),
		Streak:        Streak(active, now),
		LongestStreak: LongestStreak(active),
	}

	weekStart := startOfWeek(now)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	// Records after now's day belong to no current period when viewing
	// an earlier date.
	dayEnd := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, loc)

	for _, r := range records {
		if !r.Qualifies() {
			continue
		}
		s.Total++
		if r.At.Before(dayEnd) {
			if !r.At.Before(weekStart) {
				s.ThisWeek++
			}
			if !r.At.Before(monthStart) {
				s.ThisMonth++
			}
		}
		at := r.At
		if s.First == nil || at.Before(*s.First) {
			s.First = &at
		}
		if s.Last == nil || at.After(*s.Last) {
			s.Last = &at
		}
	}
	return s
}

// startOfWeek returns the Monday at 00:00:00 of the week containing t.
func startOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday → 7 in ISO week numbering
	}
	monday := t.AddDate(0, 0, -(weekday - 1))
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, t.Location())
}
