package activity

import "time"

// Streak counts consecutive active days ending today.
//
// If today has no activity yet the run may end yesterday instead, so a
// streak is not lost before the user has had a chance to log today. Any
// other gap ends the walk. Runs in O(streak length).
func Streak(active DaySet, today time.Time) int {
	if active.Len() == 0 {
		return 0
	}
	loc := today.Location()
	day := noon(today)
	if !active.Has(DayKey(day, loc)) {
		day = day.AddDate(0, 0, -1)
	}

	n := 0
	for active.Has(DayKey(day, loc)) {
		n++
		day = day.AddDate(0, 0, -1)
	}
	return n
}

// LongestStreak returns the longest run of consecutive days anywhere in the set.
func LongestStreak(active DaySet) int {
	keys := active.Keys()
	if len(keys) == 0 {
		return 0
	}

	longest, run := 1, 1
	prev, _ := time.Parse(DayKeyLayout, keys[0])
	for _, k := range keys[1:] {
		curr, err := time.Parse(DayKeyLayout, k)
		if err != nil {
			continue
		}
		if prev.AddDate(0, 0, 1).Equal(curr) {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
		prev = curr
	}
	return longest
}
