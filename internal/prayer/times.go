// Package prayer fetches daily prayer times from the Aladhan API and works
// out the next prayer and the countdown to it.
package prayer

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Prayer is an Aladhan timing name.
type Prayer string

const (
	Fajr    Prayer = "Fajr"
	Sunrise Prayer = "Sunrise"
	Dhuhr   Prayer = "Dhuhr"
	Asr     Prayer = "Asr"
	Maghrib Prayer = "Maghrib"
	Isha    Prayer = "Isha"
)

// Order is the sequence of the day's timings.
var Order = []Prayer{Fajr, Sunrise, Dhuhr, Asr, Maghrib, Isha}

var malayNames = map[Prayer]string{
	Fajr:    "Subuh",
	Sunrise: "Syuruk",
	Dhuhr:   "Zohor",
	Asr:     "Asar",
	Maghrib: "Maghrib",
	Isha:    "Isyak",
}

// MalayName returns the name used in Malaysia, or p itself if unknown.
func MalayName(p Prayer) string {
	if n, ok := malayNames[p]; ok {
		return n
	}
	return string(p)
}

// Timings maps each prayer to its "HH:MM" time for one day.
type Timings map[Prayer]string

// At returns the time of p on day's date, in day's location.
// Values may carry a zone suffix, e.g. "05:42 (MYT)".
func (t Timings) At(p Prayer, day time.Time) (time.Time, error) {
	raw, ok := t[p]
	if !ok {
		return time.Time{}, fmt.Errorf("no %s time", p)
	}
	h, m, err := parseClock(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s time: %w", p, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, day.Location()), nil
}

func parseClock(raw string) (int, int, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return 0, 0, fmt.Errorf("empty time")
	}
	hh, mm, ok := strings.Cut(fields[0], ":")
	if !ok {
		return 0, 0, fmt.Errorf("malformed time %q", raw)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, 0, fmt.Errorf("malformed hour in %q", raw)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, 0, fmt.Errorf("malformed minute in %q", raw)
	}
	return h, m, nil
}

// Upcoming is the next prayer relative to a point in time.
type Upcoming struct {
	Prayer    Prayer
	At        time.Time
	Remaining time.Duration
}

// Next returns the first prayer strictly after now. After Isha it is
// tomorrow's Fajr, assumed to fall at today's Fajr time.
func Next(t Timings, now time.Time) (Upcoming, error) {
	for _, p := range Order {
		at, err := t.At(p, now)
		if err != nil {
			return Upcoming{}, err
		}
		if at.After(now) {
			return Upcoming{Prayer: p, At: at, Remaining: at.Sub(now)}, nil
		}
	}

	at, err := t.At(Fajr, now.AddDate(0, 0, 1))
	if err != nil {
		return Upcoming{}, err
	}
	return Upcoming{Prayer: Fajr, At: at, Remaining: at.Sub(now)}, nil
}

// FormatCountdown renders d as HH:MM:SS, truncated to the second.
// Zero or negative durations render as 00:00:00.
func FormatCountdown(d time.Duration) string {
	if d <= 0 {
		return "00:00:00"
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// Format12 converts "HH:MM" to a 12-hour clock, e.g. "1:05 PM".
func Format12(raw string) string {
	h, m, err := parseClock(raw)
	if err != nil {
		return raw
	}
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, m, suffix)
}
