package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/sakinahapp/sakinah/internal/activity"
)

// dateFlag is a --date YYYY-MM-DD value that overrides "today".
type dateFlag struct {
	day time.Time // local midnight, zero when unset
}

var _ pflag.Value = (*dateFlag)(nil)

func (d *dateFlag) String() string {
	if d.day.IsZero() {
		return ""
	}
	return d.day.Format(activity.DayKeyLayout)
}

func (d *dateFlag) Set(s string) error {
	t, err := activity.DayOf(s, time.Local)
	if err != nil {
		return fmt.Errorf("invalid date %q (use YYYY-MM-DD)", s)
	}
	d.day = t
	return nil
}

func (d *dateFlag) Type() string { return "date" }

// Apply moves t onto the flag's date, keeping the clock time.
// It returns t unchanged when the flag is unset.
func (d *dateFlag) Apply(t time.Time) time.Time {
	if d.day.IsZero() {
		return t
	}
	loc := d.day.Location()
	t = t.In(loc)
	return time.Date(d.day.Year(), d.day.Month(), d.day.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

var asOf dateFlag
