// Package activity derives calendar statistics from timestamped user records:
// day keys, per-day grouping, streaks and summary counts.
//
// Everything here is a pure function of its inputs. "Now" is always passed
// in, and day boundaries follow the viewer's local wall-clock midnight.
package activity

import "time"

// Author distinguishes who produced a record. Only user-authored records
// count toward activity statistics.
type Author string

const (
	AuthorUser      Author = "user"
	AuthorAssistant Author = "assistant"
	AuthorSystem    Author = "system"
)

// Source names the feature a record came from.
type Source string

const (
	SourceJournal Source = "journal"
	SourceMood    Source = "mood"
	SourceChat    Source = "chat"
)

// Record is one user-visible event as seen by the analytics engine.
// Payload fields stay with the persistence layer.
type Record struct {
	ID     string
	Source Source
	Author Author
	At     time.Time
}

// Qualifies reports whether the record counts toward activity statistics.
func (r Record) Qualifies() bool {
	return r.Author == AuthorUser
}

// Qualifying returns the user-authored records, preserving order.
func Qualifying(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Qualifies() {
			out = append(out, r)
		}
	}
	return out
}
