package activity

import (
	"fmt"
	"sort"
	"time"
)

// Labels holds the relative day names and the absolute date formatter used
// for bucket labels.
type Labels struct {
	Today     string
	Yesterday string
	Tomorrow  string
	Format    func(time.Time) string
}

var malayMonths = [...]string{
	"Januari", "Februari", "Mac", "April", "Mei", "Jun",
	"Julai", "Ogos", "September", "Oktober", "November", "Disember",
}

var EnglishLabels = Labels{
	Today:     "Today",
	Yesterday: "Yesterday",
	Tomorrow:  "Tomorrow",
	Format:    func(t time.Time) string { return t.Format("2 January 2006") },
}

var MalayLabels = Labels{
	Today:     "Hari Ini",
	Yesterday: "Semalam",
	Tomorrow:  "Esok",
	Format: func(t time.Time) string {
		return fmt.Sprintf("%d %s %d", t.Day(), malayMonths[t.Month()-1], t.Year())
	},
}

// LabelsFor returns the label set for a language code ("ms" or anything else
// for English).
func LabelsFor(lang string) Labels {
	if lang == "ms" {
		return MalayLabels
	}
	return EnglishLabels
}

// DayBucket holds the records of one local calendar day.
type DayBucket struct {
	Key     string
	Label   string
	Date    time.Time // local midnight
	Records []Record
}

func (b DayBucket) Count() int { return len(b.Records) }

// GroupByDay partitions qualifying records into one bucket per local day,
// newest day first. Records keep their input order within a bucket.
// The zone comes from now, which is otherwise only used for labels.
func GroupByDay(records []Record, now time.Time, labels Labels) []DayBucket {
	loc := now.Location()
	index := make(map[string]int)
	var buckets []DayBucket

	for _, r := range records {
		if !r.Qualifies() {
			continue
		}
		key := DayKey(r.At, loc)
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, DayBucket{Key: key})
		}
		buckets[i].Records = append(buckets[i].Records, r)
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Key > buckets[j].Key
	})

	today := noon(now.In(loc))
	rel := map[string]string{
		DayKey(today, loc):                   labels.Today,
		DayKey(today.AddDate(0, 0, -1), loc): labels.Yesterday,
		DayKey(today.AddDate(0, 0, 1), loc):  labels.Tomorrow,
	}
	for i := range buckets {
		b := &buckets[i]
		b.Date, _ = DayOf(b.Key, loc)
		if l, ok := rel[b.Key]; ok && l != "" {
			b.Label = l
		} else if labels.Format != nil {
			b.Label = labels.Format(b.Date)
		} else {
			b.Label = b.Key
		}
	}
	return buckets
}
