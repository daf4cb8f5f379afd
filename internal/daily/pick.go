// Package daily selects "of the day" content deterministically, so every
// viewer sees the same item on the same calendar day without coordination.
//
// Static collections are picked with Pick. Content that needs a network
// fetch goes through Cached, which keeps at most one entry per content type.
package daily

import (
	"time"

	"github.com/sakinahapp/sakinah/internal/fault"
)

// RotationPeriod is the cycle used to derive the day ordinal.
type RotationPeriod int

const (
	// Yearly rotates on the day of the year (1..366).
	Yearly RotationPeriod = iota
	// Monthly rotates on the day of the month (1..31).
	Monthly
)

func (p RotationPeriod) String() string {
	switch p {
	case Yearly:
		return "yearly"
	case Monthly:
		return "monthly"
	}
	return "unknown"
}

// Ordinal returns the 1-based day ordinal of t's local date for the period.
func Ordinal(t time.Time, p RotationPeriod) int {
	if p == Monthly {
		return t.Day()
	}
	return t.YearDay()
}

// Pick returns collection[ordinal mod len(collection)].
// An empty collection or a negative ordinal is fault.ErrInvalidArgument.
func Pick[T any](collection []T, ordinal int) (T, error) {
	var zero T
	if len(collection) == 0 {
		return zero, fault.Invalid("pick from empty collection")
	}
	if ordinal < 0 {
		return zero, fault.Invalid("negative day ordinal %d", ordinal)
	}
	return collection[ordinal%len(collection)], nil
}

// PickFor picks the item for t's local date under the given rotation.
func PickFor[T any](collection []T, t time.Time, p RotationPeriod) (T, error) {
	return Pick(collection, Ordinal(t, p))
}
