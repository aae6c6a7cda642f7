// Package daterange implements half-open calendar-day intervals [Start, End).
package daterange

import (
	"time"

	"github.com/jinzhu/now"
)

const hoursPerDay = 24

// Range is a half-open interval of calendar days. End is exclusive, so a
// stay ending on the day another begins does not overlap it.
type Range struct {
	Start time.Time
	End   time.Time
}

// New builds a Range from the calendar dates of start and end.
func New(start, end time.Time) Range {
	return Range{
		Start: Day(start),
		End:   Day(end),
	}
}

// Day returns the wall-clock date of t as midnight UTC, so dates read from
// different zones (or from a DATE column) compare by calendar day.
func Day(t time.Time) time.Time {
	y, m, d := now.With(t).BeginningOfDay().Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Month returns the calendar month containing t as a half-open range.
func Month(t time.Time) Range {
	begin := now.With(t).BeginningOfMonth()

	return New(begin, begin.AddDate(0, 1, 0))
}

// Valid reports whether Start is strictly before End.
func (r Range) Valid() bool {
	return r.Start.Before(r.End)
}

// Overlaps reports whether the two intervals share at least one day.
func (r Range) Overlaps(other Range) bool {
	return r.Start.Before(other.End) && r.End.After(other.Start)
}

// Contains reports whether other lies entirely inside r.
func (r Range) Contains(other Range) bool {
	return !other.Start.Before(r.Start) && !other.End.After(r.End)
}

// Intersect returns the common part of both intervals and false when they do not overlap.
func (r Range) Intersect(other Range) (Range, bool) {
	if !r.Overlaps(other) {
		return Range{}, false
	}

	start := r.Start
	if other.Start.After(start) {
		start = other.Start
	}

	end := r.End
	if other.End.Before(end) {
		end = other.End
	}

	return Range{Start: start, End: end}, true
}

// Days returns the number of nights covered by the interval, 0 when it is empty or inverted.
func (r Range) Days() int {
	return Between(r.Start, r.End)
}

// Between counts calendar days from start to end, ignoring wall-clock shifts such as DST.
func Between(start, end time.Time) int {
	from := Day(start)
	to := Day(end)

	if !to.After(from) {
		return 0
	}

	return int(to.Sub(from).Hours() / hoursPerDay)
}
