// Package clock injects wall time so date rules can be tested against a fixed "today".
package clock

import (
	"hotel/shared/daterange"
	"hotel/shared/timezone"
	"time"
)

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// New returns the clock backed by the application timezone.
func New() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return timezone.Now()
}

// Func adapts a plain function to Clock.
type Func func() time.Time

func (f Func) Now() time.Time {
	return f()
}

// Fixed always reports t.
func Fixed(t time.Time) Clock {
	return Func(func() time.Time { return t })
}

// Today is the clock's current calendar date, see daterange.Day.
func Today(c Clock) time.Time {
	return daterange.Day(c.Now())
}
