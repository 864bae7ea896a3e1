// file: internals/helpers/clock.go
package helper

import "time"

// Clock abstracts "now" so overdue/due-soon classification can be
// tested against arbitrary dates instead of the system time.
type Clock interface {
	Now() time.Time
}

// RealClock reads the wall clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant.
type FixedClock struct {
	At time.Time
}

func (f FixedClock) Now() time.Time { return f.At }

// Today truncates the clock's current time to a UTC calendar date.
// All loan date arithmetic works on whole days.
func Today(clk Clock) time.Time {
	return DateOnly(clk.Now())
}

// DateOnly drops the time-of-day part, keeping a UTC midnight date.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
