package scheduling

import "time"

// Clock abstracts wall-clock time so past/future checks are testable.
// Production code uses SystemClock; tests substitute a fixed clock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// ClockFunc adapts a plain function to the Clock interface
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}
