package clock

import "time"

// Clock is the time source order outcomes are stamped with.
type Clock interface {
	Now() time.Time
}

// NewSystem returns the wall clock. All times are UTC.
func NewSystem() Clock {
	return system{}
}

type system struct{}

func (system) Now() time.Time {
	return time.Now().UTC()
}

// NewFixed returns a clock frozen at t, for deterministic tests.
func NewFixed(t time.Time) Clock {
	return fixed{at: t.UTC()}
}

type fixed struct {
	at time.Time
}

func (f fixed) Now() time.Time {
	return f.at
}
