package clock

import "time"

// Clock lets services ask for "now" without reaching for time.Now directly.
type Clock interface {
	Now() time.Time
}

type systemClock struct {
	loc *time.Location
}

// NewSystem returns a clock backed by time.Now, reported in loc. A nil loc
// means UTC.
func NewSystem(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return systemClock{loc: loc}
}

func (c systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

type fixedClock struct {
	now time.Time
}

// NewFixed returns a clock that always reports t (useful for tests).
func NewFixed(t time.Time) Clock {
	return fixedClock{now: t}
}

func (f fixedClock) Now() time.Time {
	return f.now
}
