// Package availability computes the calendar dates on which a set of vendors
// are all available, given each vendor's weekly recurrence.
//
// Weekdays are Monday-based throughout: 0 = Monday ... 6 = Sunday.
package availability

import (
	"fmt"
	"time"
)

const DaysPerWeek = 7

// WeeklyPattern is a set of Monday-based weekdays stored as a bitmask.
type WeeklyPattern uint8

// Everyday matches all seven weekdays.
const Everyday WeeklyPattern = 1<<DaysPerWeek - 1

var weekdayNames = [DaysPerWeek]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// NewPattern builds a pattern from weekday indices. Indices outside 0..6
// are rejected.
func NewPattern(days ...int) (WeeklyPattern, error) {
	var p WeeklyPattern
	for _, d := range days {
		if d < 0 || d >= DaysPerWeek {
			return 0, fmt.Errorf("weekday index %d out of range 0..6", d)
		}
		p |= 1 << d
	}
	return p, nil
}

// MustPattern is NewPattern for static tables; it panics on bad input.
func MustPattern(days ...int) WeeklyPattern {
	p, err := NewPattern(days...)
	if err != nil {
		panic(err)
	}
	return p
}

func (p WeeklyPattern) Has(day int) bool {
	if day < 0 || day >= DaysPerWeek {
		return false
	}
	return p&(1<<day) != 0
}

func (p WeeklyPattern) Empty() bool {
	return p&Everyday == 0
}

// Days returns the weekday indices in the pattern in ascending order.
func (p WeeklyPattern) Days() []int {
	days := make([]int, 0, DaysPerWeek)
	for d := 0; d < DaysPerWeek; d++ {
		if p.Has(d) {
			days = append(days, d)
		}
	}
	return days
}

func (p WeeklyPattern) String() string {
	s := ""
	for _, d := range p.Days() {
		if s != "" {
			s += ","
		}
		s += weekdayNames[d]
	}
	if s == "" {
		return "none"
	}
	return s
}

// Weekday converts a time to its Monday-based weekday index.
func Weekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % DaysPerWeek
}

// WeekdayName returns the short English name for a Monday-based index.
func WeekdayName(day int) string {
	if day < 0 || day >= DaysPerWeek {
		return ""
	}
	return weekdayNames[day]
}

// DateOf truncates t to its calendar date, expressed as midnight UTC. The
// calendar date is read in t's own location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsAvailable reports whether the pattern covers the weekday of date.
func IsAvailable(p WeeklyPattern, date time.Time) bool {
	return p.Has(Weekday(date))
}

// Intersect returns the weekdays shared by every pattern. With no patterns
// it returns Everyday.
func Intersect(patterns ...WeeklyPattern) WeeklyPattern {
	out := Everyday
	for _, p := range patterns {
		out &= p
	}
	return out
}

// selectedPattern intersects the patterns of the selected vendors. A name
// missing from patterns counts as never available.
func selectedPattern(patterns map[string]WeeklyPattern, selected []string) WeeklyPattern {
	out := Everyday
	for _, name := range selected {
		p, ok := patterns[name]
		if !ok {
			return 0
		}
		out &= p
	}
	return out
}

// ComputeAvailableDates returns, in ascending order, every date in the
// windowDays-long window beginning at start (inclusive) on which all
// selected vendors are available. An empty selection yields the whole
// window. A non-positive window yields nothing.
func ComputeAvailableDates(patterns map[string]WeeklyPattern, selected []string, start time.Time, windowDays int) []time.Time {
	if windowDays <= 0 {
		return []time.Time{}
	}
	want := selectedPattern(patterns, selected)
	first := DateOf(start)

	dates := make([]time.Time, 0, windowDays)
	for i := 0; i < windowDays; i++ {
		day := first.AddDate(0, 0, i)
		if want.Has(Weekday(day)) {
			dates = append(dates, day)
		}
	}
	return dates
}

// Day is one cell of a rendered calendar.
type Day struct {
	Date      time.Time
	Available bool
}

// Calendar returns every date of the window flagged with whether it
// qualifies for the selection. It agrees with ComputeAvailableDates.
func Calendar(patterns map[string]WeeklyPattern, selected []string, start time.Time, windowDays int) []Day {
	if windowDays <= 0 {
		return []Day{}
	}
	want := selectedPattern(patterns, selected)
	first := DateOf(start)

	days := make([]Day, windowDays)
	for i := range days {
		day := first.AddDate(0, 0, i)
		days[i] = Day{Date: day, Available: want.Has(Weekday(day))}
	}
	return days
}

// ContainsDate reports whether dates holds the calendar date of d.
func ContainsDate(dates []time.Time, d time.Time) bool {
	target := DateOf(d)
	for _, candidate := range dates {
		if candidate.Equal(target) {
			return true
		}
	}
	return false
}
