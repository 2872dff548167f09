package model

import "time"

// DateLayout is the calendar-day format used everywhere a record keys on a
// day rather than an instant (due dates, routine completions, reflections).
const DateLayout = "2006-01-02"

// DateOf reduces an instant to its calendar day in the instant's location.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// SameDay reports whether the instant falls on the given calendar day.
func SameDay(t *time.Time, day string) bool {
	if t == nil {
		return false
	}
	return DateOf(*t) == day
}
