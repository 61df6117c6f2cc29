// Package daterange provides calendar-day comparisons used by the trip and
// activity validators and by the itinerary projection.
//
// All functions evaluate days in the location passed by the caller. Two
// instants that fall on the same wall-clock date in that location are the
// same day regardless of their time-of-day components.
package daterange

import "time"

// StartOfDay returns midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	return StartOfDay(a, loc).Equal(StartOfDay(b, loc))
}

// DayBefore reports whether a's calendar day is strictly before b's.
func DayBefore(a, b time.Time, loc *time.Location) bool {
	return StartOfDay(a, loc).Before(StartOfDay(b, loc))
}

// DayAfter reports whether a's calendar day is strictly after b's.
func DayAfter(a, b time.Time, loc *time.Location) bool {
	return StartOfDay(a, loc).After(StartOfDay(b, loc))
}

// WithinDays reports whether t's calendar day lies in [start, end], inclusive
// at both ends.
func WithinDays(t, start, end time.Time, loc *time.Location) bool {
	return !DayBefore(t, start, loc) && !DayAfter(t, end, loc)
}

// DaySpan returns the number of whole calendar days from start to end.
// It is negative when end's day precedes start's day.
//
// The count is taken from the civil dates, not from end.Sub(start), so DST
// transitions inside the range do not shorten or lengthen it.
func DaySpan(start, end time.Time, loc *time.Location) int {
	s := StartOfDay(start, loc)
	e := StartOfDay(end, loc)
	sy, sm, sd := s.Date()
	ey, em, ed := e.Date()
	su := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	eu := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	return int(eu.Sub(su).Hours() / 24)
}

// Days returns midnight of every calendar day from start to end inclusive.
// It returns nil when end's day precedes start's day.
func Days(start, end time.Time, loc *time.Location) []time.Time {
	n := DaySpan(start, end, loc)
	if n < 0 {
		return nil
	}
	first := StartOfDay(start, loc)
	out := make([]time.Time, 0, n+1)
	for i := 0; i <= n; i++ {
		out = append(out, first.AddDate(0, 0, i))
	}
	return out
}
