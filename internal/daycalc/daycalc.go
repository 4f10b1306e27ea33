// Package daycalc computes whole-day distances between civil dates and
// answers same-day questions.
package daycalc

import (
	"time"

	"github.com/gongahkia/calcombo/internal/civil"
)

// DaysBetween returns the number of civil days from a to b, negative when
// b is before a. The count is taken on the calendar itself, so a zone that
// skips or repeats a day, or shifts by an hour for daylight saving, never
// changes it. loc is accepted for callers that resolve dates in a zone and
// does not affect the result.
func DaysBetween(a, b civil.Date, _ *time.Location) int64 {
	return int64(b.DaysSince(a))
}

// SameDay reports whether a and b share year and day of year.
func SameDay(a, b civil.Date) bool {
	return a.Year == b.Year && a.YearDay() == b.YearDay()
}

// IsToday reports whether d is the current day in now's location.
func IsToday(d civil.Date, now time.Time) bool {
	return SameDay(d, civil.Of(now))
}
