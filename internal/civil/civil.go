// Package civil provides a proleptic Gregorian calendar date with no time of
// day or time zone attached.
package civil

import (
	"time"

	gcivil "cloud.google.com/go/civil"

	calerr "github.com/gongahkia/calcombo/internal/errors"
)

// Date is a (year, month, day) triple. Values built with New are always real
// calendar dates.
type Date gcivil.Date

// New returns the date for year, month and day, or an *InvalidDateError if
// they do not name a real day.
func New(year int, month time.Month, day int) (Date, error) {
	d := Date{Year: year, Month: month, Day: day}
	if !d.IsValid() {
		return Date{}, &calerr.InvalidDateError{Year: year, Month: int(month), Day: day}
	}
	return d, nil
}

// MustNew is like New but panics on an invalid date.
func MustNew(year int, month time.Month, day int) Date {
	d, err := New(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// Rollover builds a date the way a lenient calendar does: out of range
// months and days carry into the neighbouring month or year, so month 13
// becomes January of the following year and day 0 the last day of the
// previous month.
func Rollover(year, month, day int) Date {
	return Of(time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.UTC))
}

// Of returns the date of t in t's location.
func Of(t time.Time) Date {
	return Date(gcivil.DateOf(t))
}

// FromYearDay returns the date of the n'th day of year, counting from 1.
// Days beyond the end of the year roll into the next one.
func FromYearDay(year, n int) Date {
	return Rollover(year, 1, n)
}

func (d Date) c() gcivil.Date {
	return gcivil.Date(d)
}

// IsValid reports whether d names a real day.
func (d Date) IsValid() bool {
	return d.c().IsValid()
}

// String returns d as yyyy-mm-dd.
func (d Date) String() string {
	return d.c().String()
}

// AddDays returns the date n days after d; n may be negative.
func (d Date) AddDays(n int) Date {
	return Date(d.c().AddDays(n))
}

// DaysSince returns the signed number of days from s to d.
func (d Date) DaysSince(s Date) int {
	return d.c().DaysSince(s.c())
}

// Before reports whether d is earlier than o.
func (d Date) Before(o Date) bool {
	return d.c().Before(o.c())
}

// After reports whether d is later than o.
func (d Date) After(o Date) bool {
	return d.c().After(o.c())
}

// In returns the instant at midnight starting d in loc.
func (d Date) In(loc *time.Location) time.Time {
	return d.c().In(loc)
}

// YearDay returns the day of the year, 1 through 365 or 366.
func (d Date) YearDay() int {
	return d.In(time.UTC).YearDay()
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return d.In(time.UTC).Weekday()
}

// PromoteTwoDigitYear maps the years 0 to 99 into the 2000s. Leap years
// are preserved since 2000 is itself a leap year. Years before 1 BC are
// left alone.
func (d Date) PromoteTwoDigitYear() Date {
	if d.Year >= 0 && d.Year < 100 {
		d.Year += 2000
	}
	return d
}

// MarshalText implements encoding.TextMarshaler using the ISO form.
func (d Date) MarshalText() ([]byte, error) {
	return d.c().MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(data []byte) error {
	return (*gcivil.Date)(d).UnmarshalText(data)
}

// Parse parses an ISO 8601 yyyy-mm-dd date.
func Parse(s string) (Date, error) {
	d, err := gcivil.ParseDate(s)
	return Date(d), err
}
