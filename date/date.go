// Package date provides a calendar date value type with day granularity,
// the unit a price ledger is keyed on.
package date

import (
	"fmt"
	"time"
)

// Format is the canonical ISO-8601 representation used in ledger files.
const Format = "2006-01-02"

// Date represents a calendar date with no lower than day granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// time returns a canonical time.Time for that day (midnight UTC), so that
// two Dates for the same day always compare equal.
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// Parse parses a Date in the canonical "2006-01-02" form.
//
// Ledgers are always written in canonical form, so reading is strict: a
// single-digit month or day is a malformed record, not a convenience.
func Parse(str string) (Date, error) {
	on, err := time.Parse(Format, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, Format, err)
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// Add returns a new Date with the given number of days added.
func (d Date) Add(days int) Date { return New(d.y, d.m, d.d+days) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// At anchors the day at a wall-clock instant in the given location.
func (d Date) At(hour, min int, loc *time.Location) time.Time {
	return time.Date(d.y, d.m, d.d, hour, min, 0, 0, loc)
}

// String formats the date in its canonical form.
func (d Date) String() string { return d.time().Format(Format) }
