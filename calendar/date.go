// Package calendar implements jurisdiction-aware working-day arithmetic.
// It answers two questions for a date range: how many working days does it
// contain, and which public holidays fall inside it (on their observed
// dates). The package is pure: no clock access beyond Today, no I/O.
package calendar

import (
	"errors"
	"time"
)

// ErrInvalidRange is returned when a range's end date precedes its start.
// Malformed ranges are a caller contract violation; the engine never tries
// to silently correct them.
var ErrInvalidRange = errors.New("invalid range: end before start")

// =============================================================================
// DATE - Whole-day value type
// =============================================================================

// Date is a calendar day with no time-of-day component. All dates are
// normalized to midnight UTC at construction, so two Dates naming the same
// day always compare equal.
type Date struct {
	Time time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func Today() Date {
	return DateOf(time.Now())
}

// Comparison
func (d Date) Before(other Date) bool        { return d.Time.Before(other.Time) }
func (d Date) Equal(other Date) bool         { return d.Time.Equal(other.Time) }
func (d Date) After(other Date) bool         { return d.Time.After(other.Time) }
func (d Date) BeforeOrEqual(other Date) bool { return d.Before(other) || d.Equal(other) }
func (d Date) AfterOrEqual(other Date) bool  { return d.After(other) || d.Equal(other) }

// Arithmetic
func (d Date) AddDays(n int) Date   { return DateOf(d.Time.AddDate(0, 0, n)) }
func (d Date) AddMonths(n int) Date { return DateOf(d.Time.AddDate(0, n, 0)) }
func (d Date) AddYears(n int) Date  { return DateOf(d.Time.AddDate(n, 0, 0)) }

// Properties
func (d Date) Year() int             { return d.Time.Year() }
func (d Date) Month() time.Month     { return d.Time.Month() }
func (d Date) Day() int              { return d.Time.Day() }
func (d Date) Weekday() time.Weekday { return d.Time.Weekday() }
func (d Date) IsZero() bool          { return d.Time.IsZero() }

func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func (d Date) IsWorkday() bool { return !d.IsWeekend() }

func (d Date) String() string { return d.Time.Format("2006-01-02") }

// =============================================================================
// RANGE ARITHMETIC
// =============================================================================

// DaysBetween returns the number of days from one date to another
// (exclusive of from, so DaysBetween(d, d) == 0).
func DaysBetween(from, to Date) int {
	return int(to.Time.Sub(from.Time).Hours() / 24)
}

// CalendarDays returns the inclusive day count of [start, end].
func CalendarDays(start, end Date) int {
	return DaysBetween(start, end) + 1
}

// CountWeekdays returns the number of Monday-Friday days in [start, end],
// ignoring holidays. WorkingDays with an empty calendar reduces to this.
func CountWeekdays(start, end Date) int {
	count := 0
	for d := start; d.BeforeOrEqual(end); d = d.AddDays(1) {
		if d.IsWorkday() {
			count++
		}
	}
	return count
}

// MonthsBetween returns the number of completed months from one date to
// another, using anniversary arithmetic: the count increments only once the
// day-of-month of from has been reached again. Returns 0 when to precedes
// from. Used for tenure and pro-rated entitlement calculations.
func MonthsBetween(from, to Date) int {
	if to.Before(from) {
		return 0
	}
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
