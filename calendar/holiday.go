/*
holiday.go - Public holidays and working-day counting

PURPOSE:
  Computes how many working days a leave request consumes and which public
  holidays intersect the requested range. A day is a working day iff it is
  not a Saturday/Sunday and not an observed public holiday.

OBSERVED DATES:
  A holiday's nominal date is not always the day people are off. When the
  nominal date falls on a Sunday, the holiday is observed on the next
  business day (the familiar "Monday in lieu" rule). An explicit Observed
  date on the holiday record overrides the rule entirely. The observed date
  - never the nominal one - is what gets excluded from working-day counts
  and reported back to callers.

RECURRING HOLIDAYS:
  Most public holidays recur on the same month/day every year. A recurring
  holiday stored with a 2021 date must still be excluded from a 2026 range,
  so recurrence is resolved into every calendar year the range touches. A
  range spanning a year boundary resolves each year independently (the
  Sunday-shift rule can apply in one year and not the other).

USAGE:
  cal := calendar.Calendar{
      {Name: "New Year's Day", Date: calendar.NewDate(2025, time.January, 1), Recurring: true},
  }
  days, err := calendar.WorkingDays(start, end, cal)
  obs, err := calendar.HolidaysInRange(start, end, cal)

SEE ALSO:
  - date.go: Date value type and weekday arithmetic
  - compliance/validator.go: consumer of the working-day count
*/
package calendar

import (
	"sort"
	"time"
)

// =============================================================================
// PUBLIC HOLIDAY
// =============================================================================

// PublicHoliday is one entry in a jurisdiction's holiday calendar.
type PublicHoliday struct {
	Name string

	// Date is the nominal date. For recurring holidays only the month and
	// day are meaningful; the instance is resolved into the year being asked
	// about.
	Date Date

	// Observed, when set, overrides the computed observed date. Only
	// meaningful for non-recurring holidays (a fixed override cannot recur).
	Observed *Date

	// Recurring marks holidays that fall on the same month/day every year.
	Recurring bool
}

// resolvedIn returns the nominal instance of the holiday in the given year.
func (h PublicHoliday) resolvedIn(year int) Date {
	if !h.Recurring {
		return h.Date
	}
	return NewDate(year, h.Date.Month(), h.Date.Day())
}

// ObservedIn returns the date the holiday is actually non-working in the
// given year: the explicit override if one applies, otherwise the nominal
// date shifted past a Sunday to the next business day.
func (h PublicHoliday) ObservedIn(year int) Date {
	nominal := h.resolvedIn(year)
	if h.Observed != nil && h.Observed.Year() == nominal.Year() {
		return *h.Observed
	}
	observed := nominal
	for observed.Weekday() == time.Sunday {
		observed = observed.AddDays(1)
	}
	return observed
}

// Calendar is an ordered set of public holidays. A nil Calendar is valid
// and degrades working-day counting to pure weekend exclusion.
type Calendar []PublicHoliday

// Observance pairs a holiday with the observed-date instance that fell
// inside a queried range. Callers surface ObservedOn to users as "the
// holiday in your range".
type Observance struct {
	Holiday    PublicHoliday
	ObservedOn Date
}

// =============================================================================
// WORKING-DAY COUNTING
// =============================================================================

// WorkingDays returns the number of working days in the inclusive range
// [start, end]: calendar days that are neither weekend days nor observed
// public holidays. Deterministic, no side effects.
func WorkingDays(start, end Date, cal Calendar) (int, error) {
	if end.Before(start) {
		return 0, ErrInvalidRange
	}

	observed := observedSet(start, end, cal)
	count := 0
	for d := start; d.BeforeOrEqual(end); d = d.AddDays(1) {
		if d.IsWeekend() {
			continue
		}
		if _, holiday := observed[d]; holiday {
			continue
		}
		count++
	}
	return count, nil
}

// HolidaysInRange returns every holiday whose observed date falls inside
// [start, end], ordered by observed date (name breaks ties).
func HolidaysInRange(start, end Date, cal Calendar) ([]Observance, error) {
	if end.Before(start) {
		return nil, ErrInvalidRange
	}

	var out []Observance
	for _, h := range cal {
		// Start one year early: a year-end Sunday holiday observes into
		// January of the following year.
		for year := start.Year() - 1; year <= end.Year(); year++ {
			obs := h.ObservedIn(year)
			if obs.AfterOrEqual(start) && obs.BeforeOrEqual(end) {
				out = append(out, Observance{Holiday: h, ObservedOn: obs})
			}
			if !h.Recurring {
				break
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].ObservedOn.Equal(out[j].ObservedOn) {
			return out[i].ObservedOn.Before(out[j].ObservedOn)
		}
		return out[i].Holiday.Name < out[j].Holiday.Name
	})
	return out, nil
}

// observedSet resolves every holiday into the years the range touches and
// indexes the observed dates for O(1) lookup during iteration.
func observedSet(start, end Date, cal Calendar) map[Date]struct{} {
	if len(cal) == 0 {
		return nil
	}
	set := make(map[Date]struct{})
	for _, h := range cal {
		for year := start.Year() - 1; year <= end.Year(); year++ {
			set[h.ObservedIn(year)] = struct{}{}
			if !h.Recurring {
				break
			}
		}
	}
	return set
}
