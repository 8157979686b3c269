package calendar_test

import (
	"testing"
	"time"

	"github.com/warp/leave-engine/calendar"
)

// =============================================================================
// WORKING-DAY COUNTING
// =============================================================================

func TestWorkingDays_NoCalendar_EqualsWeekdayCount(t *testing.T) {
	// GIVEN: no holiday calendar
	// WHEN: counting working days over several ranges
	// THEN: the count equals pure weekend exclusion

	ranges := []struct{ start, end calendar.Date }{
		{date(2025, time.January, 1), date(2025, time.January, 31)},
		{date(2025, time.February, 10), date(2025, time.February, 10)},
		{date(2024, time.December, 20), date(2025, time.January, 10)},
	}
	for _, r := range ranges {
		got, err := calendar.WorkingDays(r.start, r.end, nil)
		if err != nil {
			t.Fatalf("WorkingDays failed: %v", err)
		}
		if want := calendar.CountWeekdays(r.start, r.end); got != want {
			t.Errorf("[%s, %s]: expected %d, got %d", r.start, r.end, want, got)
		}
	}
}

func TestWorkingDays_InvalidRange(t *testing.T) {
	_, err := calendar.WorkingDays(date(2025, time.March, 10), date(2025, time.March, 9), nil)
	if err != calendar.ErrInvalidRange {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
}

func TestWorkingDays_ZeroLengthRange(t *testing.T) {
	// Single working day counts 1, single weekend day counts 0
	got, _ := calendar.WorkingDays(date(2025, time.March, 10), date(2025, time.March, 10), nil)
	if got != 1 {
		t.Errorf("single Monday: expected 1, got %d", got)
	}
	got, _ = calendar.WorkingDays(date(2025, time.March, 8), date(2025, time.March, 8), nil)
	if got != 0 {
		t.Errorf("single Saturday: expected 0, got %d", got)
	}
}

func TestWorkingDays_WeekdayHoliday_ReducesByOne(t *testing.T) {
	// GIVEN: a holiday on a weekday inside the range
	// WHEN: counting with and without the holiday
	// THEN: the count with the holiday is exactly one less

	start, end := date(2025, time.April, 21), date(2025, time.April, 30)
	cal := calendar.Calendar{
		{Name: "Freedom Day", Date: date(2025, time.April, 28)}, // a Monday
	}

	without, _ := calendar.WorkingDays(start, end, nil)
	with, _ := calendar.WorkingDays(start, end, cal)
	if with != without-1 {
		t.Errorf("expected holiday to remove exactly 1 working day: %d vs %d", with, without)
	}
}

func TestWorkingDays_SaturdayHoliday_NoEffect(t *testing.T) {
	// A holiday already falling on a Saturday does not shift and does not
	// change the count.
	start, end := date(2025, time.December, 22), date(2025, time.December, 28)
	cal := calendar.Calendar{
		{Name: "Day of Goodwill Observance", Date: date(2025, time.December, 27)}, // Saturday
	}

	without, _ := calendar.WorkingDays(start, end, nil)
	with, _ := calendar.WorkingDays(start, end, cal)
	if with != without {
		t.Errorf("Saturday holiday should not change the count: %d vs %d", with, without)
	}
}

func TestWorkingDays_SundayHoliday_ObservedMonday(t *testing.T) {
	// GIVEN: Youth Day 2024-06-16 falls on a Sunday
	// WHEN: counting working days across that week
	// THEN: the Monday in lieu (June 17) is excluded instead

	start, end := date(2024, time.June, 10), date(2024, time.June, 21)
	cal := calendar.Calendar{
		{Name: "Youth Day", Date: date(2024, time.June, 16), Recurring: true},
	}

	got, err := calendar.WorkingDays(start, end, cal)
	if err != nil {
		t.Fatalf("WorkingDays failed: %v", err)
	}
	// 10 weekdays in the two weeks, minus observed Monday June 17
	if got != 9 {
		t.Errorf("expected 9 working days, got %d", got)
	}

	obs, _ := calendar.HolidaysInRange(start, end, cal)
	if len(obs) != 1 {
		t.Fatalf("expected 1 observance, got %d", len(obs))
	}
	if !obs[0].ObservedOn.Equal(date(2024, time.June, 17)) {
		t.Errorf("expected observed date 2024-06-17, got %s", obs[0].ObservedOn)
	}
}

func TestWorkingDays_ExplicitObservedDate_Wins(t *testing.T) {
	// An explicit observed date overrides the Sunday-shift rule.
	observed := date(2025, time.May, 2)
	cal := calendar.Calendar{
		{Name: "Workers' Day", Date: date(2025, time.May, 1), Observed: &observed},
	}

	start, end := date(2025, time.April, 28), date(2025, time.May, 2)
	got, _ := calendar.WorkingDays(start, end, cal)
	// Week of Mon Apr 28 - Fri May 2 has 5 weekdays; only May 2 is excluded
	// (the nominal May 1 stays a working day because observance moved).
	if got != 4 {
		t.Errorf("expected 4 working days, got %d", got)
	}
}

// =============================================================================
// RECURRING HOLIDAYS AND YEAR BOUNDARIES
// =============================================================================

func TestWorkingDays_RecurringHoliday_ResolvedIntoRequestYear(t *testing.T) {
	// GIVEN: New Year's Day stored with a stale year
	// WHEN: counting a range years later
	// THEN: the recurrence is resolved into the range's own year

	cal := calendar.Calendar{
		{Name: "New Year's Day", Date: date(2020, time.January, 1), Recurring: true},
	}

	// Jan 1 2026 is a Thursday
	start, end := date(2026, time.January, 1), date(2026, time.January, 2)
	got, _ := calendar.WorkingDays(start, end, cal)
	if got != 1 {
		t.Errorf("expected 1 working day (Jan 2), got %d", got)
	}
}

func TestWorkingDays_YearBoundary_EachYearResolvedIndependently(t *testing.T) {
	// Dec 29 2025 (Mon) through Jan 5 2026 (Mon) with a recurring New Year
	// holiday: 6 weekdays minus the Thursday Jan 1 2026 observance.
	cal := calendar.Calendar{
		{Name: "New Year's Day", Date: date(2020, time.January, 1), Recurring: true},
	}

	got, _ := calendar.WorkingDays(date(2025, time.December, 29), date(2026, time.January, 5), cal)
	if got != 5 {
		t.Errorf("expected 5 working days across the year boundary, got %d", got)
	}
}

func TestHolidaysInRange_OrderedByObservedDate(t *testing.T) {
	cal := calendar.Calendar{
		{Name: "Day of Reconciliation", Date: date(2025, time.December, 16), Recurring: true},
		{Name: "Christmas Day", Date: date(2025, time.December, 25), Recurring: true},
		{Name: "New Year's Day", Date: date(2026, time.January, 1), Recurring: true},
	}

	obs, err := calendar.HolidaysInRange(date(2025, time.December, 1), date(2026, time.January, 31), cal)
	if err != nil {
		t.Fatalf("HolidaysInRange failed: %v", err)
	}
	if len(obs) != 3 {
		t.Fatalf("expected 3 observances, got %d", len(obs))
	}
	for i := 1; i < len(obs); i++ {
		if obs[i].ObservedOn.Before(obs[i-1].ObservedOn) {
			t.Errorf("observances out of order: %s before %s", obs[i].ObservedOn, obs[i-1].ObservedOn)
		}
	}
}

func TestHolidaysInRange_OutsideRangeExcluded(t *testing.T) {
	cal := calendar.Calendar{
		{Name: "Christmas Day", Date: date(2025, time.December, 25), Recurring: true},
	}
	obs, _ := calendar.HolidaysInRange(date(2025, time.June, 1), date(2025, time.June, 30), cal)
	if len(obs) != 0 {
		t.Errorf("expected no observances in June, got %d", len(obs))
	}
}
