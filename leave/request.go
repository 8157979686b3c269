package leave

import (
	"errors"
	"fmt"

	"github.com/warp/leave-engine/calendar"
)

// =============================================================================
// REQUEST - Caller-supplied snapshot of a proposed leave request
// =============================================================================

// Sentinel errors for structural contract checks. Per the error-handling
// design, a malformed request is a programming error at the call site, not
// a recoverable validation outcome; callers must check well-formedness
// before invoking the resolver or validator.
var (
	ErrEndBeforeStart      = errors.New("end date before start date")
	ErrNegativeWorkingDays = errors.New("negative working-day count")
	ErrWorkingDaysExceed   = errors.New("working days exceed calendar days in range")
	ErrUnknownCode         = errors.New("unknown leave type code")
)

// Request is a fully self-contained snapshot of a proposed leave request.
// Everything a rule needs - including the recent-leave history used for
// rolling-window counting - travels in the value; the engine never fetches
// anything, which keeps validation pure and safe to run concurrently.
type Request struct {
	Code       Code
	Start      calendar.Date
	End        calendar.Date // inclusive
	EmployeeID string

	// WorkingDays is pre-computed by the calendar engine. The validator
	// trusts it rather than re-deriving it.
	WorkingDays int

	// Reason is free text from the requester.
	Reason string

	// Optional context. Rules that need a missing field degrade to
	// advisory output rather than blocking.
	HireDate *calendar.Date
	Gender   Gender
	Pregnant bool

	// History holds the requester's recent leave entries of the same type.
	// For sick leave the caller must supply entries covering at least the
	// 8 weeks before Start; entries outside the window are ignored.
	History []Entry
}

// Entry is one prior leave occurrence in the requester's history.
type Entry struct {
	Code  Code
	Start calendar.Date
	End   calendar.Date
}

// CalendarDays returns the inclusive day count of the requested range.
func (r Request) CalendarDays() int {
	return calendar.CalendarDays(r.Start, r.End)
}

// CheckWellFormed verifies the structural invariants the engine assumes:
// start <= end, a known leave-type code, and a working-day count in
// [0, calendar days]. It does not run any policy rules.
func (r Request) CheckWellFormed() error {
	if !Known(r.Code) {
		return fmt.Errorf("%w: %q", ErrUnknownCode, r.Code)
	}
	if r.End.Before(r.Start) {
		return fmt.Errorf("%w: %s > %s", ErrEndBeforeStart, r.Start, r.End)
	}
	if r.WorkingDays < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeWorkingDays, r.WorkingDays)
	}
	if r.WorkingDays > r.CalendarDays() {
		return fmt.Errorf("%w: %d > %d", ErrWorkingDaysExceed, r.WorkingDays, r.CalendarDays())
	}
	return nil
}
