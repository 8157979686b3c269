package compliance

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/warp/leave-engine/calendar"
	"github.com/warp/leave-engine/leave"
	"github.com/warp/leave-engine/policy"
)

// warnf keeps rule messages in plain language with the numbers inline.
func warnf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

// =============================================================================
// SICK LEAVE - BCEA s22/s23
// =============================================================================

// sickRules applies the pro-rated first-six-months entitlement and the
// 36-month-cycle ceiling. Both are advisory: HR reviews rather than the
// system blocking, because sick leave cannot simply be refused.
func sickRules(req leave.Request, p policy.LeavePolicy, out *leave.Outcome) {
	if req.HireDate != nil {
		tenureMonths := calendar.MonthsBetween(*req.HireDate, req.Start)
		if tenureMonths < policy.SickProRataMonths {
			// 1 day per completed month of employment during the first six
			// months, decimal-exact.
			entitlement := decimal.NewFromInt(int64(tenureMonths))
			requested := decimal.NewFromInt(int64(req.WorkingDays))
			if requested.GreaterThan(entitlement) {
				out.AddWarning(warnf(
					"requested %d working days but pro-rated sick entitlement is %s days (%d completed months of employment)",
					req.WorkingDays, entitlement.String(), tenureMonths))
				out.AddViolation(policy.CitationSickProRata)
			}
		}
	}

	cycleDays := int(p.EntitlementDays.IntPart())
	if cycleDays > 0 && req.WorkingDays > cycleDays {
		out.AddWarning(warnf(
			"requested %d working days exceeds the %d-day sick leave cycle; extended incapacity review is required",
			req.WorkingDays, cycleDays))
		out.AddViolation(policy.CitationSickCycle)
	}
}

// =============================================================================
// ANNUAL LEAVE - BCEA s20
// =============================================================================

func annualRules(req leave.Request, p policy.LeavePolicy, out *leave.Outcome) {
	entitlement := int(p.EntitlementDays.IntPart())
	if entitlement > 0 && req.WorkingDays > entitlement {
		out.AddWarning(warnf(
			"requested %d working days exceeds the standard annual entitlement of %d days",
			req.WorkingDays, entitlement))
		out.AddViolation(policy.CitationAnnual)
	}

	// Advisory nudge only, not a compliance matter: very short annual
	// requests are often better taken as other types.
	if req.WorkingDays < 2 {
		out.AddWarning("very short annual leave request; confirm annual leave is the intended type")
	}
}

// =============================================================================
// MATERNITY LEAVE - BCEA s25
// =============================================================================

func maternityRules(req leave.Request, p policy.LeavePolicy, out *leave.Outcome) {
	ceiling := p.MaxDaysPerRequest
	requested := p.CeilingDays(req.WorkingDays, req.CalendarDays())
	if ceiling > 0 && requested > ceiling {
		out.AddBreach(warnf(
			"maternity leave may not exceed %d days; this request spans %d days",
			ceiling, requested), p.Citation)
	}

	// Maternity leave is a statutory entitlement of female employees;
	// paternity (parental) leave is the correct type for other requesters.
	// Skipped when the requester's gender is not recorded.
	if req.Gender != leave.GenderUnspecified && req.Gender != leave.GenderFemale {
		out.AddError("maternity leave is available to female employees; parental (paternity) leave is the correct type for this requester")
	}

	out.AddWarning(warnf(
		"written notice is required at least %d days before maternity leave commences",
		p.MinNoticeDays))
}

// =============================================================================
// PATERNITY (PARENTAL) LEAVE - BCEA s25A
// =============================================================================

func paternityRules(req leave.Request, p policy.LeavePolicy, out *leave.Outcome) {
	ceiling := p.MaxDaysPerRequest
	requested := p.CeilingDays(req.WorkingDays, req.CalendarDays())
	if ceiling > 0 && requested > ceiling {
		out.AddBreach(warnf(
			"parental leave may not exceed %d days; this request spans %d days",
			ceiling, requested), p.Citation)
	}

	out.AddWarning("parental leave must be taken within six weeks of the child's birth")
}

// =============================================================================
// FAMILY RESPONSIBILITY LEAVE - BCEA s27
// =============================================================================

// qualifyingEventKeywords is the soft keyword list for the stated reason.
// Free text cannot be exhaustively validated, so a miss warns instead of
// blocking.
var qualifyingEventKeywords = []string{
	// events
	"birth", "born", "sick", "ill", "illness", "hospital",
	"death", "died", "passed away", "funeral", "bereave",
	// enumerated immediate-family relations
	"child", "son", "daughter",
	"spouse", "wife", "husband", "partner",
	"parent", "mother", "father",
	"grandparent", "grandmother", "grandfather",
	"sibling", "brother", "sister",
}

func familyResponsibilityRules(req leave.Request, p policy.LeavePolicy, out *leave.Outcome) {
	ceiling := p.MaxDaysPerRequest
	requested := p.CeilingDays(req.WorkingDays, req.CalendarDays())
	if ceiling > 0 && requested > ceiling {
		out.AddBreach(warnf(
			"family responsibility leave may not exceed %d working days per cycle; this request consumes %d",
			ceiling, requested), p.Citation)
	}

	if !matchesQualifyingEvent(req.Reason) {
		out.AddWarning("stated reason does not obviously match a qualifying event (birth or illness of a child, or death of an immediate family member); HR may request clarification")
	}
}

func matchesQualifyingEvent(reason string) bool {
	lower := strings.ToLower(reason)
	for _, kw := range qualifyingEventKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// =============================================================================
// ADOPTION / SURROGACY (COMMISSIONING) LEAVE - BCEA s25B / s25C
// =============================================================================

func adoptionRules(req leave.Request, p policy.LeavePolicy, out *leave.Outcome) {
	tenWeekRules(req, p, out, "adoption leave")
	out.AddWarning("adoption leave applies to the adoption of a child below the age of two")
}

func surrogacyRules(req leave.Request, p policy.LeavePolicy, out *leave.Outcome) {
	tenWeekRules(req, p, out, "commissioning parental leave")
	out.AddWarning("commissioning parental leave requires a court-confirmed surrogate motherhood agreement")
}

// tenWeekRules enforces the shared ten-week (50 working day) ceiling.
func tenWeekRules(req leave.Request, p policy.LeavePolicy, out *leave.Outcome, label string) {
	ceiling := p.MaxDaysPerRequest
	requested := p.CeilingDays(req.WorkingDays, req.CalendarDays())
	if ceiling > 0 && requested > ceiling {
		out.AddBreach(warnf(
			"%s may not exceed %d working days (ten weeks); this request consumes %d",
			label, ceiling, requested), p.Citation)
	}
}
