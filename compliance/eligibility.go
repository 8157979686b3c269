package compliance

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/warp/leave-engine/calendar"
	"github.com/warp/leave-engine/leave"
	"github.com/warp/leave-engine/policy"
)

// =============================================================================
// ELIGIBILITY - Tenure gate, evaluated before dates are chosen
// =============================================================================

// Eligibility answers "may this employee request this leave type at all,
// right now". It is deliberately independent of any date range: the UI
// calls it before the employee picks dates, while the Validator judges the
// specific range later.
type Eligibility struct {
	Eligible bool

	// Reason explains an ineligibility, or carries informational context
	// for an eligible result (e.g. pro-rated annual accrual). Empty when
	// there is nothing to say.
	Reason string
}

// Tenure thresholds, in completed months of employment.
const (
	sickEligibilityMonths     = 1
	familyEligibilityMonths   = 4
	parentalEligibilityMonths = 1
	annualFullAccrualMonths   = 12
)

// CheckEligibility reports whether an employee with the given hire date may
// request the leave type as of asOf.
func CheckEligibility(code leave.Code, hireDate, asOf calendar.Date) Eligibility {
	tenure := calendar.MonthsBetween(hireDate, asOf)

	switch code {
	case leave.Sick:
		if tenure < sickEligibilityMonths {
			return Eligibility{Reason: "sick leave requires at least one month of employment"}
		}
		return Eligibility{Eligible: true}

	case leave.FamilyResponsibility:
		if tenure < familyEligibilityMonths {
			return Eligibility{Reason: "family responsibility leave requires at least four months of employment"}
		}
		return Eligibility{Eligible: true}

	case leave.Maternity, leave.Paternity, leave.Adoption, leave.Surrogacy:
		if tenure < parentalEligibilityMonths {
			return Eligibility{Reason: "this leave type requires at least one month of employment"}
		}
		return Eligibility{Eligible: true}

	case leave.Annual:
		// Always eligible; under a year of tenure the entitlement is still
		// accruing, which callers surface as information, not a block.
		if tenure < annualFullAccrualMonths {
			accrued := decimal.NewFromInt(policy.AnnualEntitlementDays).
				Div(decimal.NewFromInt(12)).
				Mul(decimal.NewFromInt(int64(tenure))).
				Round(2)
			return Eligibility{
				Eligible: true,
				Reason: "annual leave accrues monthly; approximately " + accrued.String() +
					" days accrued after " + strconv.Itoa(tenure) + " completed months",
			}
		}
		return Eligibility{Eligible: true}

	case leave.Compensatory, leave.Study, leave.Unpaid, leave.Other:
		return Eligibility{Eligible: true}

	default:
		return Eligibility{Eligible: true}
	}
}
