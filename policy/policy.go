/*
Package policy defines leave policies as data.

PURPOSE:
  A LeavePolicy is the per-tenant, per-leave-type ruleset the validator
  consults: entitlement ceilings, request size limits, notice periods, and
  day-counting flags. The statutory literals that used to live inside the
  validation rules survive only here, as the statutory floor defaults
  seeded once by StatutorySet.

TIGHTEN, NEVER LOOSEN:
  Tenants customize policies, but only in the stricter direction. Tighten
  merges a tenant's policy onto the statutory floor so that entitlements
  never drop below the floor and statutory request ceilings never rise
  above it. A tenant can grant 25 annual days (above the 21-day floor) or
  cap family-responsibility requests at 2 days (below the 3-day ceiling),
  but cannot offer 15 annual days or allow 150-day maternity requests.

CEILING BASIS:
  Whether a ceiling counts calendar days or working days is deliberately a
  policy option. The statutory defaults use calendar days for maternity and
  paternity (the 120/10 figures are consecutive-day figures) and working
  days for family responsibility and adoption/surrogacy.

USAGE:
  policies := policy.StatutorySet()
  p, ok := policies.Lookup(leave.Maternity)

  custom := policy.Tighten(policy.Statutory(leave.Annual), tenantPolicy)

SEE ALSO:
  - statutory.go: floor defaults and regulatory citations
  - factory/policy.go: JSON tenant definitions
*/
package policy

import (
	"github.com/shopspring/decimal"

	"github.com/warp/leave-engine/leave"
)

// =============================================================================
// POLICY TYPES
// =============================================================================

// AccrualType determines how entitlement accrues over time.
type AccrualType string

const (
	AccrualAnnual  AccrualType = "annual"  // full entitlement granted per cycle
	AccrualMonthly AccrualType = "monthly" // entitlement/12 per month
	AccrualWeekly  AccrualType = "weekly"  // entitlement/52 per week
)

// CeilingBasis selects the unit a day ceiling is measured in.
type CeilingBasis string

const (
	BasisCalendarDays CeilingBasis = "calendar_days"
	BasisWorkingDays  CeilingBasis = "working_days"
)

// LeavePolicy is the complete ruleset for one leave type. Zero values mean
// "no limit" for the numeric caps and "engine default" for CeilingBasis.
type LeavePolicy struct {
	Code leave.Code

	// EntitlementDays is the days granted per entitlement cycle. Decimal
	// because accrual and half-day policies produce fractional balances.
	EntitlementDays decimal.Decimal

	// Request size limits, in the unit selected by CeilingBasis.
	MinDaysPerRequest int
	MaxDaysPerRequest int // 0 = no cap

	Accrual     AccrualType
	AccrualRate decimal.Decimal // days per accrual period

	CarryOverDays         decimal.Decimal
	CarryOverExpiryMonths int

	MinNoticeDays      int
	MaxConsecutiveDays int // 0 = no cap

	RequiresApproval      bool
	RequiresDocumentation bool
	AllowNegativeBalance  bool
	AllowHalfDays         bool

	// Day-counting flags: whether weekends/holidays are excluded when the
	// calendar engine counts consumed days for this type.
	ExcludeWeekends bool
	ExcludeHolidays bool

	CeilingBasis CeilingBasis

	// Citation is the regulatory reference for the statutory ceiling, if
	// the type has one.
	Citation string
}

// CeilingDays returns the request's day count measured in the policy's
// ceiling basis.
func (p LeavePolicy) CeilingDays(workingDays, calendarDays int) int {
	if p.CeilingBasis == BasisWorkingDays {
		return workingDays
	}
	return calendarDays
}

// =============================================================================
// POLICY SET
// =============================================================================

// Set maps leave types to their effective policy. Read-only once built;
// the validator treats it as an externally-owned input and never mutates it.
type Set map[leave.Code]LeavePolicy

// Lookup returns the policy for a code. The second return is false when
// the set has no entry, in which case callers fall back to the statutory
// floor.
func (s Set) Lookup(code leave.Code) (LeavePolicy, bool) {
	p, ok := s[code]
	return p, ok
}

// StatutorySet returns a fresh set seeded with the statutory floor for
// every registered leave type.
func StatutorySet() Set {
	set := make(Set, len(leave.Codes()))
	for _, code := range leave.Codes() {
		set[code] = Statutory(code)
	}
	return set
}

// =============================================================================
// TIGHTEN - merge a tenant policy onto the statutory floor
// =============================================================================

// Tighten merges tenant onto floor, permitting only changes in the
// stricter direction. The result always satisfies the statutory floor.
func Tighten(floor, tenant LeavePolicy) LeavePolicy {
	out := tenant
	out.Code = floor.Code
	out.Citation = floor.Citation

	// Entitlement may grow above the floor, never shrink below it.
	if out.EntitlementDays.LessThan(floor.EntitlementDays) {
		out.EntitlementDays = floor.EntitlementDays
	}

	// A statutory request ceiling is an upper bound: tenants may lower it,
	// never raise it.
	if floor.MaxDaysPerRequest > 0 {
		if out.MaxDaysPerRequest == 0 || out.MaxDaysPerRequest > floor.MaxDaysPerRequest {
			out.MaxDaysPerRequest = floor.MaxDaysPerRequest
		}
	}

	// Notice: tenants may require more notice than the statute, not less.
	if out.MinNoticeDays < floor.MinNoticeDays {
		out.MinNoticeDays = floor.MinNoticeDays
	}

	// Statutory documentation requirements cannot be waived.
	out.RequiresDocumentation = out.RequiresDocumentation || floor.RequiresDocumentation

	if out.Accrual == "" {
		out.Accrual = floor.Accrual
	}
	if out.AccrualRate.IsZero() {
		out.AccrualRate = floor.AccrualRate
	}
	if out.CeilingBasis == "" {
		out.CeilingBasis = floor.CeilingBasis
	}

	return out
}
