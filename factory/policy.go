/*
Package factory provides JSON to Go leave-policy conversion.

PURPOSE:
  Converts JSON policy definitions into policy.LeavePolicy values. This
  enables per-tenant policy configuration without code changes - HR edits
  JSON, the factory builds the structs, and every result is clamped onto
  the statutory floor (tenants tighten, never loosen).

JSON SCHEMA:
  {
    "code": "annual",
    "entitlement_days": 25,
    "max_consecutive_days": 15,
    "min_notice_days": 14,
    "carry_over_days": 5,
    "carry_over_expiry_months": 6,
    "accrual": "monthly",
    "ceiling_basis": "working_days"
  }

  All fields except "code" are optional; missing fields default from the
  statutory floor for that leave type.

KEY FEATURES:
  - Rejects unknown leave-type codes and enum values
  - Defaults every omitted field from policy.Statutory(code)
  - Applies policy.Tighten so no tenant definition can undercut the
    statutory floor

USAGE:
  p, err := factory.ParsePolicy(jsonStr)

  set, err := factory.ParseSet(jsonArray) // full statutory set with
                                          // tenant overrides applied

SEE ALSO:
  - policy/policy.go: LeavePolicy and Tighten
  - policy/statutory.go: the floor defaults
*/
package factory

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/warp/leave-engine/leave"
	"github.com/warp/leave-engine/policy"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// PolicyJSON is the JSON representation of one tenant leave policy.
// Pointer fields distinguish "omitted" from zero.
type PolicyJSON struct {
	Code                  string   `json:"code"`
	EntitlementDays       *float64 `json:"entitlement_days,omitempty"`
	MinDaysPerRequest     *int     `json:"min_days_per_request,omitempty"`
	MaxDaysPerRequest     *int     `json:"max_days_per_request,omitempty"`
	Accrual               string   `json:"accrual,omitempty"` // annual, monthly, weekly
	AccrualRate           *float64 `json:"accrual_rate,omitempty"`
	CarryOverDays         *float64 `json:"carry_over_days,omitempty"`
	CarryOverExpiryMonths *int     `json:"carry_over_expiry_months,omitempty"`
	MinNoticeDays         *int     `json:"min_notice_days,omitempty"`
	MaxConsecutiveDays    *int     `json:"max_consecutive_days,omitempty"`
	RequiresApproval      *bool    `json:"requires_approval,omitempty"`
	RequiresDocumentation *bool    `json:"requires_documentation,omitempty"`
	AllowNegativeBalance  *bool    `json:"allow_negative_balance,omitempty"`
	AllowHalfDays         *bool    `json:"allow_half_days,omitempty"`
	ExcludeWeekends       *bool    `json:"exclude_weekends,omitempty"`
	ExcludeHolidays       *bool    `json:"exclude_holidays,omitempty"`
	CeilingBasis          string   `json:"ceiling_basis,omitempty"` // calendar_days, working_days
}

// =============================================================================
// PARSING
// =============================================================================

// ParsePolicy parses a single JSON policy definition, defaults omitted
// fields from the statutory floor, and clamps the result onto it.
func ParsePolicy(jsonStr string) (policy.LeavePolicy, error) {
	var pj PolicyJSON
	if err := json.Unmarshal([]byte(jsonStr), &pj); err != nil {
		return policy.LeavePolicy{}, fmt.Errorf("failed to parse policy JSON: %w", err)
	}
	return FromJSON(pj)
}

// ParseSet parses a JSON array of policy definitions and returns the full
// effective policy set: statutory defaults for every leave type, with the
// tenant's definitions applied (tightened) on top.
func ParseSet(jsonStr string) (policy.Set, error) {
	var defs []PolicyJSON
	if err := json.Unmarshal([]byte(jsonStr), &defs); err != nil {
		return nil, fmt.Errorf("failed to parse policy set JSON: %w", err)
	}

	set := policy.StatutorySet()
	for i, pj := range defs {
		p, err := FromJSON(pj)
		if err != nil {
			return nil, fmt.Errorf("policy %d: %w", i, err)
		}
		set[p.Code] = p
	}
	return set, nil
}

// FromJSON converts a parsed definition into an effective LeavePolicy.
func FromJSON(pj PolicyJSON) (policy.LeavePolicy, error) {
	code := leave.Code(pj.Code)
	if !leave.Known(code) {
		return policy.LeavePolicy{}, fmt.Errorf("unknown leave type code: %q", pj.Code)
	}

	floor := policy.Statutory(code)
	tenant := floor

	if pj.EntitlementDays != nil {
		tenant.EntitlementDays = decimal.NewFromFloat(*pj.EntitlementDays)
	}
	if pj.MinDaysPerRequest != nil {
		tenant.MinDaysPerRequest = *pj.MinDaysPerRequest
	}
	if pj.MaxDaysPerRequest != nil {
		tenant.MaxDaysPerRequest = *pj.MaxDaysPerRequest
	}

	if pj.Accrual != "" {
		accrual, err := parseAccrual(pj.Accrual)
		if err != nil {
			return policy.LeavePolicy{}, err
		}
		tenant.Accrual = accrual
	}
	if pj.AccrualRate != nil {
		tenant.AccrualRate = decimal.NewFromFloat(*pj.AccrualRate)
	}

	if pj.CarryOverDays != nil {
		tenant.CarryOverDays = decimal.NewFromFloat(*pj.CarryOverDays)
	}
	if pj.CarryOverExpiryMonths != nil {
		tenant.CarryOverExpiryMonths = *pj.CarryOverExpiryMonths
	}
	if pj.MinNoticeDays != nil {
		tenant.MinNoticeDays = *pj.MinNoticeDays
	}
	if pj.MaxConsecutiveDays != nil {
		tenant.MaxConsecutiveDays = *pj.MaxConsecutiveDays
	}

	if pj.RequiresApproval != nil {
		tenant.RequiresApproval = *pj.RequiresApproval
	}
	if pj.RequiresDocumentation != nil {
		tenant.RequiresDocumentation = *pj.RequiresDocumentation
	}
	if pj.AllowNegativeBalance != nil {
		tenant.AllowNegativeBalance = *pj.AllowNegativeBalance
	}
	if pj.AllowHalfDays != nil {
		tenant.AllowHalfDays = *pj.AllowHalfDays
	}
	if pj.ExcludeWeekends != nil {
		tenant.ExcludeWeekends = *pj.ExcludeWeekends
	}
	if pj.ExcludeHolidays != nil {
		tenant.ExcludeHolidays = *pj.ExcludeHolidays
	}

	if pj.CeilingBasis != "" {
		basis, err := parseBasis(pj.CeilingBasis)
		if err != nil {
			return policy.LeavePolicy{}, err
		}
		tenant.CeilingBasis = basis
	}

	return policy.Tighten(floor, tenant), nil
}

func parseAccrual(s string) (policy.AccrualType, error) {
	switch policy.AccrualType(s) {
	case policy.AccrualAnnual, policy.AccrualMonthly, policy.AccrualWeekly:
		return policy.AccrualType(s), nil
	default:
		return "", fmt.Errorf("unknown accrual type: %q", s)
	}
}

func parseBasis(s string) (policy.CeilingBasis, error) {
	switch policy.CeilingBasis(s) {
	case policy.BasisCalendarDays, policy.BasisWorkingDays:
		return policy.CeilingBasis(s), nil
	default:
		return "", fmt.Errorf("unknown ceiling basis: %q", s)
	}
}
