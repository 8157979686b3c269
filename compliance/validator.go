/*
Package compliance validates proposed leave requests against statutory and
company-policy constraints.

PURPOSE:
  Three cooperating pieces, called at different points in the submission
  flow:

    CheckEligibility - "can this employee ever request this leave type
                        right now" - a tenure gate usable before any dates
                        are chosen (eligibility.go)
    Resolver         - which supporting documents the request needs
                        (documents.go)
    Validator        - "is this specific date range acceptable" - per-type
                        rule functions populating a structured outcome
                        (this file + rules.go)

VALIDATION MODEL:
  Each Validate call starts from an empty outcome, runs the leave-type rule
  function plus the generic policy checks, and derives IsValid from the
  error list. No state is retained between calls; identical input yields
  identical output, so independent validations run fully in parallel with
  no coordination.

POLICY INJECTION:
  Ceilings come from an injected policy.Set rather than literals in the
  rules. The statutory floor set is the default; tenants substitute a
  tightened set (see policy.Tighten). The set is treated as read-only.

CONTRACT:
  The validator never fails on well-formed input. Structural problems
  (end before start, negative working days) are the caller's to catch with
  Request.CheckWellFormed before invoking Validate.

SEE ALSO:
  - rules.go: the per-type rule functions
  - leave/outcome.go: the three-severity outcome
  - policy/statutory.go: floor defaults and citations
*/
package compliance

import (
	"github.com/warp/leave-engine/leave"
	"github.com/warp/leave-engine/policy"
)

// Validator runs statutory and policy rules over a request snapshot.
type Validator struct {
	Policies policy.Set
	Resolver Resolver
}

// NewValidator returns a validator over the given policy set, defaulting
// to the statutory floor set when nil.
func NewValidator(policies policy.Set) *Validator {
	if policies == nil {
		policies = policy.StatutorySet()
	}
	return &Validator{Policies: policies}
}

// Validate runs the rules for the request's leave type and returns the
// structured outcome. Pure and idempotent for identical inputs.
func (v *Validator) Validate(req leave.Request) leave.Outcome {
	var out leave.Outcome
	p := v.policyFor(req.Code)

	switch req.Code {
	case leave.Sick:
		sickRules(req, p, &out)
	case leave.Annual:
		annualRules(req, p, &out)
	case leave.Maternity:
		maternityRules(req, p, &out)
	case leave.Paternity:
		paternityRules(req, p, &out)
	case leave.FamilyResponsibility:
		familyResponsibilityRules(req, p, &out)
	case leave.Adoption:
		adoptionRules(req, p, &out)
	case leave.Surrogacy:
		surrogacyRules(req, p, &out)
	case leave.Compensatory, leave.Study, leave.Unpaid, leave.Other:
		// No statutory rules; governed by the generic policy checks below.
	}

	policyRules(req, p, &out)

	out.Documents = v.Resolver.Requirements(req)
	return out
}

func (v *Validator) policyFor(code leave.Code) policy.LeavePolicy {
	if p, ok := v.Policies.Lookup(code); ok {
		return p
	}
	return policy.Statutory(code)
}

// policyRules applies the configurable, non-statutory policy limits. These
// surface as warnings: company caps inform, statutory ceilings (handled in
// the per-type rules) block.
func policyRules(req leave.Request, p policy.LeavePolicy, out *leave.Outcome) {
	ceilingDays := p.CeilingDays(req.WorkingDays, req.CalendarDays())

	if p.MinDaysPerRequest > 0 && ceilingDays < p.MinDaysPerRequest {
		out.AddWarning(warnf("request of %d days is below the policy minimum of %d days per request",
			ceilingDays, p.MinDaysPerRequest))
	}

	// Statutory caps (those carrying a citation) already produced hard
	// errors in the per-type rules; only company-only caps warn here.
	if p.MaxDaysPerRequest > 0 && ceilingDays > p.MaxDaysPerRequest && p.Citation == "" {
		out.AddWarning(warnf("request of %d days exceeds the company cap of %d days per request",
			ceilingDays, p.MaxDaysPerRequest))
	}

	if p.MaxConsecutiveDays > 0 && req.CalendarDays() > p.MaxConsecutiveDays {
		out.AddWarning(warnf("request spans %d consecutive days, above the policy limit of %d",
			req.CalendarDays(), p.MaxConsecutiveDays))
	}
}
