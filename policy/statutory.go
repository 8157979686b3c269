package policy

import (
	"github.com/shopspring/decimal"

	"github.com/warp/leave-engine/leave"
)

// =============================================================================
// REGULATORY CITATIONS (BCEA - Basic Conditions of Employment Act)
// =============================================================================

// Citation strings are reproduced verbatim on document requirements and
// compliance violations; audit consumers match on them.
const (
	CitationAnnual = "BCEA s20(2): 21 consecutive days' annual leave per annual leave cycle"

	CitationSickCycle   = "BCEA s22(2): sick leave entitlement of 30 working days per 36-month cycle"
	CitationSickProRata = "BCEA s22(3): during the first six months of employment, one day's paid sick leave per month worked"
	CitationMedicalCert = "BCEA s23(1): medical certificate required for more than two consecutive days' absence or frequent absence"

	CitationMaternity       = "BCEA s25(1): maternity leave of at most four consecutive months"
	CitationMaternityNotice = "BCEA s25(2): written notification at least four weeks before maternity leave commences"

	CitationParental = "BCEA s25A: parental leave of at most ten consecutive days"

	CitationAdoption  = "BCEA s25B: adoption leave of at most ten consecutive weeks"
	CitationSurrogacy = "BCEA s25C: commissioning parental leave of at most ten consecutive weeks"

	CitationFamilyResponsibility = "BCEA s27(2): three days' paid family responsibility leave per annual leave cycle"
	CitationFamilyProof          = "BCEA s27(5): reasonable proof of the qualifying event may be required"
)

// =============================================================================
// STATUTORY FLOOR DEFAULTS
// =============================================================================

// Statutory ceiling literals. These are the floor defaults seeded once;
// tenants tighten from here via Tighten and the factory.
const (
	AnnualEntitlementDays = 21  // working days per annual cycle
	SickCycleDays         = 30  // working days per 36-month cycle
	SickProRataMonths     = 6   // pro-rated entitlement applies under this tenure
	FamilyDays            = 3   // working days per annual cycle
	MaternityDays         = 120 // consecutive calendar days (four months)
	MaternityNoticeDays   = 28  // four weeks' written notice
	PaternityDays         = 10  // consecutive calendar days
	AdoptionDays          = 50  // ten weeks of working days
	SurrogacyDays         = 50  // ten weeks of working days
)

// Statutory returns the statutory floor policy for a leave type. Types
// without a statutory entitlement get a permissive company-policy shell.
func Statutory(code leave.Code) LeavePolicy {
	base := LeavePolicy{
		Code:             code,
		Accrual:          AccrualAnnual,
		RequiresApproval: true,
		ExcludeWeekends:  true,
		ExcludeHolidays:  true,
		CeilingBasis:     BasisWorkingDays,
	}

	switch code {
	case leave.Annual:
		base.EntitlementDays = decimal.NewFromInt(AnnualEntitlementDays)
		base.Accrual = AccrualMonthly
		base.AccrualRate = decimal.NewFromInt(AnnualEntitlementDays).Div(decimal.NewFromInt(12))
		base.Citation = CitationAnnual

	case leave.Sick:
		base.EntitlementDays = decimal.NewFromInt(SickCycleDays)
		base.RequiresDocumentation = true
		base.Citation = CitationSickCycle

	case leave.FamilyResponsibility:
		base.EntitlementDays = decimal.NewFromInt(FamilyDays)
		base.MaxDaysPerRequest = FamilyDays
		base.RequiresDocumentation = true
		base.Citation = CitationFamilyResponsibility

	case leave.Maternity:
		base.EntitlementDays = decimal.NewFromInt(MaternityDays)
		base.MaxDaysPerRequest = MaternityDays
		base.MinNoticeDays = MaternityNoticeDays
		base.RequiresDocumentation = true
		base.CeilingBasis = BasisCalendarDays
		base.Citation = CitationMaternity

	case leave.Paternity:
		base.EntitlementDays = decimal.NewFromInt(PaternityDays)
		base.MaxDaysPerRequest = PaternityDays
		base.RequiresDocumentation = true
		base.CeilingBasis = BasisCalendarDays
		base.Citation = CitationParental

	case leave.Adoption:
		base.EntitlementDays = decimal.NewFromInt(AdoptionDays)
		base.MaxDaysPerRequest = AdoptionDays
		base.RequiresDocumentation = true
		base.Citation = CitationAdoption

	case leave.Surrogacy:
		base.EntitlementDays = decimal.NewFromInt(SurrogacyDays)
		base.MaxDaysPerRequest = SurrogacyDays
		base.RequiresDocumentation = true
		base.Citation = CitationSurrogacy

	case leave.Compensatory, leave.Unpaid, leave.Other:
		// No statutory entitlement; requests are governed purely by tenant
		// policy and approval.

	case leave.Study:
		base.RequiresDocumentation = true
	}

	return base
}
