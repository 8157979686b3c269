package factory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/leave-engine/factory"
	"github.com/warp/leave-engine/leave"
	"github.com/warp/leave-engine/policy"
)

// =============================================================================
// SINGLE POLICY PARSING
// =============================================================================

func TestParsePolicy_OverridesAndDefaults(t *testing.T) {
	// GIVEN: a tenant annual policy granting 25 days with 14 days' notice
	// WHEN: parsed
	// THEN: the stated fields are applied and the rest default from the
	//       statutory floor

	p, err := factory.ParsePolicy(`{
		"code": "annual",
		"entitlement_days": 25,
		"min_notice_days": 14
	}`)
	require.NoError(t, err)

	assert.Equal(t, leave.Annual, p.Code)
	assert.True(t, p.EntitlementDays.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, 14, p.MinNoticeDays)
	assert.Equal(t, policy.AccrualMonthly, p.Accrual, "accrual defaults from the floor")
	assert.Equal(t, policy.CitationAnnual, p.Citation, "citation always comes from the floor")
}

func TestParsePolicy_ClampedOntoStatutoryFloor(t *testing.T) {
	// 15 annual days undercut the 21-day floor; a 150-day maternity cap
	// exceeds the statutory 120. Both get clamped silently.

	annual, err := factory.ParsePolicy(`{"code": "annual", "entitlement_days": 15}`)
	require.NoError(t, err)
	assert.True(t, annual.EntitlementDays.Equal(decimal.NewFromInt(21)))

	maternity, err := factory.ParsePolicy(`{"code": "maternity", "max_days_per_request": 150}`)
	require.NoError(t, err)
	assert.Equal(t, 120, maternity.MaxDaysPerRequest)
}

func TestParsePolicy_FractionalEntitlement(t *testing.T) {
	p, err := factory.ParsePolicy(`{"code": "annual", "entitlement_days": 22.5}`)
	require.NoError(t, err)
	assert.True(t, p.EntitlementDays.Equal(decimal.NewFromFloat(22.5)))
}

func TestParsePolicy_UnknownCode(t *testing.T) {
	_, err := factory.ParsePolicy(`{"code": "sabbatical"}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown leave type code")
}

func TestParsePolicy_InvalidEnums(t *testing.T) {
	_, err := factory.ParsePolicy(`{"code": "annual", "accrual": "hourly"}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown accrual type")

	_, err = factory.ParsePolicy(`{"code": "annual", "ceiling_basis": "business_days"}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown ceiling basis")
}

func TestParsePolicy_MalformedJSON(t *testing.T) {
	_, err := factory.ParsePolicy(`{"code": `)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse policy JSON")
}

// =============================================================================
// POLICY SET PARSING
// =============================================================================

func TestParseSet_TenantOverridesOnStatutoryBase(t *testing.T) {
	// GIVEN: a tenant defining only annual and family-responsibility
	// WHEN: building the effective set
	// THEN: those two are overridden, every other type keeps its floor

	set, err := factory.ParseSet(`[
		{"code": "annual", "entitlement_days": 25},
		{"code": "family_responsibility", "max_days_per_request": 2}
	]`)
	require.NoError(t, err)

	annual, ok := set.Lookup(leave.Annual)
	require.True(t, ok)
	assert.True(t, annual.EntitlementDays.Equal(decimal.NewFromInt(25)))

	family, ok := set.Lookup(leave.FamilyResponsibility)
	require.True(t, ok)
	assert.Equal(t, 2, family.MaxDaysPerRequest, "tightening below the 3-day ceiling is allowed")

	sick, ok := set.Lookup(leave.Sick)
	require.True(t, ok)
	assert.Equal(t, policy.Statutory(leave.Sick), sick, "untouched types keep the statutory floor")
}

func TestParseSet_BadEntryReportsIndex(t *testing.T) {
	_, err := factory.ParseSet(`[
		{"code": "annual"},
		{"code": "gap_year"}
	]`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "policy 1")
}
