package compliance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/warp/leave-engine/calendar"
	"github.com/warp/leave-engine/compliance"
	"github.com/warp/leave-engine/leave"
)

// =============================================================================
// TENURE GATES
// =============================================================================

func TestCheckEligibility_TenureThresholds(t *testing.T) {
	hire := date(2024, time.January, 15)

	cases := []struct {
		name     string
		code     leave.Code
		asOf     calendar.Date
		eligible bool
	}{
		{"sick day before one month", leave.Sick, date(2024, time.February, 14), false},
		{"sick on one-month anniversary", leave.Sick, date(2024, time.February, 15), true},

		{"family at three months", leave.FamilyResponsibility, date(2024, time.April, 15), false},
		{"family at four months", leave.FamilyResponsibility, date(2024, time.May, 15), true},

		{"maternity under one month", leave.Maternity, date(2024, time.February, 1), false},
		{"maternity at one month", leave.Maternity, date(2024, time.February, 15), true},
		{"paternity under one month", leave.Paternity, date(2024, time.February, 1), false},
		{"adoption at one month", leave.Adoption, date(2024, time.February, 15), true},
		{"surrogacy under one month", leave.Surrogacy, date(2024, time.February, 1), false},
	}

	for _, tc := range cases {
		got := compliance.CheckEligibility(tc.code, hire, tc.asOf)
		assert.Equal(t, tc.eligible, got.Eligible, tc.name)
		if !tc.eligible {
			assert.NotEmpty(t, got.Reason, "%s: ineligibility must carry a reason", tc.name)
		}
	}
}

func TestCheckEligibility_AnnualAlwaysEligible(t *testing.T) {
	// GIVEN: 3 completed months of tenure
	// WHEN: checking annual leave eligibility
	// THEN: eligible, with an informational accrual note (21/12 * 3 = 5.25)

	hire := date(2024, time.January, 1)
	got := compliance.CheckEligibility(leave.Annual, hire, date(2024, time.April, 1))

	assert.True(t, got.Eligible)
	assert.Contains(t, got.Reason, "5.25")
	assert.Contains(t, got.Reason, "3 completed months")
}

func TestCheckEligibility_AnnualFullYear_NoAccrualNote(t *testing.T) {
	hire := date(2023, time.June, 1)
	got := compliance.CheckEligibility(leave.Annual, hire, date(2024, time.June, 1))

	assert.True(t, got.Eligible)
	assert.Empty(t, got.Reason)
}

func TestCheckEligibility_UngatedTypes(t *testing.T) {
	// Same-day hire: no tenure at all.
	hire := date(2024, time.June, 3)
	for _, code := range []leave.Code{leave.Compensatory, leave.Study, leave.Unpaid, leave.Other} {
		got := compliance.CheckEligibility(code, hire, hire)
		assert.True(t, got.Eligible, "%s should have no tenure gate", code)
	}
}
