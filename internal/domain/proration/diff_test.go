package proration

import (
	"testing"

	"github.com/billingsdk/billingsdk-go/internal/domain/billing"
	"github.com/billingsdk/billingsdk-go/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func annualProPlan() *billing.Plan {
	return &billing.Plan{
		ID:            "plan_pro_annual",
		Name:          "Pro (Annual)",
		Price:         decimal.NewFromFloat(299.99),
		Currency:      "usd",
		Interval:      types.BillingIntervalYear,
		IntervalCount: 1,
	}
}

func TestPlanDifference(t *testing.T) {
	tests := []struct {
		name            string
		current         *billing.Plan
		target          *billing.Plan
		wantChange      types.PlanChangeType
		wantMonthlyDiff string // StringFixed(4)
		wantYearlyDiff  string // StringFixed(2)
	}{
		{
			name:            "monthly_upgrade",
			current:         starterPlan(),
			target:          proPlan(),
			wantChange:      types.PlanChangeTypeUpgrade,
			wantMonthlyDiff: "20.0000",
			wantYearlyDiff:  "240.00",
		},
		{
			name:            "monthly_downgrade",
			current:         proPlan(),
			target:          starterPlan(),
			wantChange:      types.PlanChangeTypeDowngrade,
			wantMonthlyDiff: "20.0000",
			wantYearlyDiff:  "240.00",
		},
		{
			name:    "same_plan",
			current: proPlan(),
			target:  proPlan(),

			wantChange:      types.PlanChangeTypeSame,
			wantMonthlyDiff: "0.0000",
			wantYearlyDiff:  "0.00",
		},
		{
			// 299.99/12 = 24.9992 monthly equivalent, slightly below 29.99,
			// so the annual plan classifies as a downgrade on a
			// monthly-equivalent basis.
			name:            "monthly_to_annual_same_tier",
			current:         proPlan(),
			target:          annualProPlan(),
			wantChange:      types.PlanChangeTypeDowngrade,
			wantMonthlyDiff: "4.9908",
			wantYearlyDiff:  "59.89",
		},
		{
			name: "every_three_months_interval_count",
			current: &billing.Plan{
				ID:            "plan_quarterly",
				Name:          "Quarterly",
				Price:         decimal.NewFromInt(90),
				Currency:      "usd",
				Interval:      types.BillingIntervalMonth,
				IntervalCount: 3,
			},
			target:          proPlan(),
			wantChange:      types.PlanChangeTypeDowngrade, // 29.99 < 30.00
			wantMonthlyDiff: "0.0100",
			wantYearlyDiff:  "0.12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff := PlanDifference(tt.current, tt.target)
			assert.Equal(t, tt.wantChange, diff.ChangeType)
			assert.Equal(t, tt.wantMonthlyDiff, diff.MonthlyDifference.StringFixed(4))
			assert.Equal(t, tt.wantYearlyDiff, diff.YearlyDifference.StringFixed(2))
			assert.False(t, diff.MonthlyDifference.IsNegative())
			assert.False(t, diff.YearlyDifference.IsNegative())
		})
	}
}

func TestPlanDifference_UnknownIntervalFallsBackToMonthly(t *testing.T) {
	weird := &billing.Plan{
		ID:            "plan_weird",
		Name:          "Weird",
		Price:         decimal.NewFromFloat(29.99),
		Currency:      "usd",
		Interval:      types.BillingInterval("week"),
		IntervalCount: 1,
	}

	diff := PlanDifference(proPlan(), weird)
	assert.Equal(t, types.PlanChangeTypeSame, diff.ChangeType)
	assert.Equal(t, "0.0000", diff.MonthlyDifference.StringFixed(4))
}
