package proration

import (
	"github.com/billingsdk/billingsdk-go/internal/domain/billing"
	"github.com/billingsdk/billingsdk-go/internal/types"
	"github.com/shopspring/decimal"
)

// PlanDiff classifies a plan pair and reports the absolute price deltas on a
// monthly-equivalent basis. Direction is carried by ChangeType, not by the
// sign of the differences.
type PlanDiff struct {
	ChangeType        types.PlanChangeType `json:"change_type"`
	MonthlyDifference decimal.Decimal      `json:"monthly_difference"`
	YearlyDifference  decimal.Decimal      `json:"yearly_difference"`
}

// PlanDifference normalizes both plans to an equivalent monthly price and
// classifies the change as upgrade, downgrade or same. Yearly plans divide
// by intervalCount*12; anything else is treated as already monthly.
func PlanDifference(currentPlan, newPlan *billing.Plan) PlanDiff {
	currentMonthly := currentPlan.MonthlyEquivalentPrice()
	newMonthly := newPlan.MonthlyEquivalentPrice()

	changeType := types.PlanChangeTypeSame
	switch newMonthly.Cmp(currentMonthly) {
	case 1:
		changeType = types.PlanChangeTypeUpgrade
	case -1:
		changeType = types.PlanChangeTypeDowngrade
	}

	monthlyDiff := newMonthly.Sub(currentMonthly).Abs()

	return PlanDiff{
		ChangeType:        changeType,
		MonthlyDifference: monthlyDiff,
		YearlyDifference:  monthlyDiff.Mul(decimal.NewFromInt(12)),
	}
}
