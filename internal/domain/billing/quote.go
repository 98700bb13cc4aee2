package billing

import (
	"time"

	"github.com/billingsdk/billingsdk-go/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// ProrationAdjustment is a single credit or charge line item. Amount is a
// non-negative magnitude; direction is carried by Type, not by sign.
type ProrationAdjustment struct {
	Type        types.AdjustmentType `json:"type"`
	Amount      decimal.Decimal      `json:"amount"`
	Description string               `json:"description"`
	PeriodStart time.Time            `json:"period_start"`
	PeriodEnd   time.Time            `json:"period_end"`
}

// ProrationQuote is the itemized result of a proposed plan change. It is a
// derived, disposable value: recomputed on demand and never stored as a
// system of record. Consumers must not assume a fixed adjustment count or
// ordering; credits and charges may be interleaved and should be summed by
// type.
type ProrationQuote struct {
	ID              string                `json:"id"`
	CurrentPlan     *Plan                 `json:"current_plan"`
	NewPlan         *Plan                 `json:"new_plan"`
	ChangeDate      time.Time             `json:"change_date"`
	Adjustments     []ProrationAdjustment `json:"adjustments"`
	Subtotal        decimal.Decimal       `json:"subtotal"`
	CouponDiscount  decimal.Decimal       `json:"coupon_discount"`
	TaxAmount       decimal.Decimal       `json:"tax_amount"`
	Total           decimal.Decimal       `json:"total"`
	Currency        string                `json:"currency"`
	NextBillingDate time.Time             `json:"next_billing_date"`
	// ImmediateCharge mirrors Total for consumers that render the amount
	// due at the moment of the change.
	ImmediateCharge decimal.Decimal `json:"immediate_charge"`
}

// SumAdjustments totals the magnitudes of all adjustments of the given type.
func SumAdjustments(adjustments []ProrationAdjustment, t types.AdjustmentType) decimal.Decimal {
	return lo.Reduce(adjustments, func(sum decimal.Decimal, a ProrationAdjustment, _ int) decimal.Decimal {
		if a.Type != t {
			return sum
		}
		return sum.Add(a.Amount)
	}, decimal.Zero)
}
