package proration

import (
	"fmt"
	"time"

	"github.com/billingsdk/billingsdk-go/internal/domain/billing"
	"github.com/billingsdk/billingsdk-go/internal/types"
	"github.com/shopspring/decimal"
)

// QuoteParams holds all necessary input for computing a plan-change quote.
type QuoteParams struct {
	Subscription *billing.Subscription // Subscription being changed
	CurrentPlan  *billing.Plan         // Plan being left
	NewPlan      *billing.Plan         // Plan being switched to
	ChangeDate   time.Time             // Effective date/time of the change
	Coupon       *billing.Coupon       // Optional discount
	TaxRate      *billing.TaxRate      // Optional jurisdictional tax
}

// ComputeQuote produces the itemized monetary adjustment for switching plans
// mid-cycle. It is a pure function: identical inputs always yield identical
// quotes, nothing is mutated, and no error is returned. The caller must
// guard against degenerate inputs (a non-positive billing period yields a
// zero ratio and no time-based adjustments).
//
// Each adjustment is rounded to 2 decimal places independently before
// summation. The ordering matters for reproducible fixtures and must not be
// collapsed into a single rounding of the total.
//
// The final total is clamped at zero: a net-credit change is not surfaced as
// money owed back to the customer. Whether such credits should instead be
// tracked as account balance is a product decision left to the host; do not
// change the clamp without one.
func ComputeQuote(params QuoteParams) *billing.ProrationQuote {
	sub := params.Subscription
	currentPlan := params.CurrentPlan
	newPlan := params.NewPlan

	ratio := remainingRatio(sub.CurrentPeriodStart, sub.CurrentPeriodEnd, params.ChangeDate)

	adjustments := []billing.ProrationAdjustment{}
	if ratio.GreaterThan(decimal.Zero) {
		adjustments = append(adjustments, billing.ProrationAdjustment{
			Type:        types.AdjustmentTypeCredit,
			Amount:      currentPlan.Price.Mul(ratio).Round(2),
			Description: fmt.Sprintf("Credit for unused time on %s", currentPlan.Name),
			PeriodStart: params.ChangeDate,
			PeriodEnd:   sub.CurrentPeriodEnd,
		})
		adjustments = append(adjustments, billing.ProrationAdjustment{
			Type:        types.AdjustmentTypeCharge,
			Amount:      newPlan.Price.Mul(ratio).Round(2),
			Description: fmt.Sprintf("Prorated charge for %s", newPlan.Name),
			PeriodStart: params.ChangeDate,
			PeriodEnd:   sub.CurrentPeriodEnd,
		})
	}

	// Subtotal sums by type rather than assuming one credit and one charge,
	// so future adjustment kinds keep it correct.
	subtotal := billing.SumAdjustments(adjustments, types.AdjustmentTypeCharge).
		Sub(billing.SumAdjustments(adjustments, types.AdjustmentTypeCredit))

	couponDiscount := decimal.Zero
	if params.Coupon != nil && params.Coupon.IsValidAt(params.ChangeDate) {
		couponDiscount = params.Coupon.DiscountFor(subtotal, currentPlan.Currency)
		if couponDiscount.GreaterThan(decimal.Zero) {
			// Appended after the subtotal is fixed, purely for traceability.
			adjustments = append(adjustments, billing.ProrationAdjustment{
				Type:        types.AdjustmentTypeCredit,
				Amount:      couponDiscount,
				Description: fmt.Sprintf("Discount from coupon %s", params.Coupon.Name),
				PeriodStart: params.ChangeDate,
				PeriodEnd:   sub.CurrentPeriodEnd,
			})
		}
	}

	taxAmount := decimal.Zero
	if params.TaxRate != nil {
		taxAmount = params.TaxRate.AmountOn(subtotal.Sub(couponDiscount))
	}

	total := subtotal.Sub(couponDiscount).Add(taxAmount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return &billing.ProrationQuote{
		CurrentPlan:     currentPlan,
		NewPlan:         newPlan,
		ChangeDate:      params.ChangeDate,
		Adjustments:     adjustments,
		Subtotal:        subtotal,
		CouponDiscount:  couponDiscount,
		TaxAmount:       taxAmount,
		Total:           total,
		Currency:        currentPlan.Currency,
		NextBillingDate: sub.CurrentPeriodEnd,
		ImmediateCharge: total,
	}
}

// remainingRatio is the fraction of the billing period still unconsumed at
// the change date. A change at or after period end yields zero. A
// non-positive period also yields zero since decimal math has no NaN to
// propagate.
func remainingRatio(periodStart, periodEnd, changeDate time.Time) decimal.Decimal {
	totalMs := periodEnd.Sub(periodStart).Milliseconds()
	if totalMs <= 0 {
		return decimal.Zero
	}
	remainingMs := periodEnd.Sub(changeDate).Milliseconds()
	if remainingMs < 0 {
		remainingMs = 0
	}
	return decimal.NewFromInt(remainingMs).Div(decimal.NewFromInt(totalMs))
}
