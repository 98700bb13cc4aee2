package billing

import (
	ierr "github.com/billingsdk/billingsdk-go/internal/errors"
	"github.com/billingsdk/billingsdk-go/internal/types"
	"github.com/shopspring/decimal"
)

// Plan represents a billable offering. Plans are immutable value objects
// identified by ID; price is expressed in major currency units.
type Plan struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Price         decimal.Decimal       `json:"price"`
	Currency      string                `json:"currency"`
	Interval      types.BillingInterval `json:"interval"`
	IntervalCount int                   `json:"interval_count"`
	Features      []string              `json:"features,omitempty"`
}

func (p *Plan) Validate() error {
	if p.ID == "" {
		return ierr.NewError("plan id is required").
			WithHint("Plan ID must not be empty").
			Mark(ierr.ErrValidation)
	}
	if p.Price.IsNegative() {
		return ierr.NewError("plan price cannot be negative").
			WithReportableDetails(map[string]any{
				"plan_id": p.ID,
				"price":   p.Price.String(),
			}).
			Mark(ierr.ErrValidation)
	}
	if p.IntervalCount <= 0 {
		return ierr.NewError("plan interval count must be positive").
			WithReportableDetails(map[string]any{
				"plan_id":        p.ID,
				"interval_count": p.IntervalCount,
			}).
			Mark(ierr.ErrValidation)
	}
	return p.Interval.Validate()
}

// MonthlyEquivalentPrice normalizes the plan price to a per-month amount so
// plans on different cadences can be compared. Unknown intervals fall back to
// monthly rather than erroring.
func (p *Plan) MonthlyEquivalentPrice() decimal.Decimal {
	intervalCount := decimal.NewFromInt(int64(p.IntervalCount))
	if intervalCount.IsZero() {
		intervalCount = decimal.NewFromInt(1)
	}
	if p.Interval.IsYearly() {
		return p.Price.Div(intervalCount.Mul(decimal.NewFromInt(12)))
	}
	return p.Price.Div(intervalCount)
}
