// Package provider defines the BillingProvider capability boundary: the one
// seam where a deterministic mock and a live billing backend are
// interchangeable without touching call sites.
package provider

import (
	"context"
	"time"

	"github.com/billingsdk/billingsdk-go/internal/domain/billing"
	"github.com/billingsdk/billingsdk-go/internal/validator"
)

// BillingProvider computes plan-change quotes. Implementations must treat
// every call as a single-shot request/response with no ordering between
// concurrent calls; quotes are pure functions of the request.
type BillingProvider interface {
	ComputeProrationQuote(ctx context.Context, req QuoteRequest) (*billing.ProrationQuote, error)
}

// QuoteRequest carries everything needed to quote a plan change. Coupon and
// TaxRate are optional.
type QuoteRequest struct {
	Subscription *billing.Subscription `json:"subscription" validate:"required"`
	CurrentPlan  *billing.Plan         `json:"current_plan" validate:"required"`
	NewPlan      *billing.Plan         `json:"new_plan" validate:"required"`
	ChangeDate   time.Time             `json:"change_date" validate:"required"`
	Coupon       *billing.Coupon       `json:"coupon,omitempty"`
	TaxRate      *billing.TaxRate      `json:"tax_rate,omitempty"`
}

// Validate guards the engine's preconditions at the provider boundary. The
// engine itself does not validate and would propagate a degenerate ratio.
func (r QuoteRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if err := r.Subscription.Validate(); err != nil {
		return err
	}
	if err := r.CurrentPlan.Validate(); err != nil {
		return err
	}
	return r.NewPlan.Validate()
}
