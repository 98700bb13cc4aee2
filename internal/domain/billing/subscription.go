package billing

import (
	"time"

	ierr "github.com/billingsdk/billingsdk-go/internal/errors"
	"github.com/billingsdk/billingsdk-go/internal/types"
)

// Subscription captures the billing state of a customer. The proration
// engine only reads the period boundaries; status transitions belong to the
// subscription lifecycle of the embedding service.
type Subscription struct {
	ID                 string                   `json:"id"`
	PlanID             string                   `json:"plan_id"`
	Status             types.SubscriptionStatus `json:"status"`
	CurrentPeriodStart time.Time                `json:"current_period_start"`
	CurrentPeriodEnd   time.Time                `json:"current_period_end"`
	CancelAtPeriodEnd  bool                     `json:"cancel_at_period_end"`
	TrialEnd           *time.Time               `json:"trial_end,omitempty"`
}

func (s *Subscription) Validate() error {
	if s.ID == "" {
		return ierr.NewError("subscription id is required").
			WithHint("Subscription ID must not be empty").
			Mark(ierr.ErrValidation)
	}
	if s.CurrentPeriodStart.IsZero() || s.CurrentPeriodEnd.IsZero() {
		return ierr.NewError("billing period start and end dates are required").
			WithReportableDetails(map[string]any{
				"subscription_id": s.ID,
			}).
			Mark(ierr.ErrValidation)
	}
	if !s.CurrentPeriodEnd.After(s.CurrentPeriodStart) {
		return ierr.NewError("invalid billing period").
			WithHintf("period end %s must be after period start %s",
				s.CurrentPeriodEnd.Format(time.RFC3339), s.CurrentPeriodStart.Format(time.RFC3339)).
			Mark(ierr.ErrValidation)
	}
	return s.Status.Validate()
}
