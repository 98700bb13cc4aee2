package types

import (
	ierr "github.com/billingsdk/billingsdk-go/internal/errors"
	"github.com/samber/lo"
)

// BillingInterval is the recurrence unit of a plan ex month, year
type BillingInterval string

const (
	BillingIntervalMonth BillingInterval = "month"
	BillingIntervalYear  BillingInterval = "year"
)

var BillingIntervalValues = []BillingInterval{
	BillingIntervalMonth,
	BillingIntervalYear,
}

func (i BillingInterval) Validate() error {
	if !lo.Contains(BillingIntervalValues, i) {
		return ierr.NewError("invalid billing interval").
			WithHint("Billing interval must be either month or year").
			WithReportableDetails(map[string]any{
				"allowed_values": BillingIntervalValues,
				"provided_value": i,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (i BillingInterval) String() string {
	return string(i)
}

// IsYearly reports whether the interval bills on a yearly cadence.
func (i BillingInterval) IsYearly() bool {
	return i == BillingIntervalYear
}

// SubscriptionStatus is the lifecycle state of a subscription.
// The proration engine only reads period boundaries; status transitions
// are owned by the subscription lifecycle of the embedding service.
type SubscriptionStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusTrialing SubscriptionStatus = "trialing"
	SubscriptionStatusPastDue  SubscriptionStatus = "past_due"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
)

var SubscriptionStatusValues = []SubscriptionStatus{
	SubscriptionStatusActive,
	SubscriptionStatusTrialing,
	SubscriptionStatusPastDue,
	SubscriptionStatusCanceled,
}

func (s SubscriptionStatus) Validate() error {
	if !lo.Contains(SubscriptionStatusValues, s) {
		return ierr.NewError("invalid subscription status").
			WithHint("Subscription status must be active, trialing, past_due or canceled").
			WithReportableDetails(map[string]any{
				"allowed_values": SubscriptionStatusValues,
				"provided_value": s,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (s SubscriptionStatus) String() string {
	return string(s)
}
