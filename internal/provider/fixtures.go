package provider

import (
	"time"

	"github.com/billingsdk/billingsdk-go/internal/domain/billing"
	"github.com/billingsdk/billingsdk-go/internal/types"
	"github.com/shopspring/decimal"
)

// Fixture catalogue backing demos and provider tests. Constructors return
// fresh values on every call so callers can never share mutable state.

const (
	PlanStarter    = "plan_starter"
	PlanPro        = "plan_pro"
	PlanEnterprise = "plan_enterprise"
	PlanProAnnual  = "plan_pro_annual"

	CouponWelcome20 = "coupon_welcome20"
	CouponSave10    = "coupon_save10"
	CouponExpired   = "coupon_expired"
)

// FixturePlans returns the demo plan catalogue.
func FixturePlans() []*billing.Plan {
	return []*billing.Plan{
		{
			ID:            PlanStarter,
			Name:          "Starter",
			Price:         decimal.NewFromFloat(9.99),
			Currency:      "usd",
			Interval:      types.BillingIntervalMonth,
			IntervalCount: 1,
			Features:      []string{"Up to 3 projects", "Community support"},
		},
		{
			ID:            PlanPro,
			Name:          "Pro",
			Price:         decimal.NewFromFloat(29.99),
			Currency:      "usd",
			Interval:      types.BillingIntervalMonth,
			IntervalCount: 1,
			Features:      []string{"Unlimited projects", "Priority support", "Usage analytics"},
		},
		{
			ID:            PlanEnterprise,
			Name:          "Enterprise",
			Price:         decimal.NewFromFloat(99.99),
			Currency:      "usd",
			Interval:      types.BillingIntervalMonth,
			IntervalCount: 1,
			Features:      []string{"Unlimited projects", "Dedicated support", "SSO", "Audit logs"},
		},
		{
			ID:            PlanProAnnual,
			Name:          "Pro (Annual)",
			Price:         decimal.NewFromFloat(299.99),
			Currency:      "usd",
			Interval:      types.BillingIntervalYear,
			IntervalCount: 1,
			Features:      []string{"Unlimited projects", "Priority support", "Usage analytics"},
		},
	}
}

// FixturePlan returns the catalogue plan with the given id, or nil.
func FixturePlan(id string) *billing.Plan {
	for _, p := range FixturePlans() {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// FixtureCoupons returns the demo coupon catalogue. The expired coupon is
// anchored relative to the given clock.
func FixtureCoupons(clock types.Clock) []*billing.Coupon {
	expired := clock.Now().AddDate(0, 0, -1)
	return []*billing.Coupon{
		{
			ID:    CouponWelcome20,
			Name:  "WELCOME20",
			Type:  types.CouponTypePercent,
			Value: decimal.NewFromInt(20),
		},
		{
			ID:       CouponSave10,
			Name:     "SAVE10",
			Type:     types.CouponTypeFixed,
			Value:    decimal.NewFromInt(10),
			Currency: "usd",
		},
		{
			ID:        CouponExpired,
			Name:      "LASTCHANCE50",
			Type:      types.CouponTypePercent,
			Value:     decimal.NewFromInt(50),
			ExpiresAt: &expired,
		},
	}
}

// FixtureCoupon returns the catalogue coupon with the given id, or nil.
func FixtureCoupon(clock types.Clock, id string) *billing.Coupon {
	for _, c := range FixtureCoupons(clock) {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// FixtureTaxRates returns the demo tax table.
func FixtureTaxRates() []*billing.TaxRate {
	return []*billing.TaxRate{
		{
			Name:    "VAT",
			Rate:    decimal.NewFromFloat(0.21),
			Country: "NL",
		},
		{
			Name:    "Sales Tax",
			Rate:    decimal.NewFromFloat(0.0725),
			Country: "US",
			Region:  "CA",
		},
	}
}

// SubscriptionDaysInto synthesizes an active subscription that is the given
// number of days into a billing period for the plan. Periods are anchored to
// the clock's now, so deterministic tests must pass a frozen clock.
func SubscriptionDaysInto(clock types.Clock, plan *billing.Plan, days int) *billing.Subscription {
	start := clock.Now().AddDate(0, 0, -days)
	var end time.Time
	if plan.Interval.IsYearly() {
		end = start.AddDate(plan.IntervalCount, 0, 0)
	} else {
		end = start.AddDate(0, plan.IntervalCount, 0)
	}
	return &billing.Subscription{
		ID:                 types.GenerateUUIDWithPrefix("sub"),
		PlanID:             plan.ID,
		Status:             types.SubscriptionStatusActive,
		CurrentPeriodStart: start,
		CurrentPeriodEnd:   end,
	}
}

// Scenario is a named, canned quote request used by demos and tests.
type Scenario struct {
	Name        string
	Description string
	Request     QuoteRequest
}

// Scenarios returns the canned plan-change scenarios, anchored to the clock.
func Scenarios(clock types.Clock) []Scenario {
	now := clock.Now()
	starter := FixturePlan(PlanStarter)
	pro := FixturePlan(PlanPro)
	enterprise := FixturePlan(PlanEnterprise)
	proAnnual := FixturePlan(PlanProAnnual)
	vat := FixtureTaxRates()[0]

	return []Scenario{
		{
			Name:        "mid_cycle_upgrade",
			Description: "Starter to Pro, 10 days into the period",
			Request: QuoteRequest{
				Subscription: SubscriptionDaysInto(clock, starter, 10),
				CurrentPlan:  starter,
				NewPlan:      pro,
				ChangeDate:   now,
			},
		},
		{
			Name:        "upgrade_with_coupon",
			Description: "Starter to Pro with a 20% welcome coupon",
			Request: QuoteRequest{
				Subscription: SubscriptionDaysInto(clock, starter, 10),
				CurrentPlan:  starter,
				NewPlan:      pro,
				ChangeDate:   now,
				Coupon:       FixtureCoupon(clock, CouponWelcome20),
			},
		},
		{
			Name:        "upgrade_with_tax",
			Description: "Pro to Enterprise with 21% VAT",
			Request: QuoteRequest{
				Subscription: SubscriptionDaysInto(clock, pro, 15),
				CurrentPlan:  pro,
				NewPlan:      enterprise,
				ChangeDate:   now,
				TaxRate:      vat,
			},
		},
		{
			Name:        "downgrade",
			Description: "Pro to Starter, 20 days into the period",
			Request: QuoteRequest{
				Subscription: SubscriptionDaysInto(clock, pro, 20),
				CurrentPlan:  pro,
				NewPlan:      starter,
				ChangeDate:   now,
			},
		},
		{
			Name:        "annual_switch",
			Description: "Pro monthly to Pro annual",
			Request: QuoteRequest{
				Subscription: SubscriptionDaysInto(clock, pro, 10),
				CurrentPlan:  pro,
				NewPlan:      proAnnual,
				ChangeDate:   now,
			},
		},
	}
}
