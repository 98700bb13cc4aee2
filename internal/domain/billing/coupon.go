package billing

import (
	"time"

	"github.com/billingsdk/billingsdk-go/internal/types"
	"github.com/shopspring/decimal"
)

// Coupon represents a discount rule, either percentage-based or a fixed
// monetary amount. MaxRedemptions is carried for callers that track
// redemption counts; the engine itself only checks expiry.
type Coupon struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Type           types.CouponType `json:"type"`
	Value          decimal.Decimal  `json:"value"`
	Currency       string           `json:"currency,omitempty"`
	MaxRedemptions *int             `json:"max_redemptions,omitempty"`
	ExpiresAt      *time.Time       `json:"expires_at,omitempty"`
}

// IsValidAt checks whether the coupon is redeemable as of the given time.
// Only expiry is enforced here; redemption-count limits are an external
// responsibility.
func (c *Coupon) IsValidAt(at time.Time) bool {
	if c.ExpiresAt != nil && at.After(*c.ExpiresAt) {
		return false
	}
	return true
}

// DiscountFor calculates the discount against a subtotal billed in the given
// currency. Percent coupons take value% of the subtotal. Fixed coupons apply
// only when their currency matches the billed currency; a mismatch is a
// silent no-op, not an error. The discount never exceeds the subtotal and
// never goes negative.
func (c *Coupon) DiscountFor(subtotal decimal.Decimal, currency string) decimal.Decimal {
	switch c.Type {
	case types.CouponTypePercent:
		return subtotal.Mul(c.Value).Div(decimal.NewFromInt(100)).Round(2)
	case types.CouponTypeFixed:
		if c.Currency != currency {
			return decimal.Zero
		}
		discount := decimal.Min(c.Value, subtotal)
		if discount.IsNegative() {
			return decimal.Zero
		}
		return discount
	default:
		return decimal.Zero
	}
}

// ApplyTo applies the discount to an amount and returns the post-discount
// amount, floored at zero.
func (c *Coupon) ApplyTo(amount decimal.Decimal, currency string) decimal.Decimal {
	final := amount.Sub(c.DiscountFor(amount, currency))
	if final.IsNegative() {
		return decimal.Zero
	}
	return final
}
