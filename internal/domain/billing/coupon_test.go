package billing

import (
	"testing"
	"time"

	"github.com/billingsdk/billingsdk-go/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCoupon_IsValidAt(t *testing.T) {
	expiry := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	coupon := &Coupon{
		ID:        "coupon_test",
		Name:      "TEST",
		Type:      types.CouponTypePercent,
		Value:     decimal.NewFromInt(10),
		ExpiresAt: &expiry,
	}

	assert.True(t, coupon.IsValidAt(expiry.AddDate(0, 0, -1)))
	assert.True(t, coupon.IsValidAt(expiry)) // valid at the boundary
	assert.False(t, coupon.IsValidAt(expiry.Add(time.Second)))

	noExpiry := &Coupon{ID: "coupon_open", Type: types.CouponTypePercent, Value: decimal.NewFromInt(10)}
	assert.True(t, noExpiry.IsValidAt(time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestCoupon_DiscountFor(t *testing.T) {
	subtotal := decimal.NewFromFloat(13.33)

	tests := []struct {
		name   string
		coupon *Coupon
		want   string
	}{
		{
			name:   "percent",
			coupon: &Coupon{Type: types.CouponTypePercent, Value: decimal.NewFromInt(20)},
			want:   "2.67",
		},
		{
			name:   "fixed_below_subtotal",
			coupon: &Coupon{Type: types.CouponTypeFixed, Value: decimal.NewFromInt(10), Currency: "usd"},
			want:   "10.00",
		},
		{
			name:   "fixed_capped_at_subtotal",
			coupon: &Coupon{Type: types.CouponTypeFixed, Value: decimal.NewFromInt(50), Currency: "usd"},
			want:   "13.33",
		},
		{
			name:   "fixed_currency_mismatch_is_noop",
			coupon: &Coupon{Type: types.CouponTypeFixed, Value: decimal.NewFromInt(10), Currency: "eur"},
			want:   "0.00",
		},
		{
			name:   "unknown_type_is_noop",
			coupon: &Coupon{Type: types.CouponType("bogus"), Value: decimal.NewFromInt(10)},
			want:   "0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.coupon.DiscountFor(subtotal, "usd")
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestCoupon_DiscountFor_NegativeSubtotal(t *testing.T) {
	// A net-credit subtotal must never turn a fixed coupon into a charge.
	coupon := &Coupon{Type: types.CouponTypeFixed, Value: decimal.NewFromInt(10), Currency: "usd"}
	got := coupon.DiscountFor(decimal.NewFromFloat(-13.33), "usd")
	assert.True(t, got.IsZero())
}

func TestCoupon_ApplyTo(t *testing.T) {
	coupon := &Coupon{Type: types.CouponTypeFixed, Value: decimal.NewFromInt(50), Currency: "usd"}
	final := coupon.ApplyTo(decimal.NewFromFloat(13.33), "usd")
	assert.True(t, final.IsZero())

	percent := &Coupon{Type: types.CouponTypePercent, Value: decimal.NewFromInt(20)}
	assert.Equal(t, "10.66", percent.ApplyTo(decimal.NewFromFloat(13.33), "usd").StringFixed(2))
}
