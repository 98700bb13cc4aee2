package types

import (
	ierr "github.com/billingsdk/billingsdk-go/internal/errors"
	"github.com/samber/lo"
)

// AdjustmentType defines the direction of a proration line item.
// Amounts are always non-negative magnitudes; direction is carried here.
type AdjustmentType string

const (
	AdjustmentTypeCredit AdjustmentType = "credit"
	AdjustmentTypeCharge AdjustmentType = "charge"
)

var AdjustmentTypeValues = []AdjustmentType{
	AdjustmentTypeCredit,
	AdjustmentTypeCharge,
}

func (a AdjustmentType) Validate() error {
	if !lo.Contains(AdjustmentTypeValues, a) {
		return ierr.NewError("invalid adjustment type").
			WithHint("Adjustment type must be either credit or charge").
			WithReportableDetails(map[string]any{
				"allowed_values": AdjustmentTypeValues,
				"provided_value": a,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (a AdjustmentType) String() string {
	return string(a)
}

// PlanChangeType classifies a plan pair on a monthly-equivalent basis.
type PlanChangeType string

const (
	PlanChangeTypeUpgrade   PlanChangeType = "upgrade"
	PlanChangeTypeDowngrade PlanChangeType = "downgrade"
	PlanChangeTypeSame      PlanChangeType = "same"
)

func (p PlanChangeType) String() string {
	return string(p)
}

// CouponType defines how a coupon's value is interpreted.
type CouponType string

const (
	CouponTypePercent CouponType = "percent"
	CouponTypeFixed   CouponType = "fixed"
)

var CouponTypeValues = []CouponType{
	CouponTypePercent,
	CouponTypeFixed,
}

func (c CouponType) Validate() error {
	if !lo.Contains(CouponTypeValues, c) {
		return ierr.NewError("invalid coupon type").
			WithHint("Coupon type must be either percent or fixed").
			WithReportableDetails(map[string]any{
				"allowed_values": CouponTypeValues,
				"provided_value": c,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (c CouponType) String() string {
	return string(c)
}
