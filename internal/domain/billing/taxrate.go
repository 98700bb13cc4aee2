package billing

import (
	"github.com/shopspring/decimal"
)

// TaxRate is a jurisdictional rate applied multiplicatively to the
// post-discount taxable amount. Rate is a fraction, ex 0.21 for 21% VAT.
type TaxRate struct {
	Name    string          `json:"name"`
	Rate    decimal.Decimal `json:"rate"`
	Country string          `json:"country"`
	Region  string          `json:"region,omitempty"`
}

// AmountOn returns the tax due on a taxable amount, rounded to 2 decimal
// places. Negative taxable amounts yield zero tax.
func (t *TaxRate) AmountOn(taxable decimal.Decimal) decimal.Decimal {
	if taxable.IsNegative() {
		return decimal.Zero
	}
	return taxable.Mul(t.Rate).Round(2)
}
