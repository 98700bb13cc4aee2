package proration

import (
	"strings"

	ierr "github.com/billingsdk/billingsdk-go/internal/errors"
	"github.com/billingsdk/billingsdk-go/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatAmount renders a monetary amount with its currency symbol using the
// locale's number conventions, always with 2 decimal places. An invalid ISO
// 4217 code or locale tag is a programming/config error and is returned to
// the caller, not swallowed.
func FormatAmount(amount decimal.Decimal, currencyCode string, locale string) (string, error) {
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return "", ierr.WithError(err).
			WithHintf("invalid ISO 4217 currency code '%s'", currencyCode).
			Mark(ierr.ErrValidation)
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return "", ierr.WithError(err).
			WithHintf("invalid locale '%s'", locale).
			Mark(ierr.ErrValidation)
	}

	symbol := types.GetCurrencySymbol(strings.ToLower(unit.String()))
	value, _ := amount.Round(2).Float64()

	p := message.NewPrinter(tag)
	return p.Sprintf("%s%.2f", symbol, value), nil
}
