package proration

import (
	"testing"

	ierr "github.com/billingsdk/billingsdk-go/internal/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		currency string
		locale   string
		want     string
	}{
		{
			name:     "usd_en_us",
			amount:   decimal.NewFromFloat(13.34),
			currency: "usd",
			locale:   "en-US",
			want:     "$13.34",
		},
		{
			name:     "eur_de_de_uses_comma_separator",
			amount:   decimal.NewFromFloat(9.99),
			currency: "eur",
			locale:   "de-DE",
			want:     "€9,99",
		},
		{
			name:     "pads_to_two_decimals",
			amount:   decimal.NewFromFloat(20),
			currency: "usd",
			locale:   "en-US",
			want:     "$20.00",
		},
		{
			name:     "rounds_to_two_decimals",
			amount:   decimal.NewFromFloat(13.345),
			currency: "usd",
			locale:   "en-US",
			want:     "$13.35",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatAmount(tt.amount, tt.currency, tt.locale)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatAmount_InvalidCurrency(t *testing.T) {
	_, err := FormatAmount(decimal.NewFromInt(10), "zzz", "en-US")
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestFormatAmount_InvalidLocale(t *testing.T) {
	_, err := FormatAmount(decimal.NewFromInt(10), "usd", "not a locale")
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}
