package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pavankkodange/HMAPP/models"
)

func TestFormatAmount(t *testing.T) {
	usd := models.Currency{Code: "USD", Name: "US Dollar", Symbol: "$", Rate: 1}
	eur := models.Currency{Code: "EUR", Name: "Euro", Symbol: "€", Rate: 0.9}
	jpy := models.Currency{Code: "JPY", Name: "Japanese Yen", Symbol: "¥", Rate: 150}

	tests := []struct {
		name     string
		amount   float64
		target   models.Currency
		settings models.HotelSetting
		want     string
	}{
		{
			name:     "base currency untouched",
			amount:   100,
			target:   usd,
			settings: models.HotelSetting{BaseCurrency: "USD", DecimalPlaces: 2, AutoConvert: true},
			want:     "$100.00",
		},
		{
			name:     "converted to display currency",
			amount:   100,
			target:   eur,
			settings: models.HotelSetting{BaseCurrency: "USD", DecimalPlaces: 2, AutoConvert: true},
			want:     "€90.00",
		},
		{
			name:     "no conversion when autoConvert off",
			amount:   100,
			target:   eur,
			settings: models.HotelSetting{BaseCurrency: "USD", DecimalPlaces: 2, AutoConvert: false},
			want:     "€100.00",
		},
		{
			name:     "zero decimal places",
			amount:   100,
			target:   jpy,
			settings: models.HotelSetting{BaseCurrency: "USD", DecimalPlaces: 0, AutoConvert: true},
			want:     "¥15000",
		},
		{
			name:     "currency code suffix",
			amount:   42.5,
			target:   usd,
			settings: models.HotelSetting{BaseCurrency: "USD", DecimalPlaces: 2, ShowCurrencyCode: true},
			want:     "$42.50 USD",
		},
		{
			name:     "missing symbol falls back to code",
			amount:   10,
			target:   models.Currency{Code: "CHF", Rate: 1},
			settings: models.HotelSetting{BaseCurrency: "CHF", DecimalPlaces: 2},
			want:     "CHF 10.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(tt.amount, tt.target, tt.settings))
		})
	}
}
