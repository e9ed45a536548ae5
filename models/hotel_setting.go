package models

import "time"

// HotelSetting is a singleton row holding branding and currency behavior.
type HotelSetting struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:255" json:"name"`
	Address string `gorm:"type:text" json:"address"`
	Phone   string `gorm:"size:50" json:"phone"`
	Email   string `gorm:"size:150" json:"email"`
	Website string `gorm:"size:255" json:"website"`

	// BaseCurrency is what amounts are stored in; DisplayCurrency is what
	// staff and guests see. Conversion only happens when AutoConvert is set.
	BaseCurrency     string `gorm:"column:base_currency;size:3;default:USD" json:"baseCurrency"`
	DisplayCurrency  string `gorm:"column:display_currency;size:3;default:USD" json:"displayCurrency"`
	DecimalPlaces    int    `gorm:"column:decimal_places;default:2" json:"decimalPlaces"`
	AutoConvert      bool   `gorm:"column:auto_convert;default:true" json:"autoConvert"`
	ShowCurrencyCode bool   `gorm:"column:show_currency_code;default:false" json:"showCurrencyCode"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Currency holds one exchange rate relative to the base currency
// (Rate == how many units of this currency one base unit buys).
type Currency struct {
	ID     uint    `gorm:"primaryKey" json:"id"`
	Code   string  `gorm:"uniqueIndex;size:3" json:"code"`
	Name   string  `gorm:"size:100" json:"name"`
	Symbol string  `gorm:"size:10" json:"symbol"`
	Rate   float64 `gorm:"default:1" json:"rate"`

	UpdatedAt time.Time `json:"updated_at"`
}
