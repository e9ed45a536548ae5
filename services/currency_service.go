package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/pavankkodange/HMAPP/models"
)

var ErrUnknownCurrency = errors.New("unknown currency code")

// CurrencyService formats monetary amounts for display. Amounts are stored
// in the base currency; conversion to the display currency only happens when
// the hotel enables AutoConvert.
type CurrencyService struct {
	DB *gorm.DB
}

func NewCurrencyService(db *gorm.DB) *CurrencyService {
	return &CurrencyService{DB: db}
}

// FormatAmount renders an amount (in base currency) in the target currency
// according to the hotel settings. Pure; see FormatCurrency for the
// DB-backed variant.
func FormatAmount(amount float64, target models.Currency, settings models.HotelSetting) string {
	value := amount
	if settings.AutoConvert && target.Code != settings.BaseCurrency && target.Rate > 0 {
		value = amount * target.Rate
	}

	decimals := settings.DecimalPlaces
	if decimals < 0 {
		decimals = 2
	}

	symbol := target.Symbol
	if symbol == "" {
		symbol = target.Code + " "
	}

	formatted := fmt.Sprintf("%s%.*f", symbol, decimals, value)
	if settings.ShowCurrencyCode {
		formatted += " " + target.Code
	}
	return formatted
}

// Settings returns the singleton hotel settings row, or defaults when none
// has been saved yet.
func (s *CurrencyService) Settings() (models.HotelSetting, error) {
	var settings models.HotelSetting
	err := s.DB.First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.HotelSetting{BaseCurrency: "USD", DisplayCurrency: "USD", DecimalPlaces: 2, AutoConvert: true}, nil
	}
	return settings, err
}

func (s *CurrencyService) Currencies() ([]models.Currency, error) {
	var currencies []models.Currency
	err := s.DB.Order("code").Find(&currencies).Error
	return currencies, err
}

// FormatCurrency renders an amount for display. An empty code means the
// hotel's display currency.
func (s *CurrencyService) FormatCurrency(amount float64, code string) (string, error) {
	settings, err := s.Settings()
	if err != nil {
		return "", err
	}

	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = settings.DisplayCurrency
	}
	if code == "" {
		code = settings.BaseCurrency
	}

	var target models.Currency
	if err := s.DB.Where("code = ?", code).First(&target).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Unseeded code: fall back to a plain rendering.
			return fmt.Sprintf("%.2f %s", amount, code), nil
		}
		return "", err
	}

	return FormatAmount(amount, target, settings), nil
}

// SaveSettings creates or updates the singleton settings row.
func (s *CurrencyService) SaveSettings(updated models.HotelSetting) (models.HotelSetting, error) {
	var settings models.HotelSetting
	err := s.DB.First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = updated
		settings.ID = 0
		if err := s.DB.Create(&settings).Error; err != nil {
			return models.HotelSetting{}, err
		}
		return settings, nil
	}
	if err != nil {
		return models.HotelSetting{}, err
	}

	updated.ID = settings.ID
	updated.CreatedAt = settings.CreatedAt
	if err := s.DB.Save(&updated).Error; err != nil {
		return models.HotelSetting{}, err
	}
	return updated, nil
}

// UpdateRates overwrites exchange rates by currency code.
func (s *CurrencyService) UpdateRates(rates map[string]float64) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		for code, rate := range rates {
			if rate <= 0 {
				return fmt.Errorf("rate for %s must be positive", code)
			}
			result := tx.Model(&models.Currency{}).
				Where("code = ?", strings.ToUpper(strings.TrimSpace(code))).
				Update("rate", rate)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrUnknownCurrency
			}
		}
		return nil
	})
}
