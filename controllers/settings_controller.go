package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pavankkodange/HMAPP/models"
	"github.com/pavankkodange/HMAPP/services"
)

type SettingsController struct {
	Currency *services.CurrencyService
}

func NewSettingsController(currency *services.CurrencyService) *SettingsController {
	return &SettingsController{Currency: currency}
}

func (sc *SettingsController) GetHotelSettings(c *gin.Context) {
	settings, err := sc.Currency.Settings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotel": settings})
}

func (sc *SettingsController) UpdateHotelSettings(c *gin.Context) {
	var payload models.HotelSetting
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := sc.Currency.SaveSettings(payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotel": settings})
}

func (sc *SettingsController) GetCurrencies(c *gin.Context) {
	currencies, err := sc.Currency.Currencies()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, currencies)
}

// UpdateRates replaces exchange rates, e.g. {"rates": {"EUR": 0.91}}.
func (sc *SettingsController) UpdateRates(c *gin.Context) {
	var payload struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil || len(payload.Rates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rates map required"})
		return
	}

	if err := sc.Currency.UpdateRates(payload.Rates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// PreviewCurrency formats a sample amount in the given currency, used by the
// admin currency screen.
func (sc *SettingsController) PreviewCurrency(c *gin.Context) {
	code := c.Query("code")
	formatted, err := sc.Currency.FormatCurrency(100, code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": code, "formatted": formatted})
}
