package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pavankkodange/HMAPP/models"
	"github.com/pavankkodange/HMAPP/services"
	"github.com/pavankkodange/HMAPP/utils"
)

type BookingController struct {
	Bookings *services.BookingService
	Currency *services.CurrencyService
}

func NewBookingController(bookings *services.BookingService, currency *services.CurrencyService) *BookingController {
	return &BookingController{Bookings: bookings, Currency: currency}
}

func (bc *BookingController) GetBookings(c *gin.Context) {
	bookings, err := bc.Bookings.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (bc *BookingController) GetBookingDetails(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	booking, err := bc.Bookings.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (bc *BookingController) CreateBooking(c *gin.Context) {
	var booking models.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	if err := bc.Bookings.Create(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// UpdateBookingStatus drives the reservation lifecycle; check-in and
// check-out also re-status the room.
func (bc *BookingController) UpdateBookingStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if err := bc.Bookings.UpdateStatus(id, payload.Status); err != nil {
		switch {
		case errors.Is(err, services.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		case errors.Is(err, services.ErrInvalidBookingStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (bc *BookingController) AddCharge(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var charge models.RoomCharge
	if err := c.ShouldBindJSON(&charge); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	if err := bc.Bookings.AddCharge(id, &charge); err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, charge)
}

func (bc *BookingController) CheckoutBooking(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	booking, err := bc.Bookings.Checkout(id)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"booking": booking,
		"total":   booking.ChargeTotal(),
	})
}

// GetBill streams the checkout bill as a PDF.
func (bc *BookingController) GetBill(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	booking, err := bc.Bookings.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	settings, err := bc.Currency.Settings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	format := func(amount float64) string {
		formatted, fErr := bc.Currency.FormatCurrency(amount, "")
		if fErr != nil {
			return fmt.Sprintf("%.2f", amount)
		}
		return formatted
	}

	pdfBytes, err := utils.BuildBillPDF(&booking, settings, format)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate bill"})
		return
	}

	filename := fmt.Sprintf("bill-%s.pdf", booking.ReferenceCode)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func (bc *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := bc.Bookings.Delete(id); err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
