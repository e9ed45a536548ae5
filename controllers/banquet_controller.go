package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pavankkodange/HMAPP/models"
	"github.com/pavankkodange/HMAPP/services"
)

type BanquetController struct {
	Banquets *services.BanquetService
}

func NewBanquetController(banquets *services.BanquetService) *BanquetController {
	return &BanquetController{Banquets: banquets}
}

func (bc *BanquetController) GetHalls(c *gin.Context) {
	halls, err := bc.Banquets.GetHalls()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, halls)
}

func (bc *BanquetController) CreateHall(c *gin.Context) {
	var hall models.BanquetHall
	if err := c.ShouldBindJSON(&hall); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	if err := bc.Banquets.CreateHall(&hall); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, hall)
}

func (bc *BanquetController) UpdateHall(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var updateData map[string]interface{}
	if err := c.ShouldBindJSON(&updateData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if err := bc.Banquets.UpdateHall(id, updateData); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (bc *BanquetController) DeleteHall(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := bc.Banquets.DeleteHall(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "hall not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (bc *BanquetController) GetBookings(c *gin.Context) {
	bookings, err := bc.Banquets.GetBookings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (bc *BanquetController) CreateBooking(c *gin.Context) {
	var booking models.BanquetBooking
	if err := c.ShouldBindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	if err := bc.Banquets.CreateBooking(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, booking)
}

func (bc *BanquetController) UpdateBookingStatus(c *gin.Context) {
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

	if err := bc.Banquets.UpdateBookingStatus(id, payload.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "banquet booking not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
