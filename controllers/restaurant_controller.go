package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pavankkodange/HMAPP/models"
	"github.com/pavankkodange/HMAPP/services"
)

type RestaurantController struct {
	Restaurant *services.RestaurantService
}

func NewRestaurantController(restaurant *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Restaurant: restaurant}
}

func (rc *RestaurantController) GetTables(c *gin.Context) {
	tables, err := rc.Restaurant.GetTables()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tables)
}

func (rc *RestaurantController) CreateTable(c *gin.Context) {
	var table models.RestaurantTable
	if err := c.ShouldBindJSON(&table); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	if err := rc.Restaurant.CreateTable(&table); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, table)
}

func (rc *RestaurantController) UpdateTableStatus(c *gin.Context) {
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

	if err := rc.Restaurant.UpdateTableStatus(id, payload.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "table not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (rc *RestaurantController) DeleteTable(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := rc.Restaurant.DeleteTable(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "table not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (rc *RestaurantController) GetOrders(c *gin.Context) {
	orders, err := rc.Restaurant.GetOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (rc *RestaurantController) CreateOrder(c *gin.Context) {
	var order models.RoomServiceOrder
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	if err := rc.Restaurant.CreateOrder(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (rc *RestaurantController) UpdateOrderStatus(c *gin.Context) {
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

	if err := rc.Restaurant.UpdateOrderStatus(id, payload.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
