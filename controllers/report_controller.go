package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pavankkodange/HMAPP/services"
	"github.com/pavankkodange/HMAPP/utils"
)

type ReportController struct {
	Bookings  *services.BookingService
	Dashboard *services.DashboardService
}

func NewReportController(bookings *services.BookingService, dashboard *services.DashboardService) *ReportController {
	return &ReportController{Bookings: bookings, Dashboard: dashboard}
}

// ExportBookingsXLSX streams all bookings plus a revenue summary sheet for
// ?date=YYYY-MM-DD (default today).
func (rc *ReportController) ExportBookingsXLSX(c *gin.Context) {
	date := c.Query("date")
	if date != "" && !utils.IsValidDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	bookings, err := rc.Bookings.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	snapshot, err := rc.Dashboard.Snapshot(date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	data, err := utils.BuildBookingsXLSX(bookings, snapshot)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build export"})
		return
	}

	filename := fmt.Sprintf("bookings-%s.xlsx", snapshot.Date)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
