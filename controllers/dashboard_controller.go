package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pavankkodange/HMAPP/services"
	"github.com/pavankkodange/HMAPP/utils"
)

type DashboardController struct {
	Dashboard *services.DashboardService
}

func NewDashboardController(dashboard *services.DashboardService) *DashboardController {
	return &DashboardController{Dashboard: dashboard}
}

// GetDashboard returns the summary snapshot for ?date=YYYY-MM-DD, defaulting
// to the current date. The explicit date makes dashboards reproducible (and
// lets the front desk look at past days).
func (dc *DashboardController) GetDashboard(c *gin.Context) {
	date := c.Query("date")
	if date != "" && !utils.IsValidDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	snapshot, err := dc.Dashboard.Snapshot(date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"snapshot":      snapshot,
		"occupancyRate": services.OccupancyRate(snapshot.OccupiedRooms, snapshot.TotalRooms),
	})
}
