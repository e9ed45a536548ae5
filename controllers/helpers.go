package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// paramID parses the :id route parameter. Writes the 400 response itself so
// handlers can just return on !ok.
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
