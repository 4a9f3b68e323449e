package controllers

import (
	"errors"
	"log"
	"net/http"

	"nexustap/services"

	"github.com/gin-gonic/gin"
)

// UpdatePointsRequest is the body of POST /api/user/:address
type UpdatePointsRequest struct {
	Points       int    `json:"points"`
	ActivityType string `json:"activityType"`
	Action       string `json:"action"`
}

// GetUser returns the account record for an address. Unknown addresses get
// a default record without anything being persisted.
func GetUser(c *gin.Context) {
	address := c.Param("address")

	rec, err := ledger.GetUser(c.Request.Context(), address)
	if err != nil {
		log.Printf("Failed to load user %s: %v", address, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user data"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// UpdateUserPoints applies a point-earning activity to an address and
// returns the updated record
func UpdateUserPoints(c *gin.Context) {
	address := c.Param("address")

	var req UpdatePointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if req.Points <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid points value"})
		return
	}

	rec, err := ledger.ApplyActivity(c.Request.Context(), address, req.Points, req.ActivityType, req.Action)
	if err != nil {
		if errors.Is(err, services.ErrInvalidActivity) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity type"})
			return
		}
		log.Printf("Failed to update points for %s: %v", address, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user data"})
		return
	}
	c.JSON(http.StatusOK, rec)
}
