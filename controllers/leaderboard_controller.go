package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetLeaderboard returns the top 100 accounts by total points
func GetLeaderboard(c *gin.Context) {
	entries, err := ledger.Leaderboard(c.Request.Context())
	if err != nil {
		log.Printf("Failed to build leaderboard: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load leaderboard"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GetCompactLeaderboard returns the in-app top ten, with the viewing
// account appended when it sits outside the top ten
func GetCompactLeaderboard(c *gin.Context) {
	viewer := c.Query("viewer")

	entries, err := ledger.CompactLeaderboard(c.Request.Context(), viewer)
	if err != nil {
		log.Printf("Failed to build compact leaderboard: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load leaderboard"})
		return
	}
	c.JSON(http.StatusOK, entries)
}
