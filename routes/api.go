package routes

import (
	"nexustap/controllers"

	"github.com/gin-gonic/gin"
)

// GetUserRouteHandler fetches the account record for an address
func GetUserRouteHandler(c *gin.Context) {
	controllers.GetUser(c)
}

// UpdateUserPointsRouteHandler applies a point-earning activity
func UpdateUserPointsRouteHandler(c *gin.Context) {
	controllers.UpdateUserPoints(c)
}

// TapRouteHandler records a single tap
func TapRouteHandler(c *gin.Context) {
	controllers.Tap(c)
}

// ClaimTapsRouteHandler claims pending tap points on-chain
func ClaimTapsRouteHandler(c *gin.Context) {
	controllers.ClaimTaps(c)
}

// ClaimDailyRouteHandler claims the daily check-in bonus
func ClaimDailyRouteHandler(c *gin.Context) {
	controllers.ClaimDaily(c)
}

// BridgeRouteHandler records a bridge swap reward
func BridgeRouteHandler(c *gin.Context) {
	controllers.Bridge(c)
}

// GetLeaderboardRouteHandler fetches the top 100 leaderboard
func GetLeaderboardRouteHandler(c *gin.Context) {
	controllers.GetLeaderboard(c)
}

// GetCompactLeaderboardRouteHandler fetches the in-app compact leaderboard
func GetCompactLeaderboardRouteHandler(c *gin.Context) {
	controllers.GetCompactLeaderboard(c)
}
