package services

import "math"

// Reward constants
const (
	TapReward   = 1  // points per accepted tap
	DailyReward = 50 // points per daily check-in

	bridgeBaseReward = 100
	bridgeMaxReward  = 500
)

// BridgeReward computes the points awarded for a bridge swap of the given
// amount. Up to 1 token earns the base reward; every whole extra hundredth
// above that adds a point, capped at the maximum.
//
//	amount <= 0      -> 0
//	0 < amount <= 1  -> 100
//	amount > 1       -> min(500, 100 + floor((amount-1) * 100))
func BridgeReward(amount float64) int {
	if amount <= 0 || math.IsNaN(amount) {
		return 0
	}
	if amount <= 1 {
		return bridgeBaseReward
	}
	// The ceiling is reached at 5 tokens; short-circuit above it so the
	// float-to-int conversion below stays in range for any finite input.
	if amount >= 5 {
		return bridgeMaxReward
	}

	return bridgeBaseReward + int(math.Floor((amount-1)*100))
}
