package models

import "time"

// LiveEvent is pushed to connected WebSocket clients when points are awarded
// or the leaderboard is rebroadcast
type LiveEvent struct {
	Type        string      `json:"type"` // "score_updated", "leaderboard"
	Address     string      `json:"address,omitempty"`
	Action      string      `json:"action,omitempty"`
	Points      int         `json:"points,omitempty"`
	NewTotal    int         `json:"newTotal,omitempty"`
	Leaderboard interface{} `json:"leaderboard,omitempty"`
	Timestamp   time.Time   `json:"timestamp"`
}
