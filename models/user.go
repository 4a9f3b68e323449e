package models

import "time"

// Activity types recorded in the ledger
const (
	ActivityDaily  = "daily"
	ActivityGame   = "game"
	ActivityBridge = "bridge"
)

// Activity is a single immutable point-earning event in a user's history
type Activity struct {
	ID        string `bson:"id" json:"id"`
	Type      string `bson:"type" json:"type"` // "daily", "game", "bridge"
	Action    string `bson:"action" json:"action"`
	Points    int    `bson:"points" json:"points"`
	Timestamp int64  `bson:"timestamp" json:"timestamp"` // milliseconds since epoch
}

// UserRecord is the server-side ledger entry for one wallet address.
// TotalEarned is the authoritative total; the activity list is an audit
// trail and is only walked to refresh the daily streak.
type UserRecord struct {
	Address          string     `bson:"address" json:"address"`
	TotalEarned      int        `bson:"totalEarned" json:"totalEarned"`
	DailyStreak      int        `bson:"dailyStreak" json:"dailyStreak"`
	LastClaimDate    *time.Time `bson:"lastClaimDate" json:"lastClaimDate"`
	Energy           int        `bson:"energy" json:"energy"`
	LastEnergyUpdate time.Time  `bson:"lastEnergyUpdate" json:"lastEnergyUpdate"`
	PendingTaps      int        `bson:"pendingTaps" json:"pendingTaps"`
	Activities       []Activity `bson:"activities" json:"activities"`
}

// NewUserRecord returns the default record for an address with no persisted
// state yet: full energy, nothing earned. Callers decide whether to persist it.
func NewUserRecord(address string, now time.Time) *UserRecord {
	return &UserRecord{
		Address:          address,
		TotalEarned:      0,
		DailyStreak:      0,
		LastClaimDate:    nil,
		Energy:           100,
		LastEnergyUpdate: now,
		PendingTaps:      0,
		Activities:       []Activity{},
	}
}
