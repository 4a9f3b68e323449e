package services

import (
	"testing"
	"time"

	"nexustap/models"
)

// dailyAt builds a daily claim event on the given day offset from base
func dailyAt(base time.Time, day int) models.Activity {
	return models.Activity{
		Type:      models.ActivityDaily,
		Action:    "Daily Check-in Claimed",
		Points:    DailyReward,
		Timestamp: base.AddDate(0, 0, day).UnixMilli(),
	}
}

func TestComputeStreak(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		days []int
		want int
	}{
		{"no daily claims", nil, 0},
		{"single claim", []int{1}, 1},
		{"three consecutive days", []int{1, 2, 3}, 3},
		{"gap right before the latest claim", []int{1, 2, 4}, 1},
		{"gap further back stops the walk", []int{1, 3, 4}, 2},
		{"long run with an old gap", []int{1, 4, 5, 6, 7}, 4},
		{"same day twice does not extend", []int{3, 3}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var activities []models.Activity
			for _, d := range tt.days {
				activities = append(activities, dailyAt(base, d))
			}
			if got := ComputeStreak(activities); got != tt.want {
				t.Errorf("ComputeStreak(days %v) = %d, want %d", tt.days, got, tt.want)
			}
		})
	}
}

func TestComputeStreakIgnoresOtherActivityTypes(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	activities := []models.Activity{
		dailyAt(base, 1),
		dailyAt(base, 2),
		{Type: models.ActivityGame, Points: 10, Timestamp: base.AddDate(0, 0, 3).UnixMilli()},
		{Type: models.ActivityBridge, Points: 100, Timestamp: base.AddDate(0, 0, 4).UnixMilli()},
	}
	if got := ComputeStreak(activities); got != 2 {
		t.Errorf("expected game and bridge events to be ignored, got streak %d", got)
	}
}

func TestComputeStreakUnsortedInput(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	activities := []models.Activity{
		dailyAt(base, 3),
		dailyAt(base, 1),
		dailyAt(base, 2),
	}
	if got := ComputeStreak(activities); got != 3 {
		t.Errorf("expected streak 3 regardless of input order, got %d", got)
	}
}
