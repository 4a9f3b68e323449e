package services

import (
	"sort"

	"nexustap/models"
)

const dayMillis = 24 * 60 * 60 * 1000

// ComputeStreak derives the current daily check-in streak from the activity
// log. Daily claims are walked from the most recent backwards; the streak
// grows while consecutive claims are exactly one calendar day apart and
// stops at the first gap. No daily claims means no streak.
func ComputeStreak(activities []models.Activity) int {
	var claims []models.Activity
	for _, a := range activities {
		if a.Type == models.ActivityDaily {
			claims = append(claims, a)
		}
	}
	if len(claims) == 0 {
		return 0
	}

	sort.Slice(claims, func(i, j int) bool {
		return claims[i].Timestamp > claims[j].Timestamp
	})

	streak := 1
	current := claims[0].Timestamp
	for i := 1; i < len(claims); i++ {
		dayDiff := (current - claims[i].Timestamp) / dayMillis
		if dayDiff != 1 {
			break
		}
		streak++
		current = claims[i].Timestamp
	}
	return streak
}
