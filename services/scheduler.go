package services

import (
	"context"
	"log"
	"time"

	"nexustap/models"

	"github.com/go-co-op/gocron/v2"
)

// StartLeaderboardBroadcast rebroadcasts the compact leaderboard to live
// clients on a fixed interval. Display-only: authoritative rankings are
// always recomputed on demand by the API.
func (l *Ledger) StartLeaderboardBroadcast(interval time.Duration) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		log.Printf("[Scheduler] failed to start: %v", err)
		return
	}
	sched.Start()

	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			entries, err := l.CompactLeaderboard(context.Background(), "")
			if err != nil {
				log.Printf("[Scheduler] leaderboard recompute failed: %v", err)
				return
			}
			l.notify(models.LiveEvent{
				Type:        "leaderboard",
				Leaderboard: entries,
				Timestamp:   l.now(),
			})
		}),
	)
	if err != nil {
		log.Printf("[Scheduler] failed to schedule leaderboard broadcast: %v", err)
	}
}
