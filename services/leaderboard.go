package services

import (
	"context"
	"sort"

	"nexustap/utils"
)

// LeaderboardEntry is one row of the public leaderboard
type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	Address     string `json:"address"`
	Points      int    `json:"points"`
	DailyStreak int    `json:"dailyStreak"`
}

// CompactEntry is one row of the in-app compact leaderboard, with the
// address shortened for display
type CompactEntry struct {
	Rank        int    `json:"rank"`
	Address     string `json:"address"`
	Points      int    `json:"points"`
	CurrentUser bool   `json:"currentUser"`
}

const (
	leaderboardLimit = 100
	compactLimit     = 10
)

// ranked recomputes the full ordering from scratch: every record sorted by
// total points descending. Ties keep the address-sorted base order so ranks
// are stable across calls.
func (l *Ledger) ranked(ctx context.Context) ([]LeaderboardEntry, error) {
	users, err := l.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	addresses := make([]string, 0, len(users))
	for address := range users {
		addresses = append(addresses, address)
	}
	sort.Strings(addresses)

	entries := make([]LeaderboardEntry, 0, len(addresses))
	for _, address := range addresses {
		rec := users[address]
		entries = append(entries, LeaderboardEntry{
			Address:     rec.Address,
			Points:      rec.TotalEarned,
			DailyStreak: rec.DailyStreak,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Points > entries[j].Points
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

// Leaderboard returns the top accounts by total points, at most
// leaderboardLimit rows, ranks contiguous from 1
func (l *Ledger) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	entries, err := l.ranked(ctx)
	if err != nil {
		return nil, err
	}
	if len(entries) > leaderboardLimit {
		entries = entries[:leaderboardLimit]
	}
	return entries, nil
}

// CompactLeaderboard returns the top ten accounts with nonzero points. When
// viewer falls outside the top ten and has points, it is appended with its
// true rank so the caller always sees their own position.
func (l *Ledger) CompactLeaderboard(ctx context.Context, viewer string) ([]CompactEntry, error) {
	ranked, err := l.ranked(ctx)
	if err != nil {
		return nil, err
	}

	var entries []CompactEntry
	viewerSeen := false
	for _, e := range ranked {
		if e.Points <= 0 {
			continue
		}
		if len(entries) >= compactLimit {
			break
		}
		isViewer := viewer != "" && e.Address == viewer
		if isViewer {
			viewerSeen = true
		}
		entries = append(entries, CompactEntry{
			Rank:        e.Rank,
			Address:     utils.ShortenAddress(e.Address),
			Points:      e.Points,
			CurrentUser: isViewer,
		})
	}

	if viewer != "" && !viewerSeen {
		for _, e := range ranked {
			if e.Address == viewer && e.Points > 0 {
				entries = append(entries, CompactEntry{
					Rank:        e.Rank,
					Address:     utils.ShortenAddress(e.Address),
					Points:      e.Points,
					CurrentUser: true,
				})
				break
			}
		}
	}
	return entries, nil
}
