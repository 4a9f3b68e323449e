package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"nexustap/db"
	"nexustap/models"

	"github.com/google/uuid"
)

// Errors reported by ledger operations before any state is mutated
var (
	ErrNoEnergy        = errors.New("no energy remaining")
	ErrNothingPending  = errors.New("no pending points to claim")
	ErrClaimCooldown   = errors.New("daily claim is still on cooldown")
	ErrInvalidAmount   = errors.New("swap amount must be positive")
	ErrInvalidActivity = errors.New("invalid activity type")
	ErrTxNotConfirmed  = errors.New("claim transaction was not confirmed")
)

var validActivityTypes = map[string]bool{
	models.ActivityDaily:  true,
	models.ActivityGame:   true,
	models.ActivityBridge: true,
}

// TapResult is returned to the client after an accepted tap
type TapResult struct {
	Energy      int   `json:"energy"`
	PendingTaps int   `json:"pendingTaps"`
	NextRegenMs int64 `json:"nextRegenMs"`
}

// Ledger owns all point-earning operations over the backing store. Awards
// increment the stored total in the same read-modify-write that appends the
// audit event, so the counter and the log cannot drift apart.
type Ledger struct {
	store  db.Store
	chain  TxBroadcaster
	notify func(models.LiveEvent)
	now    func() time.Time
}

// NewLedger wires a Ledger over store. notify receives a LiveEvent after
// every successful award and may be nil.
func NewLedger(store db.Store, chain TxBroadcaster, notify func(models.LiveEvent)) *Ledger {
	if notify == nil {
		notify = func(models.LiveEvent) {}
	}
	return &Ledger{
		store:  store,
		chain:  chain,
		notify: notify,
		now:    time.Now,
	}
}

// appendAward stamps and appends a new activity event and bumps the total.
// Must be called inside a store Update.
func (l *Ledger) appendAward(rec *models.UserRecord, points int, activityType, action string, now time.Time) {
	rec.Activities = append(rec.Activities, models.Activity{
		ID:        uuid.NewString(),
		Type:      activityType,
		Action:    action,
		Points:    points,
		Timestamp: now.UnixMilli(),
	})
	rec.TotalEarned += points
}

// ApplyActivity awards points to an address with a free-form activity event.
// The record is created lazily on first write.
func (l *Ledger) ApplyActivity(ctx context.Context, address string, points int, activityType, action string) (*models.UserRecord, error) {
	if !validActivityTypes[activityType] {
		return nil, ErrInvalidActivity
	}

	now := l.now()
	rec, err := l.store.Update(ctx, address, func(rec *models.UserRecord) error {
		l.appendAward(rec, points, activityType, action, now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.notify(models.LiveEvent{
		Type:      "score_updated",
		Address:   address,
		Action:    action,
		Points:    points,
		NewTotal:  rec.TotalEarned,
		Timestamp: now,
	})
	return rec, nil
}

// GetUser returns the persisted record for address with energy recomputed
// for display, or a default record when none exists. The default is never
// persisted, so repeated reads for an unknown address are idempotent.
func (l *Ledger) GetUser(ctx context.Context, address string) (*models.UserRecord, error) {
	now := l.now()

	rec, err := l.store.Get(ctx, address)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return models.NewUserRecord(address, now), nil
	}

	out := *rec
	out.Energy = CurrentEnergy(rec.Energy, rec.LastEnergyUpdate, now)
	return &out, nil
}

// Tap spends one energy point for one pending point. The new energy value
// and timestamp are persisted immediately, never batched.
func (l *Ledger) Tap(ctx context.Context, address string) (TapResult, error) {
	now := l.now()

	rec, err := l.store.Update(ctx, address, func(rec *models.UserRecord) error {
		current := CurrentEnergy(rec.Energy, rec.LastEnergyUpdate, now)
		if current <= 0 {
			return ErrNoEnergy
		}
		rec.Energy = current - 1
		rec.LastEnergyUpdate = now
		rec.PendingTaps += TapReward
		return nil
	})
	if err != nil {
		return TapResult{}, err
	}

	return TapResult{
		Energy:      rec.Energy,
		PendingTaps: rec.PendingTaps,
		NextRegenMs: NextRegenIn(rec.Energy, rec.LastEnergyUpdate, now).Milliseconds(),
	}, nil
}

// ClaimTaps submits the pending tap points to the chain and, only once the
// transaction confirms, moves them into the total and the activity log. A
// failed or unconfirmed submission leaves pending points untouched.
func (l *Ledger) ClaimTaps(ctx context.Context, address string) (*models.UserRecord, TxReceipt, error) {
	rec, err := l.store.Get(ctx, address)
	if err != nil {
		return nil, TxReceipt{}, err
	}
	if rec == nil || rec.PendingTaps <= 0 {
		return nil, TxReceipt{}, ErrNothingPending
	}

	receipt, err := l.chain.SubmitClaim(ctx, address, rec.PendingTaps)
	if err != nil {
		return nil, TxReceipt{}, fmt.Errorf("claim submission failed: %w", err)
	}
	if !receipt.Confirmed {
		return nil, receipt, ErrTxNotConfirmed
	}

	now := l.now()
	updated, err := l.store.Update(ctx, address, func(rec *models.UserRecord) error {
		if rec.PendingTaps <= 0 {
			return ErrNothingPending
		}
		points := rec.PendingTaps
		action := fmt.Sprintf("Claimed %d points from tap game", points)
		l.appendAward(rec, points, models.ActivityGame, action, now)
		rec.PendingTaps = 0
		return nil
	})
	if err != nil {
		return nil, receipt, err
	}

	l.notify(models.LiveEvent{
		Type:      "score_updated",
		Address:   address,
		Action:    "tap game claim",
		Points:    updated.TotalEarned - rec.TotalEarned,
		NewTotal:  updated.TotalEarned,
		Timestamp: now,
	})
	return updated, receipt, nil
}

// ClaimDaily awards the daily check-in bonus, gated by a 24 hour cooldown.
// The streak counter is refreshed from the activity log after the claim.
func (l *Ledger) ClaimDaily(ctx context.Context, address string) (*models.UserRecord, error) {
	now := l.now()

	rec, err := l.store.Update(ctx, address, func(rec *models.UserRecord) error {
		if rec.LastClaimDate != nil && now.Sub(*rec.LastClaimDate) < 24*time.Hour {
			return ErrClaimCooldown
		}
		l.appendAward(rec, DailyReward, models.ActivityDaily, "Daily Check-in Claimed", now)
		claimed := now
		rec.LastClaimDate = &claimed
		rec.DailyStreak = ComputeStreak(rec.Activities)
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.notify(models.LiveEvent{
		Type:      "score_updated",
		Address:   address,
		Action:    "daily check-in",
		Points:    DailyReward,
		NewTotal:  rec.TotalEarned,
		Timestamp: now,
	})
	return rec, nil
}

// RecordBridge awards points for a confirmed bridge swap of amount tokens
func (l *Ledger) RecordBridge(ctx context.Context, address string, amount float64) (*models.UserRecord, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	points := BridgeReward(amount)
	action := fmt.Sprintf("Swapped %s ETH to Nexus", strconv.FormatFloat(amount, 'f', -1, 64))
	return l.ApplyActivity(ctx, address, points, models.ActivityBridge, action)
}
