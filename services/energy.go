package services

import "time"

// Energy system constants
const (
	MaxEnergy     = 100
	RegenInterval = time.Minute // 1 energy point per minute
)

// CurrentEnergy reconstructs the energy available right now from the last
// persisted snapshot. Regeneration derives purely from elapsed wall-clock
// time so an account untouched for k minutes regains k points (capped) on
// the next read, with no running timer involved.
func CurrentEnergy(stored int, lastUpdate, now time.Time) int {
	if stored < 0 {
		stored = 0
	}
	if stored > MaxEnergy {
		stored = MaxEnergy
	}

	elapsed := now.Sub(lastUpdate)
	if elapsed < 0 {
		elapsed = 0
	}

	regen := int(elapsed / RegenInterval)
	if regen >= MaxEnergy-stored {
		return MaxEnergy
	}
	return stored + regen
}

// NextRegenIn returns the time remaining until the next regeneration tick,
// or 0 when energy is already at the cap. Used for countdown display only.
func NextRegenIn(stored int, lastUpdate, now time.Time) time.Duration {
	if CurrentEnergy(stored, lastUpdate, now) >= MaxEnergy {
		return 0
	}

	elapsed := now.Sub(lastUpdate)
	if elapsed < 0 {
		elapsed = 0
	}
	return RegenInterval - (elapsed % RegenInterval)
}
