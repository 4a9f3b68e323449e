package services

import (
	"testing"
	"time"
)

func TestCurrentEnergyRegeneration(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		stored  int
		elapsed time.Duration
		want    int
	}{
		{"no elapsed time", 50, 0, 50},
		{"under one interval", 50, 59 * time.Second, 50},
		{"exactly one interval", 50, time.Minute, 51},
		{"one and a half intervals", 50, 90 * time.Second, 51},
		{"many intervals", 50, 10 * time.Minute, 60},
		{"caps at max", 50, 2 * time.Hour, 100},
		{"already full stays full", 100, 5 * time.Minute, 100},
		{"from empty", 0, 3 * time.Minute, 3},
		{"long offline catch-up", 0, 200 * time.Minute, 100},
		{"negative elapsed clamps", 70, -time.Hour, 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CurrentEnergy(tt.stored, now.Add(-tt.elapsed), now)
			if got != tt.want {
				t.Errorf("CurrentEnergy(%d, -%v) = %d, want %d", tt.stored, tt.elapsed, got, tt.want)
			}
		})
	}
}

func TestCurrentEnergyMonotonic(t *testing.T) {
	now := time.Now()
	prev := -1
	for elapsed := time.Duration(0); elapsed <= 30*time.Minute; elapsed += 15 * time.Second {
		got := CurrentEnergy(42, now, now.Add(elapsed))
		if got < prev {
			t.Fatalf("energy decreased from %d to %d at elapsed %v", prev, got, elapsed)
		}
		if got < 0 || got > MaxEnergy {
			t.Fatalf("energy %d out of range at elapsed %v", got, elapsed)
		}
		prev = got
	}
}

func TestCurrentEnergyClampsStored(t *testing.T) {
	now := time.Now()
	if got := CurrentEnergy(-5, now, now); got != 0 {
		t.Errorf("negative stored energy should clamp to 0, got %d", got)
	}
	if got := CurrentEnergy(150, now, now); got != MaxEnergy {
		t.Errorf("stored energy above cap should clamp to %d, got %d", MaxEnergy, got)
	}
}

func TestNextRegenIn(t *testing.T) {
	now := time.Now()

	if got := NextRegenIn(100, now, now); got != 0 {
		t.Errorf("full energy should have no countdown, got %v", got)
	}
	if got := NextRegenIn(50, now, now); got != RegenInterval {
		t.Errorf("fresh snapshot should count a full interval, got %v", got)
	}
	if got := NextRegenIn(50, now.Add(-45*time.Second), now); got != 15*time.Second {
		t.Errorf("expected 15s to next tick, got %v", got)
	}
	if got := NextRegenIn(50, now.Add(-90*time.Second), now); got != 30*time.Second {
		t.Errorf("expected 30s to next tick, got %v", got)
	}
}
