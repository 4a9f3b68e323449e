package services

import "testing"

func TestBridgeReward(t *testing.T) {
	tests := []struct {
		amount float64
		want   int
	}{
		{0, 0},
		{-1, 0},
		{0.0001, 100},
		{0.5, 100},
		{1, 100},
		{1.5, 150},
		{2, 200},
		{2.999, 299},
		{4.99, 499},
		{5, 500},   // ceiling reached
		{100, 500}, // stays at ceiling
		{1e18, 500},
	}

	for _, tt := range tests {
		if got := BridgeReward(tt.amount); got != tt.want {
			t.Errorf("BridgeReward(%v) = %d, want %d", tt.amount, got, tt.want)
		}
	}
}
