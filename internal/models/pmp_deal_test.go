package models

import "testing"

func TestClampDealMargin(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"negative clamps to zero", -10, 0},
		{"zero stays", 0, 0},
		{"within range stays", 25.5, 25.5},
		{"upper bound stays", 50, 50},
		{"above bound clamps", 75, 50},
		{"far above clamps", 1000, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampDealMargin(tt.input); got != tt.want {
				t.Errorf("ClampDealMargin(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDealTypeValid(t *testing.T) {
	for _, dt := range []DealType{DealFixedPrice, DealFirstPrice, DealSecondPrice} {
		if !dt.Valid() {
			t.Errorf("%s should be valid", dt)
		}
	}
	if DealType("auction").Valid() {
		t.Error("auction should not be valid")
	}
}
