package models

import "testing"

func TestCapTypeDefaultWindowHours(t *testing.T) {
	tests := []struct {
		capType CapType
		want    *int
	}{
		{CapDaily, intPtr(24)},
		{CapWeekly, intPtr(168)},
		{CapMonthly, intPtr(720)},
		{CapLifetime, nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.capType), func(t *testing.T) {
			got := tt.capType.DefaultWindowHours()
			if tt.want == nil {
				if got != nil {
					t.Errorf("DefaultWindowHours(%s) = %d, want nil", tt.capType, *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("DefaultWindowHours(%s) = nil, want %d", tt.capType, *tt.want)
			}
			if *got != *tt.want {
				t.Errorf("DefaultWindowHours(%s) = %d, want %d", tt.capType, *got, *tt.want)
			}
		})
	}
}

func TestCapTypeValid(t *testing.T) {
	for _, ct := range []CapType{CapDaily, CapWeekly, CapMonthly, CapLifetime} {
		if !ct.Valid() {
			t.Errorf("%s should be valid", ct)
		}
	}
	if CapType("hourly").Valid() {
		t.Error("hourly should not be valid")
	}
}

func intPtr(i int) *int { return &i }
