package models

import "testing"

func TestCampaignCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from CampaignStatus
		to   CampaignStatus
		want bool
	}{
		{"active to paused", CampaignActive, CampaignPaused, true},
		{"paused to active", CampaignPaused, CampaignActive, true},
		{"draft to active", CampaignDraft, CampaignActive, false},
		{"draft to paused", CampaignDraft, CampaignPaused, false},
		{"active to completed", CampaignActive, CampaignCompleted, false},
		{"completed to active", CampaignCompleted, CampaignActive, false},
		{"paused to completed", CampaignPaused, CampaignCompleted, false},
		{"active to active", CampaignActive, CampaignActive, false},
		{"active to draft", CampaignActive, CampaignDraft, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Campaign{Status: tt.from}
			if got := c.CanTransition(tt.to); got != tt.want {
				t.Errorf("CanTransition(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestCampaignStatusValid(t *testing.T) {
	for _, s := range []CampaignStatus{CampaignDraft, CampaignActive, CampaignPaused, CampaignCompleted} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if CampaignStatus("archived").Valid() {
		t.Error("archived should not be valid")
	}
}
