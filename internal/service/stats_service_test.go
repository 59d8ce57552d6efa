package service

import (
	"testing"

	"github.com/google/uuid"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/models"
)

func TestBuildBudgetStatusPacing(t *testing.T) {
	tests := []struct {
		name       string
		budget     float64
		totalCents int64
		want       models.PacingStatus
	}{
		{"severely overspent", 100, 12000, models.PacingOver},
		{"just over budget", 100, 10500, models.PacingAtRisk},
		{"nearing budget", 100, 9500, models.PacingAtRisk},
		{"healthy middle", 100, 8000, models.PacingOnTrack},
		{"barely started", 100, 1000, models.PacingUnder},
		{"zero budget", 0, 5000, models.PacingUnder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &models.Campaign{ID: uuid.New(), Name: "c", Status: models.CampaignActive, Budget: tt.budget}
			got := buildBudgetStatus(c, tt.totalCents, 0)
			if got.Pacing != tt.want {
				t.Errorf("pacing = %s, want %s (utilization %.1f)", got.Pacing, tt.want, got.BudgetUtilization)
			}
		})
	}
}

func TestBuildBudgetStatusOverspend(t *testing.T) {
	daily := 10.0
	c := &models.Campaign{ID: uuid.New(), Name: "c", Status: models.CampaignActive, Budget: 1000, DailyBudget: &daily}

	// Total well under budget but today's spend blew the daily cap.
	st := buildBudgetStatus(c, 20000, 1500)
	if !st.IsOverspending {
		t.Error("daily overspend not flagged")
	}
	if st.DailyUtilization == nil || *st.DailyUtilization != 150 {
		t.Errorf("daily utilization = %v, want 150", st.DailyUtilization)
	}
	if st.Pacing != models.PacingUnder {
		t.Errorf("pacing = %s, want %s", st.Pacing, models.PacingUnder)
	}

	// Total over the lifetime budget.
	st = buildBudgetStatus(c, 110000, 0)
	if !st.IsOverspending {
		t.Error("lifetime overspend not flagged")
	}
	if st.Pacing != models.PacingAtRisk {
		t.Errorf("pacing = %s, want %s", st.Pacing, models.PacingAtRisk)
	}
}

func TestBuildBudgetStatusZeroBudgetNoDivision(t *testing.T) {
	c := &models.Campaign{ID: uuid.New(), Name: "c", Status: models.CampaignDraft, Budget: 0}
	st := buildBudgetStatus(c, 0, 0)
	if st.BudgetUtilization != 0 {
		t.Errorf("utilization = %v, want 0", st.BudgetUtilization)
	}
	if st.DailyUtilization != nil {
		t.Errorf("daily utilization = %v, want nil", *st.DailyUtilization)
	}
}
