package models

import (
	"time"

	"github.com/google/uuid"
)

// ImpressionRecord is an aggregated impression/spend row per viewer and
// campaign, fed by the tracking ingest endpoint.
type ImpressionRecord struct {
	ID              uuid.UUID `db:"id" json:"id"`
	CampaignID      uuid.UUID `db:"campaign_id" json:"campaignId"`
	UserIdentifier  string    `db:"user_identifier" json:"userIdentifier"`
	ImpressionCount int       `db:"impression_count" json:"impressionCount"`
	SpendCents      int64     `db:"spend_cents" json:"spendCents"`
	FirstImpression time.Time `db:"first_impression" json:"firstImpression"`
	LastImpression  time.Time `db:"last_impression" json:"lastImpression"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
}

type PacingStatus string

const (
	PacingOnTrack PacingStatus = "on_track"
	PacingUnder   PacingStatus = "under_pacing"
	PacingOver    PacingStatus = "over_pacing"
	PacingAtRisk  PacingStatus = "at_risk"
)

// BudgetStatus is the computed spend picture of one campaign.
type BudgetStatus struct {
	CampaignID        uuid.UUID    `json:"campaignId"`
	Name              string       `json:"name"`
	Status            string       `json:"status"`
	Budget            float64      `json:"budget"`
	DailyBudget       *float64     `json:"dailyBudget,omitempty"`
	TotalSpend        float64      `json:"totalSpend"`
	SpendToday        float64      `json:"spendToday"`
	BudgetUtilization float64      `json:"budgetUtilization"`
	DailyUtilization  *float64     `json:"dailyUtilization,omitempty"`
	IsOverspending    bool         `json:"isOverspending"`
	Pacing            PacingStatus `json:"pacing"`
}
