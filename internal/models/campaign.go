package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignActive    CampaignStatus = "active"
	CampaignPaused    CampaignStatus = "paused"
	CampaignCompleted CampaignStatus = "completed"
)

// Valid reports whether s is a known campaign status.
func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignDraft, CampaignActive, CampaignPaused, CampaignCompleted:
		return true
	}
	return false
}

// Campaign is a DSP campaign owned by a single user, optionally managed on
// behalf of the owner by an agency. Status transitions are user-triggered and
// limited to active <-> paused; there is no automatic lifecycle.
type Campaign struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	UserID          uuid.UUID       `db:"user_id" json:"userId"`
	AgencyID        *uuid.UUID      `db:"agency_id" json:"agencyId,omitempty"`
	Name            string          `db:"name" json:"name"`
	Description     *string         `db:"description" json:"description,omitempty"`
	Status          CampaignStatus  `db:"status" json:"status"`
	Budget          float64         `db:"budget" json:"budget"`
	DailyBudget     *float64        `db:"daily_budget" json:"dailyBudget,omitempty"`
	StartDate       time.Time       `db:"start_date" json:"startDate"`
	EndDate         *time.Time      `db:"end_date" json:"endDate,omitempty"`
	TargetingConfig json.RawMessage `db:"targeting_config" json:"targetingConfig,omitempty"`
	CreatedAt       time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time       `db:"updated_at" json:"updatedAt"`
}

// CanTransition reports whether a user-triggered status change is allowed.
// Only the active/paused toggle is permitted after creation.
func (c *Campaign) CanTransition(to CampaignStatus) bool {
	switch {
	case c.Status == CampaignActive && to == CampaignPaused:
		return true
	case c.Status == CampaignPaused && to == CampaignActive:
		return true
	}
	return false
}
