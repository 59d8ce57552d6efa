package models

import (
	"time"

	"github.com/google/uuid"
)

type CapType string

const (
	CapDaily    CapType = "daily"
	CapWeekly   CapType = "weekly"
	CapMonthly  CapType = "monthly"
	CapLifetime CapType = "lifetime"
)

// Valid reports whether t is a known cap type.
func (t CapType) Valid() bool {
	switch t {
	case CapDaily, CapWeekly, CapMonthly, CapLifetime:
		return true
	}
	return false
}

// DefaultWindowHours returns the time window implied by the cap type, or nil
// for lifetime caps, which have no window.
func (t CapType) DefaultWindowHours() *int {
	var h int
	switch t {
	case CapDaily:
		h = 24
	case CapWeekly:
		h = 168
	case CapMonthly:
		h = 720
	default:
		return nil
	}
	return &h
}

// FrequencyCap limits how often a campaign may show to one viewer. The time
// window is a pure function of the cap type unless explicitly overridden.
type FrequencyCap struct {
	ID              uuid.UUID `db:"id" json:"id"`
	UserID          uuid.UUID `db:"user_id" json:"userId"`
	CampaignID      uuid.UUID `db:"campaign_id" json:"campaignId"`
	CapType         CapType   `db:"cap_type" json:"capType"`
	MaxImpressions  int       `db:"max_impressions" json:"maxImpressions"`
	TimeWindowHours *int      `db:"time_window_hours" json:"timeWindowHours,omitempty"`
	IsActive        bool      `db:"is_active" json:"isActive"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `db:"updated_at" json:"updatedAt"`
}
