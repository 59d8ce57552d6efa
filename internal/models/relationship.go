package models

import (
	"time"

	"github.com/google/uuid"
)

// AgencyAdvertiser links an agency to an advertiser it manages. Only an
// active link lets the agency reach the advertiser's campaigns.
type AgencyAdvertiser struct {
	ID           uuid.UUID `db:"id" json:"id"`
	AgencyID     uuid.UUID `db:"agency_id" json:"agencyId"`
	AdvertiserID uuid.UUID `db:"advertiser_id" json:"advertiserId"`
	IsActive     bool      `db:"is_active" json:"isActive"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// ManagedAdvertiser is an advertiser profile joined with its relationship
// row, as listed on the agency dashboard.
type ManagedAdvertiser struct {
	RelationshipID uuid.UUID `json:"relationshipId"`
	IsActive       bool      `json:"isActive"`
	Profile        Profile   `json:"profile"`
}
