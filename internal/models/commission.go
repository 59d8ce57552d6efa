package models

import (
	"time"

	"github.com/google/uuid"
)

type CommissionType string

const (
	CommissionAdminProfit      CommissionType = "admin_profit"
	CommissionAgencyCommission CommissionType = "agency_commission"
)

// Valid reports whether t is a known commission type.
func (t CommissionType) Valid() bool {
	return t == CommissionAdminProfit || t == CommissionAgencyCommission
}

// Commission is a percentage-based fee rule attached to a user, optionally
// targeting a second user. Mutations are admin-only. The percentage has no
// upper bound, unlike PMP deal margins.
type Commission struct {
	ID              uuid.UUID      `db:"id" json:"id"`
	UserID          uuid.UUID      `db:"user_id" json:"userId"`
	AppliesToUserID *uuid.UUID     `db:"applies_to_user_id" json:"appliesToUserId,omitempty"`
	CommissionType  CommissionType `db:"commission_type" json:"commissionType"`
	Percentage      float64        `db:"percentage" json:"percentage"`
	IsActive        bool           `db:"is_active" json:"isActive"`
	CreatedAt       time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time      `db:"updated_at" json:"updatedAt"`
}
