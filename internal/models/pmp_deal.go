package models

import (
	"time"

	"github.com/google/uuid"
)

type DealType string

const (
	DealFixedPrice  DealType = "fixed_price"
	DealFirstPrice  DealType = "first_price"
	DealSecondPrice DealType = "second_price"
)

// Valid reports whether t is a known deal type.
func (t DealType) Valid() bool {
	switch t {
	case DealFixedPrice, DealFirstPrice, DealSecondPrice:
		return true
	}
	return false
}

// MaxDealMargin is the upper bound applied to PMP deal margins on every
// write. Commission percentages intentionally have no such bound.
const MaxDealMargin = 50.0

// ClampDealMargin forces a margin into [0, MaxDealMargin].
func ClampDealMargin(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > MaxDealMargin {
		return MaxDealMargin
	}
	return pct
}

// PMPDeal is a private-marketplace deal record: metadata only, no auction
// machinery behind it.
type PMPDeal struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	UserID           uuid.UUID  `db:"user_id" json:"userId"`
	DealID           string     `db:"deal_id" json:"dealId"`
	DealName         string     `db:"deal_name" json:"dealName"`
	DSPName          string     `db:"dsp_name" json:"dspName"`
	DealType         DealType   `db:"deal_type" json:"dealType"`
	FloorPrice       *float64   `db:"floor_price" json:"floorPrice,omitempty"`
	Currency         string     `db:"currency" json:"currency"`
	Priority         int        `db:"priority" json:"priority"`
	MarginPercentage float64    `db:"margin_percentage" json:"marginPercentage"`
	Status           string     `db:"status" json:"status"`
	Description      *string    `db:"description" json:"description,omitempty"`
	StartDate        *time.Time `db:"start_date" json:"startDate,omitempty"`
	EndDate          *time.Time `db:"end_date" json:"endDate,omitempty"`
	CreatedAt        time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updatedAt"`
}
