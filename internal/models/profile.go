package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleAgency     Role = "agency"
	RoleAdvertiser Role = "advertiser"
)

// Valid reports whether r is one of the closed role set.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleAgency, RoleAdvertiser:
		return true
	}
	return false
}

// Profile carries the business identity of a user: its role, which drives
// every access decision, and the company contact details shown in the console.
// Exactly one profile exists per user.
type Profile struct {
	ID           uuid.UUID `db:"id" json:"id"`
	UserID       uuid.UUID `db:"user_id" json:"userId"`
	Role         Role      `db:"role" json:"role"`
	CompanyName  string    `db:"company_name" json:"companyName"`
	ContactEmail *string   `db:"contact_email" json:"contactEmail,omitempty"`
	Phone        *string   `db:"phone" json:"phone,omitempty"`
	Address      *string   `db:"address" json:"address,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// Scope identifies the principal a query runs as. Repositories use it to
// filter rows: admin reads everything, any other role only its own rows.
type Scope struct {
	UserID uuid.UUID
	Email  string
	Role   Role
}

// IsAdmin reports whether the scope bypasses ownership filters.
func (s Scope) IsAdmin() bool {
	return s.Role == RoleAdmin
}
