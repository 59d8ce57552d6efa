package models

import (
	"time"

	"github.com/google/uuid"
)

type ListType string

const (
	ListAllow ListType = "allowlist"
	ListBlock ListType = "blocklist"
)

type EntryType string

const (
	EntryDomain EntryType = "domain"
	EntrySite   EntryType = "site"
	EntryApp    EntryType = "app"
	EntryIP     EntryType = "ip"
)

// Valid reports whether t is a known list type.
func (t ListType) Valid() bool {
	return t == ListAllow || t == ListBlock
}

// Valid reports whether t is a known entry type.
func (t EntryType) Valid() bool {
	switch t {
	case EntryDomain, EntrySite, EntryApp, EntryIP:
		return true
	}
	return false
}

// ListEntry is one row of a domain/site/app/IP targeting list. A global entry
// applies across all campaigns owned by its creator; a non-global entry only
// to the linked campaign.
type ListEntry struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	UserID      uuid.UUID  `db:"user_id" json:"userId"`
	CampaignID  *uuid.UUID `db:"campaign_id" json:"campaignId,omitempty"`
	ListType    ListType   `db:"list_type" json:"listType"`
	EntryType   EntryType  `db:"entry_type" json:"entryType"`
	Value       string     `db:"value" json:"value"`
	Description *string    `db:"description" json:"description,omitempty"`
	IsGlobal    bool       `db:"is_global" json:"isGlobal"`
	IsActive    bool       `db:"is_active" json:"isActive"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updatedAt"`
}
