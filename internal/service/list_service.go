package service

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/models"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/repository"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/utils"
)

// MaxBulkEntries caps one bulk insert. Uploads beyond this are rejected
// whole rather than truncated.
const MaxBulkEntries = 10000

// ListService manages allowlist/blocklist targeting entries. One service
// covers every entry type: domain, site, app, and IP lists share the same
// schema and differ only in the type columns.
type ListService struct {
	listRepo *repository.ListEntryRepository
}

func NewListService(listRepo *repository.ListEntryRepository) *ListService {
	return &ListService{listRepo: listRepo}
}

// ListEntryInput carries one entry's fields.
type ListEntryInput struct {
	CampaignID  *uuid.UUID
	ListType    models.ListType
	EntryType   models.EntryType
	Value       string
	Description *string
	IsGlobal    bool
}

func (in ListEntryInput) validate() error {
	if !in.ListType.Valid() {
		return utils.ErrInvalidListType
	}
	if !in.EntryType.Valid() {
		return utils.ErrInvalidEntryType
	}
	if strings.TrimSpace(in.Value) == "" {
		return utils.ErrInvalidEntryType
	}
	return nil
}

// Create validates and inserts one entry, active by default.
func (s *ListService) Create(scope models.Scope, in ListEntryInput) (*models.ListEntry, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	e := &models.ListEntry{
		UserID:      scope.UserID,
		CampaignID:  in.CampaignID,
		ListType:    in.ListType,
		EntryType:   in.EntryType,
		Value:       strings.TrimSpace(in.Value),
		Description: in.Description,
		IsGlobal:    in.IsGlobal,
		IsActive:    true,
	}
	if err := s.listRepo.Create(e); err != nil {
		log.Error().Err(err).Str("user_id", scope.UserID.String()).Msg("Failed to create list entry")
		return nil, err
	}
	return e, nil
}

// BulkCreate inserts many values sharing one list/entry type in a single
// transaction, mirroring the processed-file upload flow: parsing happens
// upstream, this takes the extracted values and returns how many rows were
// written. Blank values are skipped, not counted.
func (s *ListService) BulkCreate(scope models.Scope, in ListEntryInput, values []string) (int, error) {
	// A bulk payload carries no single value; only the type fields are checked.
	if !in.ListType.Valid() {
		return 0, utils.ErrInvalidListType
	}
	if !in.EntryType.Valid() {
		return 0, utils.ErrInvalidEntryType
	}
	if len(values) > MaxBulkEntries {
		return 0, utils.ErrTooManyEntries
	}

	entries := make([]*models.ListEntry, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		entries = append(entries, &models.ListEntry{
			UserID:      scope.UserID,
			CampaignID:  in.CampaignID,
			ListType:    in.ListType,
			EntryType:   in.EntryType,
			Value:       v,
			Description: in.Description,
			IsGlobal:    in.IsGlobal,
			IsActive:    true,
		})
	}
	if len(entries) == 0 {
		return 0, nil
	}

	count, err := s.listRepo.BulkCreate(entries)
	if err != nil {
		log.Error().Err(err).Str("user_id", scope.UserID.String()).Msg("Bulk list insert failed")
		return 0, err
	}
	log.Info().Int("count", count).Str("list_type", string(in.ListType)).Msg("Bulk list insert complete")
	return count, nil
}

// List returns entries visible to the caller, optionally filtered.
func (s *ListService) List(scope models.Scope, f repository.ListEntryFilter) ([]*models.ListEntry, error) {
	return s.listRepo.List(scope, f)
}

// Update rewrites one entry the caller owns.
func (s *ListService) Update(scope models.Scope, id uuid.UUID, in ListEntryInput, active bool) (*models.ListEntry, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	e := &models.ListEntry{
		ID:          id,
		CampaignID:  in.CampaignID,
		ListType:    in.ListType,
		EntryType:   in.EntryType,
		Value:       strings.TrimSpace(in.Value),
		Description: in.Description,
		IsGlobal:    in.IsGlobal,
		IsActive:    active,
	}
	if err := s.listRepo.Update(scope, e); err != nil {
		return nil, err
	}
	return e, nil
}

// SetActive flips one entry the caller owns.
func (s *ListService) SetActive(scope models.Scope, id uuid.UUID, active bool) error {
	return s.listRepo.SetActive(scope, id, active)
}

// Delete removes one entry the caller owns.
func (s *ListService) Delete(scope models.Scope, id uuid.UUID) error {
	return s.listRepo.Delete(scope, id)
}
