package service

import (
	"github.com/google/uuid"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/models"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/repository"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/utils"
)

// CapService manages per-campaign frequency caps. The time window is derived
// from the cap type when not explicitly overridden: daily 24h, weekly 168h,
// monthly 720h, lifetime unbounded.
type CapService struct {
	capRepo      *repository.FrequencyCapRepository
	campaignRepo *repository.CampaignRepository
}

func NewCapService(capRepo *repository.FrequencyCapRepository, campaignRepo *repository.CampaignRepository) *CapService {
	return &CapService{capRepo: capRepo, campaignRepo: campaignRepo}
}

// CapInput carries the user-editable cap fields. A nil TimeWindowHours means
// "derive from the cap type".
type CapInput struct {
	CampaignID      uuid.UUID
	CapType         models.CapType
	MaxImpressions  int
	TimeWindowHours *int
}

func resolveWindow(t models.CapType, override *int) *int {
	if override != nil {
		return override
	}
	return t.DefaultWindowHours()
}

// Create validates and inserts a cap for a campaign the caller owns.
func (s *CapService) Create(scope models.Scope, in CapInput) (*models.FrequencyCap, error) {
	if !in.CapType.Valid() {
		return nil, utils.ErrInvalidCapType
	}
	if in.MaxImpressions <= 0 {
		return nil, utils.ErrInvalidCapType
	}
	// The campaign lookup runs under the caller's scope, so a cap can only
	// ever attach to a campaign the caller may see.
	if _, err := s.campaignRepo.GetByID(scope, in.CampaignID); err != nil {
		return nil, utils.ErrNotFound
	}

	cap := &models.FrequencyCap{
		UserID:          scope.UserID,
		CampaignID:      in.CampaignID,
		CapType:         in.CapType,
		MaxImpressions:  in.MaxImpressions,
		TimeWindowHours: resolveWindow(in.CapType, in.TimeWindowHours),
		IsActive:        true,
	}
	if err := s.capRepo.Create(cap); err != nil {
		return nil, err
	}
	return cap, nil
}

// List returns the caps visible to the caller.
func (s *CapService) List(scope models.Scope) ([]*models.FrequencyCap, error) {
	return s.capRepo.List(scope)
}

// Update rewrites a cap the caller owns, re-deriving the window when no
// override is supplied.
func (s *CapService) Update(scope models.Scope, id uuid.UUID, in CapInput, active bool) (*models.FrequencyCap, error) {
	if !in.CapType.Valid() {
		return nil, utils.ErrInvalidCapType
	}
	if in.MaxImpressions <= 0 {
		return nil, utils.ErrInvalidCapType
	}

	cap, err := s.capRepo.GetByID(scope, id)
	if err != nil {
		return nil, err
	}
	cap.CapType = in.CapType
	cap.MaxImpressions = in.MaxImpressions
	cap.TimeWindowHours = resolveWindow(in.CapType, in.TimeWindowHours)
	cap.IsActive = active

	if err := s.capRepo.Update(scope, cap); err != nil {
		return nil, err
	}
	return cap, nil
}

// Delete removes a cap the caller owns.
func (s *CapService) Delete(scope models.Scope, id uuid.UUID) error {
	return s.capRepo.Delete(scope, id)
}
