package service

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/models"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/repository"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/utils"
)

// PlatformService manages the Meta and Google campaign mirrors. Objectives,
// campaign types, and bid strategies are validated against the closed enum
// sets exposed by each platform. The margin percentage is an admin-only
// field: non-admin writes silently drop it and non-admin reads never see it.
type PlatformService struct {
	metaRepo   *repository.MetaCampaignRepository
	googleRepo *repository.GoogleCampaignRepository
}

func NewPlatformService(metaRepo *repository.MetaCampaignRepository, googleRepo *repository.GoogleCampaignRepository) *PlatformService {
	return &PlatformService{metaRepo: metaRepo, googleRepo: googleRepo}
}

// MetaCampaignInput carries the editable Meta campaign fields.
type MetaCampaignInput struct {
	CampaignName     string
	Objective        string
	BidStrategy      *string
	Status           string
	DailyBudget      *float64
	LifetimeBudget   *float64
	MarginPercentage *float64
	TargetingConfig  json.RawMessage
	CreativeConfig   json.RawMessage
	StartDate        *time.Time
	EndDate          *time.Time
}

func (in MetaCampaignInput) validate() error {
	if !models.Contains(models.MetaObjectives, in.Objective) {
		return utils.ErrInvalidEnumValue
	}
	if in.BidStrategy != nil && !models.Contains(models.MetaBidStrategies, *in.BidStrategy) {
		return utils.ErrInvalidEnumValue
	}
	return nil
}

// CreateMeta validates and inserts a Meta campaign owned by the caller.
func (s *PlatformService) CreateMeta(scope models.Scope, in MetaCampaignInput) (*models.MetaCampaign, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	margin := in.MarginPercentage
	if !scope.IsAdmin() {
		margin = nil
	}

	c := &models.MetaCampaign{
		UserID:           scope.UserID,
		CampaignName:     in.CampaignName,
		Objective:        in.Objective,
		BidStrategy:      in.BidStrategy,
		Status:           defaultStatus(in.Status),
		DailyBudget:      in.DailyBudget,
		LifetimeBudget:   in.LifetimeBudget,
		MarginPercentage: margin,
		TargetingConfig:  in.TargetingConfig,
		CreativeConfig:   in.CreativeConfig,
		StartDate:        in.StartDate,
		EndDate:          in.EndDate,
	}
	if err := s.metaRepo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListMeta returns Meta campaigns visible to the caller, margin stripped for
// non-admins.
func (s *PlatformService) ListMeta(scope models.Scope) ([]*models.MetaCampaign, error) {
	campaigns, err := s.metaRepo.List(scope)
	if err != nil {
		return nil, err
	}
	if !scope.IsAdmin() {
		for _, c := range campaigns {
			c.MarginPercentage = nil
		}
	}
	return campaigns, nil
}

// UpdateMeta rewrites a Meta campaign the caller owns. Non-admin updates
// keep the stored margin untouched.
func (s *PlatformService) UpdateMeta(scope models.Scope, id uuid.UUID, in MetaCampaignInput) (*models.MetaCampaign, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	c, err := s.metaRepo.GetByID(scope, id)
	if err != nil {
		return nil, err
	}
	c.CampaignName = in.CampaignName
	c.Objective = in.Objective
	c.BidStrategy = in.BidStrategy
	c.Status = defaultStatus(in.Status)
	c.DailyBudget = in.DailyBudget
	c.LifetimeBudget = in.LifetimeBudget
	c.TargetingConfig = in.TargetingConfig
	c.CreativeConfig = in.CreativeConfig
	c.StartDate = in.StartDate
	c.EndDate = in.EndDate
	if scope.IsAdmin() {
		c.MarginPercentage = in.MarginPercentage
	}

	if err := s.metaRepo.Update(scope, c); err != nil {
		return nil, err
	}
	if !scope.IsAdmin() {
		c.MarginPercentage = nil
	}
	return c, nil
}

// DeleteMeta removes a Meta campaign the caller owns.
func (s *PlatformService) DeleteMeta(scope models.Scope, id uuid.UUID) error {
	return s.metaRepo.Delete(scope, id)
}

// GoogleCampaignInput carries the editable Google campaign fields.
type GoogleCampaignInput struct {
	CampaignName     string
	CampaignType     string
	BidStrategy      *string
	Status           string
	DailyBudget      *float64
	MarginPercentage *float64
	TargetingConfig  json.RawMessage
	CreativeConfig   json.RawMessage
	StartDate        *time.Time
	EndDate          *time.Time
}

func (in GoogleCampaignInput) validate() error {
	if !models.Contains(models.GoogleCampaignTypes, in.CampaignType) {
		return utils.ErrInvalidEnumValue
	}
	if in.BidStrategy != nil && !models.Contains(models.GoogleBidStrategies, *in.BidStrategy) {
		return utils.ErrInvalidEnumValue
	}
	return nil
}

// CreateGoogle validates and inserts a Google campaign owned by the caller.
func (s *PlatformService) CreateGoogle(scope models.Scope, in GoogleCampaignInput) (*models.GoogleCampaign, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	margin := in.MarginPercentage
	if !scope.IsAdmin() {
		margin = nil
	}

	c := &models.GoogleCampaign{
		UserID:           scope.UserID,
		CampaignName:     in.CampaignName,
		CampaignType:     in.CampaignType,
		BidStrategy:      in.BidStrategy,
		Status:           defaultStatus(in.Status),
		DailyBudget:      in.DailyBudget,
		MarginPercentage: margin,
		TargetingConfig:  in.TargetingConfig,
		CreativeConfig:   in.CreativeConfig,
		StartDate:        in.StartDate,
		EndDate:          in.EndDate,
	}
	if err := s.googleRepo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListGoogle returns Google campaigns visible to the caller, margin stripped
// for non-admins.
func (s *PlatformService) ListGoogle(scope models.Scope) ([]*models.GoogleCampaign, error) {
	campaigns, err := s.googleRepo.List(scope)
	if err != nil {
		return nil, err
	}
	if !scope.IsAdmin() {
		for _, c := range campaigns {
			c.MarginPercentage = nil
		}
	}
	return campaigns, nil
}

// UpdateGoogle rewrites a Google campaign the caller owns.
func (s *PlatformService) UpdateGoogle(scope models.Scope, id uuid.UUID, in GoogleCampaignInput) (*models.GoogleCampaign, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	c, err := s.googleRepo.GetByID(scope, id)
	if err != nil {
		return nil, err
	}
	c.CampaignName = in.CampaignName
	c.CampaignType = in.CampaignType
	c.BidStrategy = in.BidStrategy
	c.Status = defaultStatus(in.Status)
	c.DailyBudget = in.DailyBudget
	c.TargetingConfig = in.TargetingConfig
	c.CreativeConfig = in.CreativeConfig
	c.StartDate = in.StartDate
	c.EndDate = in.EndDate
	if scope.IsAdmin() {
		c.MarginPercentage = in.MarginPercentage
	}

	if err := s.googleRepo.Update(scope, c); err != nil {
		return nil, err
	}
	if !scope.IsAdmin() {
		c.MarginPercentage = nil
	}
	return c, nil
}

// DeleteGoogle removes a Google campaign the caller owns.
func (s *PlatformService) DeleteGoogle(scope models.Scope, id uuid.UUID) error {
	return s.googleRepo.Delete(scope, id)
}

func defaultStatus(status string) string {
	if status == "" {
		return "draft"
	}
	return status
}
