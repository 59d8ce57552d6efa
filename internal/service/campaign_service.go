package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/models"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/repository"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/utils"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/pkg/strategy"
)

// CampaignService implements campaign CRUD with budget validation and the
// restricted status lifecycle. Ownership filtering happens in the repository
// via the scope; this layer owns the business rules.
type CampaignService struct {
	campaignRepo   *repository.CampaignRepository
	strategyClient *strategy.Client
}

func NewCampaignService(campaignRepo *repository.CampaignRepository, strategyClient *strategy.Client) *CampaignService {
	return &CampaignService{campaignRepo: campaignRepo, strategyClient: strategyClient}
}

// CampaignInput carries the user-editable campaign fields. Status may be
// set at creation time only; afterwards the status endpoint allows nothing
// but the active/paused toggle.
type CampaignInput struct {
	Name            string
	Description     *string
	Status          models.CampaignStatus
	Budget          float64
	DailyBudget     *float64
	StartDate       time.Time
	EndDate         *time.Time
	TargetingConfig json.RawMessage
}

// validateBudget enforces the shared budget/date rules: total budget
// non-negative, daily budget absent or non-negative, a start date present,
// and the end date absent or not before the start.
func validateBudget(budget float64, daily *float64, start time.Time, end *time.Time) error {
	if budget < 0 {
		return utils.ErrInvalidBudget
	}
	if daily != nil && *daily < 0 {
		return utils.ErrInvalidBudget
	}
	if start.IsZero() {
		return utils.ErrInvalidDateRange
	}
	if end != nil && end.Before(start) {
		return utils.ErrInvalidDateRange
	}
	return nil
}

// Create validates and inserts a campaign owned by the caller. An empty
// status defaults to draft.
func (s *CampaignService) Create(scope models.Scope, in CampaignInput) (*models.Campaign, error) {
	if err := validateBudget(in.Budget, in.DailyBudget, in.StartDate, in.EndDate); err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = models.CampaignDraft
	}
	if !status.Valid() {
		return nil, utils.ErrInvalidTransition
	}

	c := &models.Campaign{
		UserID:          scope.UserID,
		Name:            in.Name,
		Description:     in.Description,
		Status:          status,
		Budget:          in.Budget,
		DailyBudget:     in.DailyBudget,
		StartDate:       in.StartDate,
		EndDate:         in.EndDate,
		TargetingConfig: in.TargetingConfig,
	}
	if err := s.campaignRepo.Create(c); err != nil {
		log.Error().Err(err).Str("user_id", scope.UserID.String()).Msg("Failed to create campaign")
		return nil, err
	}
	return c, nil
}

// StrategyInput describes the brand for the external strategy generator.
type StrategyInput struct {
	BrandDescription  string
	CampaignObjective string
	LandingPage       string
}

// CreateWithStrategy calls the external strategy generator first and inserts
// the campaign row only once that call has succeeded, so a generator failure
// leaves no partial state behind. The generated text lands in the campaign
// description.
func (s *CampaignService) CreateWithStrategy(ctx context.Context, scope models.Scope, in CampaignInput, strat StrategyInput) (*models.Campaign, error) {
	if err := validateBudget(in.Budget, in.DailyBudget, in.StartDate, in.EndDate); err != nil {
		return nil, err
	}

	text, err := s.strategyClient.Generate(ctx, strategy.GenerateRequest{
		BrandDescription:  strat.BrandDescription,
		CampaignObjective: strat.CampaignObjective,
		LandingPage:       strat.LandingPage,
	})
	if err != nil {
		log.Error().Err(err).Str("user_id", scope.UserID.String()).Msg("Strategy generation failed")
		return nil, utils.ErrStrategyFailed
	}

	in.Description = &text
	c, err := s.Create(scope, in)
	if err != nil {
		// The generator is stateless, so there is nothing remote to undo;
		// the generated text is simply discarded.
		log.Warn().Err(err).Msg("Campaign insert failed after strategy generation; strategy discarded")
		return nil, err
	}
	return c, nil
}

// List returns the campaigns visible to the caller.
func (s *CampaignService) List(scope models.Scope) ([]*models.Campaign, error) {
	return s.campaignRepo.List(scope)
}

// Get returns one campaign the caller may see.
func (s *CampaignService) Get(scope models.Scope, id uuid.UUID) (*models.Campaign, error) {
	return s.campaignRepo.GetByID(scope, id)
}

// UpdateStatus applies a user-triggered status toggle. Anything other than
// the active/paused flip is rejected.
func (s *CampaignService) UpdateStatus(scope models.Scope, id uuid.UUID, to models.CampaignStatus) (*models.Campaign, error) {
	c, err := s.campaignRepo.GetByID(scope, id)
	if err != nil {
		return nil, err
	}
	if !c.CanTransition(to) {
		return nil, utils.ErrInvalidTransition
	}
	if err := s.campaignRepo.UpdateStatus(scope, id, to); err != nil {
		return nil, err
	}
	c.Status = to
	return c, nil
}

// UpdateBudget validates and writes the budget/schedule fields.
func (s *CampaignService) UpdateBudget(scope models.Scope, id uuid.UUID, budget float64, daily *float64, start time.Time, end *time.Time) error {
	if err := validateBudget(budget, daily, start, end); err != nil {
		return err
	}
	return s.campaignRepo.UpdateBudget(scope, id, budget, daily, start, end)
}

// Delete removes a campaign the caller owns.
func (s *CampaignService) Delete(scope models.Scope, id uuid.UUID) error {
	return s.campaignRepo.Delete(scope, id)
}
