package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/models"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/repository"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/utils"
)

// DealCurrencies are the currencies a PMP deal may be priced in.
var DealCurrencies = []string{"USD", "EUR", "GBP"}

// DealService manages private-marketplace deal records. Margins are clamped
// into [0, 50] on every write; this bound applies to deals only, not to
// commission rules.
type DealService struct {
	dealRepo *repository.PMPDealRepository
}

func NewDealService(dealRepo *repository.PMPDealRepository) *DealService {
	return &DealService{dealRepo: dealRepo}
}

// DealInput carries the editable deal fields.
type DealInput struct {
	DealID           string
	DealName         string
	DSPName          string
	DealType         models.DealType
	FloorPrice       *float64
	Currency         string
	Priority         int
	MarginPercentage float64
	Status           string
	Description      *string
	StartDate        *time.Time
	EndDate          *time.Time
}

func (in DealInput) validate() error {
	if !in.DealType.Valid() {
		return utils.ErrInvalidDealType
	}
	if !models.Contains(DealCurrencies, in.Currency) {
		return utils.ErrInvalidCurrency
	}
	return nil
}

// Create validates and inserts a deal owned by the caller.
func (s *DealService) Create(scope models.Scope, in DealInput) (*models.PMPDeal, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	d := &models.PMPDeal{
		UserID:           scope.UserID,
		DealID:           in.DealID,
		DealName:         in.DealName,
		DSPName:          in.DSPName,
		DealType:         in.DealType,
		FloorPrice:       in.FloorPrice,
		Currency:         in.Currency,
		Priority:         in.Priority,
		MarginPercentage: models.ClampDealMargin(in.MarginPercentage),
		Status:           defaultStatus(in.Status),
		Description:      in.Description,
		StartDate:        in.StartDate,
		EndDate:          in.EndDate,
	}
	if err := s.dealRepo.Create(d); err != nil {
		log.Error().Err(err).Str("deal_id", in.DealID).Msg("Failed to create PMP deal")
		return nil, err
	}
	return d, nil
}

// List returns the deals visible to the caller.
func (s *DealService) List(scope models.Scope) ([]*models.PMPDeal, error) {
	return s.dealRepo.List(scope)
}

// Get returns one deal the caller may see.
func (s *DealService) Get(scope models.Scope, id uuid.UUID) (*models.PMPDeal, error) {
	return s.dealRepo.GetByID(scope, id)
}

// Update rewrites a deal the caller owns, clamping the margin again on the
// way in.
func (s *DealService) Update(scope models.Scope, id uuid.UUID, in DealInput) (*models.PMPDeal, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	d, err := s.dealRepo.GetByID(scope, id)
	if err != nil {
		return nil, err
	}
	d.DealID = in.DealID
	d.DealName = in.DealName
	d.DSPName = in.DSPName
	d.DealType = in.DealType
	d.FloorPrice = in.FloorPrice
	d.Currency = in.Currency
	d.Priority = in.Priority
	d.MarginPercentage = models.ClampDealMargin(in.MarginPercentage)
	d.Status = defaultStatus(in.Status)
	d.Description = in.Description
	d.StartDate = in.StartDate
	d.EndDate = in.EndDate

	if err := s.dealRepo.Update(scope, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Delete removes a deal the caller owns.
func (s *DealService) Delete(scope models.Scope, id uuid.UUID) error {
	return s.dealRepo.Delete(scope, id)
}
