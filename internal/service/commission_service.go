package service

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/models"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/repository"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/utils"
)

// CommissionService manages percentage-based fee rules. All mutations sit
// behind the admin gate in the router. Percentages are only checked for
// non-negativity; unlike PMP deal margins there is no upper bound here, and
// the two must not be silently unified.
type CommissionService struct {
	commissionRepo *repository.CommissionRepository
}

func NewCommissionService(commissionRepo *repository.CommissionRepository) *CommissionService {
	return &CommissionService{commissionRepo: commissionRepo}
}

// CommissionInput carries the fields of a new rule.
type CommissionInput struct {
	UserID          uuid.UUID
	AppliesToUserID *uuid.UUID
	CommissionType  models.CommissionType
	Percentage      float64
}

// Create validates and inserts a commission rule, active by default.
func (s *CommissionService) Create(in CommissionInput) (*models.Commission, error) {
	if !in.CommissionType.Valid() {
		return nil, utils.ErrInvalidCommission
	}
	if in.Percentage < 0 {
		return nil, utils.ErrInvalidPercentage
	}

	c := &models.Commission{
		UserID:          in.UserID,
		AppliesToUserID: in.AppliesToUserID,
		CommissionType:  in.CommissionType,
		Percentage:      in.Percentage,
		IsActive:        true,
	}
	if err := s.commissionRepo.Create(c); err != nil {
		log.Error().Err(err).Str("user_id", in.UserID.String()).Msg("Failed to create commission rule")
		return nil, err
	}
	return c, nil
}

// List returns every rule on the platform.
func (s *CommissionService) List() ([]*models.Commission, error) {
	return s.commissionRepo.List()
}

// ListForUser returns the rules attached to one user, either as subject or
// as target.
func (s *CommissionService) ListForUser(userID uuid.UUID) ([]*models.Commission, error) {
	return s.commissionRepo.ListForUser(userID)
}

// SetActive flips a rule on or off.
func (s *CommissionService) SetActive(id uuid.UUID, active bool) error {
	return s.commissionRepo.SetActive(id, active)
}
