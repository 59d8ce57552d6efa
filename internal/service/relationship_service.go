package service

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/models"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/repository"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/utils"
)

// RelationshipService manages agency-advertiser links. Only an active link
// grants the agency access to the advertiser's campaigns.
type RelationshipService struct {
	relationshipRepo *repository.RelationshipRepository
	profileRepo      *repository.ProfileRepository
	campaignRepo     *repository.CampaignRepository
}

func NewRelationshipService(
	relationshipRepo *repository.RelationshipRepository,
	profileRepo *repository.ProfileRepository,
	campaignRepo *repository.CampaignRepository,
) *RelationshipService {
	return &RelationshipService{
		relationshipRepo: relationshipRepo,
		profileRepo:      profileRepo,
		campaignRepo:     campaignRepo,
	}
}

// Link creates an active link from the calling agency to an advertiser. The
// target must hold the advertiser role, and at most one link may exist per
// pair regardless of its active flag.
func (s *RelationshipService) Link(scope models.Scope, advertiserID uuid.UUID) (*models.AgencyAdvertiser, error) {
	target, err := s.profileRepo.GetByUserID(advertiserID)
	if err != nil {
		return nil, utils.ErrNotFound
	}
	if target.Role != models.RoleAdvertiser {
		return nil, utils.ErrInvalidRole
	}

	exists, err := s.relationshipRepo.Exists(scope.UserID, advertiserID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, utils.ErrRelationshipExists
	}

	rel := &models.AgencyAdvertiser{
		AgencyID:     scope.UserID,
		AdvertiserID: advertiserID,
		IsActive:     true,
	}
	if err := s.relationshipRepo.Create(rel); err != nil {
		log.Error().Err(err).
			Str("agency_id", scope.UserID.String()).
			Str("advertiser_id", advertiserID.String()).
			Msg("Failed to create relationship")
		return nil, err
	}
	log.Info().
		Str("agency_id", scope.UserID.String()).
		Str("advertiser_id", advertiserID.String()).
		Msg("Relationship created")
	return rel, nil
}

// SetActive flips a link owned by the calling agency and returns the updated
// row. Deactivating revokes the agency's access to the advertiser's campaigns
// without deleting the history of the pair.
func (s *RelationshipService) SetActive(scope models.Scope, id uuid.UUID, active bool) (*models.AgencyAdvertiser, error) {
	if err := s.relationshipRepo.SetActive(scope.UserID, id, active); err != nil {
		return nil, err
	}
	return s.relationshipRepo.GetByID(id)
}

// ListManaged returns the advertisers linked to the calling agency.
func (s *RelationshipService) ListManaged(scope models.Scope) ([]*models.ManagedAdvertiser, error) {
	return s.relationshipRepo.ListManaged(scope.UserID)
}

// AdvertiserCampaigns lists one advertiser's campaigns for an agency holding
// an active link to them. An inactive or missing link denies access; admins
// bypass the gate.
func (s *RelationshipService) AdvertiserCampaigns(scope models.Scope, advertiserID uuid.UUID) ([]*models.Campaign, error) {
	if !scope.IsAdmin() {
		active, err := s.relationshipRepo.ActiveExists(scope.UserID, advertiserID)
		if err != nil {
			return nil, err
		}
		if !active {
			return nil, utils.ErrForbidden
		}
	}
	return s.campaignRepo.ListOwnedBy(advertiserID)
}
