package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/cache"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/models"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/repository"
)

// ProfileService serves profile reads and updates for the logged-in
// principal, plus the advertiser views used by agencies.
type ProfileService struct {
	profileRepo      *repository.ProfileRepository
	relationshipRepo *repository.RelationshipRepository
	profileCache     *cache.ProfileCache
}

func NewProfileService(
	profileRepo *repository.ProfileRepository,
	relationshipRepo *repository.RelationshipRepository,
	profileCache *cache.ProfileCache,
) *ProfileService {
	return &ProfileService{
		profileRepo:      profileRepo,
		relationshipRepo: relationshipRepo,
		profileCache:     profileCache,
	}
}

// GetOwn returns the caller's profile.
func (s *ProfileService) GetOwn(scope models.Scope) (*models.Profile, error) {
	return s.profileRepo.GetByUserID(scope.UserID)
}

// UpdateOwnInput carries the editable company contact fields.
type UpdateOwnInput struct {
	CompanyName  string
	ContactEmail *string
	Phone        *string
	Address      *string
}

// UpdateOwn writes the caller's company contact fields. The role is never
// editable here; only the admin console changes roles.
func (s *ProfileService) UpdateOwn(ctx context.Context, scope models.Scope, in UpdateOwnInput) (*models.Profile, error) {
	p, err := s.profileRepo.GetByUserID(scope.UserID)
	if err != nil {
		return nil, err
	}
	p.CompanyName = in.CompanyName
	p.ContactEmail = in.ContactEmail
	p.Phone = in.Phone
	p.Address = in.Address
	if err := s.profileRepo.Update(p); err != nil {
		return nil, err
	}
	if err := s.profileCache.Invalidate(ctx, scope.UserID); err != nil {
		log.Warn().Err(err).Str("user_id", scope.UserID.String()).Msg("Failed to invalidate profile cache")
	}
	return p, nil
}

// AdvertiserDirectory lists every advertiser profile on the platform. Any
// agency sees the full directory; this feeds the marketplace view where an
// agency picks advertisers to request a link with.
func (s *ProfileService) AdvertiserDirectory() ([]*models.Profile, error) {
	return s.profileRepo.ListByRole(models.RoleAdvertiser)
}

// ManagedAdvertisers lists only the advertisers linked to the calling
// agency, with the relationship row attached.
func (s *ProfileService) ManagedAdvertisers(scope models.Scope) ([]*models.ManagedAdvertiser, error) {
	return s.relationshipRepo.ListManaged(scope.UserID)
}
