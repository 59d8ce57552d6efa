package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/cache"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/models"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/repository"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/utils"
)

// DefaultPageSize bounds admin list pages when the client sends no limit.
const DefaultPageSize = 50

// AdminService backs the admin console: platform-wide user listing and role
// management. Route middleware guarantees only verified admins reach it.
type AdminService struct {
	userRepo     *repository.UserRepository
	profileRepo  *repository.ProfileRepository
	profileCache *cache.ProfileCache
}

func NewAdminService(
	userRepo *repository.UserRepository,
	profileRepo *repository.ProfileRepository,
	profileCache *cache.ProfileCache,
) *AdminService {
	return &AdminService{userRepo: userRepo, profileRepo: profileRepo, profileCache: profileCache}
}

// ListProfiles returns one page of profiles plus the platform-wide total.
func (s *AdminService) ListProfiles(page, limit int) ([]*models.Profile, int, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}

	total, err := s.profileRepo.Count()
	if err != nil {
		return nil, 0, err
	}
	profiles, err := s.profileRepo.List(limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	return profiles, total, nil
}

// UpdateRole changes a user's role and drops the cached profile so the new
// role takes effect on the next request rather than after the cache TTL.
func (s *AdminService) UpdateRole(ctx context.Context, userID uuid.UUID, role models.Role) error {
	if !role.Valid() {
		return utils.ErrInvalidRole
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if err := s.profileRepo.UpdateRole(userID, role); err != nil {
		return err
	}
	if err := s.profileCache.Invalidate(ctx, userID); err != nil {
		log.Warn().Err(err).Str("user_id", userID.String()).Msg("Failed to invalidate profile cache after role change")
	}
	log.Info().Str("email", user.Email).Str("role", string(role)).Msg("Role updated")
	return nil
}
