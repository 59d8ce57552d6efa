package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/models"
)

// ProfileCache keeps resolved profiles in Redis so the auth middleware does
// not hit PostgreSQL on every request. Entries are short-lived: a role change
// must take effect within the TTL.
type ProfileCache struct {
	redis *RedisClient
	ttl   time.Duration
}

// NewProfileCache creates a new ProfileCache.
func NewProfileCache(redis *RedisClient) *ProfileCache {
	return &ProfileCache{redis: redis, ttl: 5 * time.Minute}
}

func profileKey(userID uuid.UUID) string {
	return fmt.Sprintf("profile:%s", userID)
}

// Store caches a profile.
func (c *ProfileCache) Store(ctx context.Context, p *models.Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, profileKey(p.UserID), string(data), c.ttl)
}

// Get returns the cached profile, or nil if absent or unreadable.
func (c *ProfileCache) Get(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	raw, err := c.redis.Get(ctx, profileKey(userID))
	if err != nil {
		return nil, err
	}
	var p models.Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Invalidate drops the cached profile, e.g. after an admin role change.
func (c *ProfileCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	return c.redis.Delete(ctx, profileKey(userID))
}
