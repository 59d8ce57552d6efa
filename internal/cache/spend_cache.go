package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SpendSnapshot is the cached spend aggregate of one campaign, refreshed by
// the spend worker.
type SpendSnapshot struct {
	CampaignID      uuid.UUID `json:"campaignId"`
	TotalSpendCents int64     `json:"totalSpendCents"`
	TodaySpendCents int64     `json:"todaySpendCents"`
	RefreshedAt     time.Time `json:"refreshedAt"`
}

// SpendCache stores per-campaign spend aggregates in Redis.
type SpendCache struct {
	redis *RedisClient
	ttl   time.Duration
}

// NewSpendCache creates a new SpendCache.
func NewSpendCache(redis *RedisClient) *SpendCache {
	return &SpendCache{redis: redis, ttl: 10 * time.Minute}
}

func spendKey(campaignID uuid.UUID) string {
	return fmt.Sprintf("spend:%s", campaignID)
}

// Store caches a spend snapshot.
func (c *SpendCache) Store(ctx context.Context, snap *SpendSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, spendKey(snap.CampaignID), string(data), c.ttl)
}

// Get returns the cached snapshot for a campaign, or an error if absent.
func (c *SpendCache) Get(ctx context.Context, campaignID uuid.UUID) (*SpendSnapshot, error) {
	raw, err := c.redis.Get(ctx, spendKey(campaignID))
	if err != nil {
		return nil, err
	}
	var snap SpendSnapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}
