package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/models"
)

func setupRedis(t *testing.T) (*RedisClient, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewRedisClientFromAddr(mr.Addr()), mr
}

func TestProfileCacheRoundTrip(t *testing.T) {
	client, _ := setupRedis(t)
	c := NewProfileCache(client)
	ctx := context.Background()

	p := &models.Profile{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Role:        models.RoleAgency,
		CompanyName: "Acme Media",
	}
	if err := c.Store(ctx, p); err != nil {
		t.Fatalf("Store() error: %v", err)
	}

	got, err := c.Get(ctx, p.UserID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.UserID != p.UserID || got.Role != p.Role || got.CompanyName != p.CompanyName {
		t.Errorf("got %+v, want %+v", got, p)
	}
}

func TestProfileCacheInvalidate(t *testing.T) {
	client, _ := setupRedis(t)
	c := NewProfileCache(client)
	ctx := context.Background()

	p := &models.Profile{ID: uuid.New(), UserID: uuid.New(), Role: models.RoleAdvertiser}
	if err := c.Store(ctx, p); err != nil {
		t.Fatal(err)
	}
	if err := c.Invalidate(ctx, p.UserID); err != nil {
		t.Fatalf("Invalidate() error: %v", err)
	}
	if _, err := c.Get(ctx, p.UserID); err == nil {
		t.Error("profile still cached after invalidation")
	}
}

func TestProfileCacheExpires(t *testing.T) {
	client, mr := setupRedis(t)
	c := NewProfileCache(client)
	ctx := context.Background()

	p := &models.Profile{ID: uuid.New(), UserID: uuid.New(), Role: models.RoleAdvertiser}
	if err := c.Store(ctx, p); err != nil {
		t.Fatal(err)
	}

	// Role changes must surface once the entry ages out.
	mr.FastForward(6 * time.Minute)
	if _, err := c.Get(ctx, p.UserID); err == nil {
		t.Error("profile still cached after TTL")
	}
}

func TestSpendCacheRoundTrip(t *testing.T) {
	client, _ := setupRedis(t)
	c := NewSpendCache(client)
	ctx := context.Background()

	snap := &SpendSnapshot{
		CampaignID:      uuid.New(),
		TotalSpendCents: 123400,
		TodaySpendCents: 5600,
		RefreshedAt:     time.Now().UTC().Truncate(time.Second),
	}
	if err := c.Store(ctx, snap); err != nil {
		t.Fatalf("Store() error: %v", err)
	}

	got, err := c.Get(ctx, snap.CampaignID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.TotalSpendCents != snap.TotalSpendCents || got.TodaySpendCents != snap.TodaySpendCents {
		t.Errorf("got %+v, want %+v", got, snap)
	}

	if _, err := c.Get(ctx, uuid.New()); err == nil {
		t.Error("expected miss for unknown campaign")
	}
}
