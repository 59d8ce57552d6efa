package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/cache"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/repository"
)

// SpendWorker periodically rolls up impression spend per campaign and writes
// the snapshots to Redis. It only reads campaign data; pausing an
// overspending campaign stays a user decision.
type SpendWorker struct {
	impressionRepo *repository.ImpressionRepository
	spendCache     *cache.SpendCache
	interval       time.Duration
}

// NewSpendWorker constructs a SpendWorker.
func NewSpendWorker(impressionRepo *repository.ImpressionRepository, spendCache *cache.SpendCache, interval time.Duration) *SpendWorker {
	return &SpendWorker{
		impressionRepo: impressionRepo,
		spendCache:     spendCache,
		interval:       interval,
	}
}

// Start begins the refresh loop and listens for context cancellation.
func (w *SpendWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Msg("Starting spend worker")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Warm the cache once at startup rather than waiting a full interval.
	w.run(ctx)

	for {
		select {
		case <-ticker.C:
			w.run(ctx)
		case <-ctx.Done():
			log.Info().Msg("Spend worker stopped")
			return
		}
	}
}

func (w *SpendWorker) run(ctx context.Context) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	aggs, err := w.impressionRepo.Aggregates(dayStart)
	if err != nil {
		log.Error().Err(err).Msg("Failed to aggregate spend")
		return
	}

	stored := 0
	for _, agg := range aggs {
		snap := &cache.SpendSnapshot{
			CampaignID:      agg.CampaignID,
			TotalSpendCents: agg.TotalSpendCents,
			TodaySpendCents: agg.TodaySpendCents,
			RefreshedAt:     now,
		}
		if err := w.spendCache.Store(ctx, snap); err != nil {
			log.Error().Err(err).Str("campaign_id", agg.CampaignID.String()).Msg("Failed to cache spend snapshot")
			continue
		}
		stored++
	}
	log.Debug().Int("campaigns", stored).Msg("Spend snapshots refreshed")
}
