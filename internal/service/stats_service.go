package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/cache"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/models"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/repository"
)

// Pacing thresholds as budget-utilization percentages.
const (
	pacingOverUtilization  = 110
	pacingRiskUtilization  = 90
	pacingUnderUtilization = 70
)

// StatsService ingests impression tracking rows and computes per-campaign
// budget status. Spend aggregates come from the Redis cache kept warm by the
// spend worker, with a direct database rollup as fallback.
type StatsService struct {
	campaignRepo   *repository.CampaignRepository
	impressionRepo *repository.ImpressionRepository
	spendCache     *cache.SpendCache
}

func NewStatsService(
	campaignRepo *repository.CampaignRepository,
	impressionRepo *repository.ImpressionRepository,
	spendCache *cache.SpendCache,
) *StatsService {
	return &StatsService{
		campaignRepo:   campaignRepo,
		impressionRepo: impressionRepo,
		spendCache:     spendCache,
	}
}

// TrackInput is one ingest event.
type TrackInput struct {
	CampaignID     uuid.UUID
	UserIdentifier string
	Impressions    int
	SpendCents     int64
}

// Track records impressions and spend for a campaign/viewer pair.
func (s *StatsService) Track(in TrackInput) (*models.ImpressionRecord, error) {
	if in.Impressions <= 0 {
		in.Impressions = 1
	}
	rec := &models.ImpressionRecord{
		CampaignID:      in.CampaignID,
		UserIdentifier:  in.UserIdentifier,
		ImpressionCount: in.Impressions,
		SpendCents:      in.SpendCents,
	}
	if err := s.impressionRepo.Record(rec); err != nil {
		log.Error().Err(err).Str("campaign_id", in.CampaignID.String()).Msg("Failed to record impression")
		return nil, err
	}
	return rec, nil
}

// BudgetStatuses computes the spend picture of every campaign visible to the
// caller.
func (s *StatsService) BudgetStatuses(ctx context.Context, scope models.Scope) ([]*models.BudgetStatus, error) {
	campaigns, err := s.campaignRepo.List(scope)
	if err != nil {
		return nil, err
	}

	statuses := make([]*models.BudgetStatus, 0, len(campaigns))
	for _, c := range campaigns {
		totalCents, todayCents, err := s.spendCents(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, buildBudgetStatus(c, totalCents, todayCents))
	}
	return statuses, nil
}

// spendCents returns (total, today) spend for one campaign, preferring the
// worker-maintained cache.
func (s *StatsService) spendCents(ctx context.Context, campaignID uuid.UUID) (int64, int64, error) {
	if snap, err := s.spendCache.Get(ctx, campaignID); err == nil {
		return snap.TotalSpendCents, snap.TodaySpendCents, nil
	}

	total, err := s.impressionRepo.TotalSpendCents(campaignID)
	if err != nil {
		return 0, 0, err
	}
	today, err := s.impressionRepo.SpendCentsSince(campaignID, startOfDay(time.Now()))
	if err != nil {
		return 0, 0, err
	}
	return total, today, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// buildBudgetStatus derives utilization, overspend, and pacing from raw
// spend. Utilization is a percentage of the configured budget; a zero budget
// yields zero utilization rather than a division error.
func buildBudgetStatus(c *models.Campaign, totalCents, todayCents int64) *models.BudgetStatus {
	totalSpend := float64(totalCents) / 100
	spendToday := float64(todayCents) / 100

	var utilization float64
	if c.Budget > 0 {
		utilization = totalSpend / c.Budget * 100
	}

	var dailyUtilization *float64
	if c.DailyBudget != nil && *c.DailyBudget > 0 {
		du := spendToday / *c.DailyBudget * 100
		dailyUtilization = &du
	}

	overspending := totalSpend > c.Budget
	if c.DailyBudget != nil && spendToday > *c.DailyBudget {
		overspending = true
	}

	pacing := models.PacingOnTrack
	switch {
	case utilization > pacingOverUtilization:
		pacing = models.PacingOver
	case utilization > pacingRiskUtilization:
		pacing = models.PacingAtRisk
	case utilization < pacingUnderUtilization:
		pacing = models.PacingUnder
	}

	return &models.BudgetStatus{
		CampaignID:        c.ID,
		Name:              c.Name,
		Status:            string(c.Status),
		Budget:            c.Budget,
		DailyBudget:       c.DailyBudget,
		TotalSpend:        totalSpend,
		SpendToday:        spendToday,
		BudgetUtilization: utilization,
		DailyUtilization:  dailyUtilization,
		IsOverspending:    overspending,
		Pacing:            pacing,
	}
}
