package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/models"
)

// SpendAggregate is a per-campaign spend rollup produced by the worker query.
type SpendAggregate struct {
	CampaignID      uuid.UUID `db:"campaign_id"`
	TotalSpendCents int64     `db:"total_spend_cents"`
	TodaySpendCents int64     `db:"today_spend_cents"`
}

// ImpressionRepository provides data access for impression tracking rows.
type ImpressionRepository struct {
	db *sqlx.DB
}

// NewImpressionRepository creates a new ImpressionRepository.
func NewImpressionRepository(db *sqlx.DB) *ImpressionRepository {
	return &ImpressionRepository{db: db}
}

// Record upserts an impression row: one row per campaign and viewer, counters
// incremented on conflict.
func (r *ImpressionRepository) Record(rec *models.ImpressionRecord) error {
	query := `
		INSERT INTO impression_tracking (campaign_id, user_identifier, impression_count, spend_cents)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (campaign_id, user_identifier) DO UPDATE SET
			impression_count = impression_tracking.impression_count + EXCLUDED.impression_count,
			spend_cents = impression_tracking.spend_cents + EXCLUDED.spend_cents,
			last_impression = now()
		RETURNING id, first_impression, last_impression, created_at
	`
	return r.db.QueryRow(query, rec.CampaignID, rec.UserIdentifier, rec.ImpressionCount, rec.SpendCents).
		Scan(&rec.ID, &rec.FirstImpression, &rec.LastImpression, &rec.CreatedAt)
}

// TotalSpendCents sums lifetime spend for one campaign.
func (r *ImpressionRepository) TotalSpendCents(campaignID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.Get(&total, `
		SELECT COALESCE(SUM(spend_cents), 0) FROM impression_tracking WHERE campaign_id = $1
	`, campaignID)
	return total, err
}

// SpendCentsSince sums spend recorded at or after t for one campaign.
func (r *ImpressionRepository) SpendCentsSince(campaignID uuid.UUID, t time.Time) (int64, error) {
	var total int64
	err := r.db.Get(&total, `
		SELECT COALESCE(SUM(spend_cents), 0)
		FROM impression_tracking
		WHERE campaign_id = $1 AND created_at >= $2
	`, campaignID, t)
	return total, err
}

// Aggregates rolls up total and today spend for every campaign with tracking
// rows. dayStart marks the beginning of "today" in the caller's clock.
func (r *ImpressionRepository) Aggregates(dayStart time.Time) ([]*SpendAggregate, error) {
	var aggs []*SpendAggregate
	err := r.db.Select(&aggs, `
		SELECT campaign_id,
		       COALESCE(SUM(spend_cents), 0) AS total_spend_cents,
		       COALESCE(SUM(spend_cents) FILTER (WHERE created_at >= $1), 0) AS today_spend_cents
		FROM impression_tracking
		GROUP BY campaign_id
	`, dayStart)
	return aggs, err
}
