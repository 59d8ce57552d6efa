package repository

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/models"
)

const metaColumns = `id, user_id, campaign_name, objective, bid_strategy, status, daily_budget,
	lifetime_budget, margin_percentage, meta_campaign_id, targeting_config, creative_config,
	start_date, end_date, created_at, updated_at`

// MetaCampaignRepository provides tenant-scoped data access for Meta campaigns.
type MetaCampaignRepository struct {
	db *sqlx.DB
}

// NewMetaCampaignRepository creates a new MetaCampaignRepository.
func NewMetaCampaignRepository(db *sqlx.DB) *MetaCampaignRepository {
	return &MetaCampaignRepository{db: db}
}

// Create inserts a Meta campaign.
func (r *MetaCampaignRepository) Create(c *models.MetaCampaign) error {
	query := `
		INSERT INTO meta_campaigns (user_id, campaign_name, objective, bid_strategy, status,
			daily_budget, lifetime_budget, margin_percentage, targeting_config, creative_config,
			start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(query,
		c.UserID, c.CampaignName, c.Objective, c.BidStrategy, c.Status,
		c.DailyBudget, c.LifetimeBudget, c.MarginPercentage,
		rawOrNil(c.TargetingConfig), rawOrNil(c.CreativeConfig),
		c.StartDate, c.EndDate,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// List retrieves Meta campaigns visible to the scope.
func (r *MetaCampaignRepository) List(scope models.Scope) ([]*models.MetaCampaign, error) {
	var campaigns []*models.MetaCampaign
	if scope.IsAdmin() {
		err := r.db.Select(&campaigns, `SELECT `+metaColumns+` FROM meta_campaigns ORDER BY created_at DESC`)
		return campaigns, err
	}
	err := r.db.Select(&campaigns, `
		SELECT `+metaColumns+` FROM meta_campaigns WHERE user_id = $1 ORDER BY created_at DESC
	`, scope.UserID)
	return campaigns, err
}

// GetByID retrieves one Meta campaign if the scope may see it.
func (r *MetaCampaignRepository) GetByID(scope models.Scope, id uuid.UUID) (*models.MetaCampaign, error) {
	var c models.MetaCampaign
	if scope.IsAdmin() {
		if err := r.db.Get(&c, `SELECT `+metaColumns+` FROM meta_campaigns WHERE id = $1`, id); err != nil {
			return nil, err
		}
		return &c, nil
	}
	err := r.db.Get(&c, `
		SELECT `+metaColumns+` FROM meta_campaigns WHERE id = $1 AND user_id = $2
	`, id, scope.UserID)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Update rewrites a Meta campaign the scope owns.
func (r *MetaCampaignRepository) Update(scope models.Scope, c *models.MetaCampaign) error {
	set := `campaign_name = $1, objective = $2, bid_strategy = $3, status = $4,
		daily_budget = $5, lifetime_budget = $6, margin_percentage = $7,
		targeting_config = $8, creative_config = $9, start_date = $10, end_date = $11,
		updated_at = now()`
	args := []interface{}{
		c.CampaignName, c.Objective, c.BidStrategy, c.Status,
		c.DailyBudget, c.LifetimeBudget, c.MarginPercentage,
		rawOrNil(c.TargetingConfig), rawOrNil(c.CreativeConfig),
		c.StartDate, c.EndDate,
	}
	if scope.IsAdmin() {
		res, err := r.db.Exec(`UPDATE meta_campaigns SET `+set+` WHERE id = $12`, append(args, c.ID)...)
		if err != nil {
			return err
		}
		return requireRow(res)
	}
	res, err := r.db.Exec(`UPDATE meta_campaigns SET `+set+` WHERE id = $12 AND user_id = $13`,
		append(args, c.ID, scope.UserID)...)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Delete removes a Meta campaign the scope owns.
func (r *MetaCampaignRepository) Delete(scope models.Scope, id uuid.UUID) error {
	if scope.IsAdmin() {
		res, err := r.db.Exec(`DELETE FROM meta_campaigns WHERE id = $1`, id)
		if err != nil {
			return err
		}
		return requireRow(res)
	}
	res, err := r.db.Exec(`DELETE FROM meta_campaigns WHERE id = $1 AND user_id = $2`, id, scope.UserID)
	if err != nil {
		return err
	}
	return requireRow(res)
}
