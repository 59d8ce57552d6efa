package repository

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/models"
)

const googleColumns = `id, user_id, campaign_name, campaign_type, bid_strategy, status, daily_budget,
	margin_percentage, google_campaign_id, targeting_config, creative_config,
	start_date, end_date, created_at, updated_at`

// GoogleCampaignRepository provides tenant-scoped data access for Google Ads campaigns.
type GoogleCampaignRepository struct {
	db *sqlx.DB
}

// NewGoogleCampaignRepository creates a new GoogleCampaignRepository.
func NewGoogleCampaignRepository(db *sqlx.DB) *GoogleCampaignRepository {
	return &GoogleCampaignRepository{db: db}
}

// Create inserts a Google campaign.
func (r *GoogleCampaignRepository) Create(c *models.GoogleCampaign) error {
	query := `
		INSERT INTO google_campaigns (user_id, campaign_name, campaign_type, bid_strategy, status,
			daily_budget, margin_percentage, targeting_config, creative_config, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(query,
		c.UserID, c.CampaignName, c.CampaignType, c.BidStrategy, c.Status,
		c.DailyBudget, c.MarginPercentage,
		rawOrNil(c.TargetingConfig), rawOrNil(c.CreativeConfig),
		c.StartDate, c.EndDate,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// List retrieves Google campaigns visible to the scope.
func (r *GoogleCampaignRepository) List(scope models.Scope) ([]*models.GoogleCampaign, error) {
	var campaigns []*models.GoogleCampaign
	if scope.IsAdmin() {
		err := r.db.Select(&campaigns, `SELECT `+googleColumns+` FROM google_campaigns ORDER BY created_at DESC`)
		return campaigns, err
	}
	err := r.db.Select(&campaigns, `
		SELECT `+googleColumns+` FROM google_campaigns WHERE user_id = $1 ORDER BY created_at DESC
	`, scope.UserID)
	return campaigns, err
}

// GetByID retrieves one Google campaign if the scope may see it.
func (r *GoogleCampaignRepository) GetByID(scope models.Scope, id uuid.UUID) (*models.GoogleCampaign, error) {
	var c models.GoogleCampaign
	if scope.IsAdmin() {
		if err := r.db.Get(&c, `SELECT `+googleColumns+` FROM google_campaigns WHERE id = $1`, id); err != nil {
			return nil, err
		}
		return &c, nil
	}
	err := r.db.Get(&c, `
		SELECT `+googleColumns+` FROM google_campaigns WHERE id = $1 AND user_id = $2
	`, id, scope.UserID)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Update rewrites a Google campaign the scope owns.
func (r *GoogleCampaignRepository) Update(scope models.Scope, c *models.GoogleCampaign) error {
	set := `campaign_name = $1, campaign_type = $2, bid_strategy = $3, status = $4,
		daily_budget = $5, margin_percentage = $6, targeting_config = $7, creative_config = $8,
		start_date = $9, end_date = $10, updated_at = now()`
	args := []interface{}{
		c.CampaignName, c.CampaignType, c.BidStrategy, c.Status,
		c.DailyBudget, c.MarginPercentage,
		rawOrNil(c.TargetingConfig), rawOrNil(c.CreativeConfig),
		c.StartDate, c.EndDate,
	}
	if scope.IsAdmin() {
		res, err := r.db.Exec(`UPDATE google_campaigns SET `+set+` WHERE id = $11`, append(args, c.ID)...)
		if err != nil {
			return err
		}
		return requireRow(res)
	}
	res, err := r.db.Exec(`UPDATE google_campaigns SET `+set+` WHERE id = $11 AND user_id = $12`,
		append(args, c.ID, scope.UserID)...)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Delete removes a Google campaign the scope owns.
func (r *GoogleCampaignRepository) Delete(scope models.Scope, id uuid.UUID) error {
	if scope.IsAdmin() {
		res, err := r.db.Exec(`DELETE FROM google_campaigns WHERE id = $1`, id)
		if err != nil {
			return err
		}
		return requireRow(res)
	}
	res, err := r.db.Exec(`DELETE FROM google_campaigns WHERE id = $1 AND user_id = $2`, id, scope.UserID)
	if err != nil {
		return err
	}
	return requireRow(res)
}
