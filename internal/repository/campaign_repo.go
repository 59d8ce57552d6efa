package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/models"
)

const campaignColumns = `id, user_id, agency_id, name, description, status, budget, daily_budget,
	start_date, end_date, targeting_config, created_at, updated_at`

// CampaignRepository provides tenant-scoped data access for campaigns.
// Every read and write takes a models.Scope: an admin scope sees and touches
// all rows, any other scope only rows it owns.
type CampaignRepository struct {
	db *sqlx.DB
}

// NewCampaignRepository creates a new CampaignRepository.
func NewCampaignRepository(db *sqlx.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

// Create inserts a new campaign owned by scope's user.
func (r *CampaignRepository) Create(c *models.Campaign) error {
	query := `
		INSERT INTO campaigns (user_id, agency_id, name, description, status, budget, daily_budget,
			start_date, end_date, targeting_config)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, COALESCE($10, '{}'::jsonb))
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(query,
		c.UserID, c.AgencyID, c.Name, c.Description, c.Status, c.Budget, c.DailyBudget,
		c.StartDate, c.EndDate, []byte(c.TargetingConfig),
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// List retrieves campaigns visible to the scope.
func (r *CampaignRepository) List(scope models.Scope) ([]*models.Campaign, error) {
	var campaigns []*models.Campaign
	if scope.IsAdmin() {
		err := r.db.Select(&campaigns, `SELECT `+campaignColumns+` FROM campaigns ORDER BY created_at DESC`)
		return campaigns, err
	}
	err := r.db.Select(&campaigns, `
		SELECT `+campaignColumns+`
		FROM campaigns
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, scope.UserID)
	return campaigns, err
}

// ListOwnedBy retrieves every campaign belonging to one user regardless of
// the caller. The relationship gate upstream decides who may ask.
func (r *CampaignRepository) ListOwnedBy(userID uuid.UUID) ([]*models.Campaign, error) {
	var campaigns []*models.Campaign
	err := r.db.Select(&campaigns, `
		SELECT `+campaignColumns+`
		FROM campaigns
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	return campaigns, err
}

// GetByID retrieves one campaign if the scope may see it.
func (r *CampaignRepository) GetByID(scope models.Scope, id uuid.UUID) (*models.Campaign, error) {
	var c models.Campaign
	if scope.IsAdmin() {
		if err := r.db.Get(&c, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id); err != nil {
			return nil, err
		}
		return &c, nil
	}
	err := r.db.Get(&c, `
		SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 AND user_id = $2
	`, id, scope.UserID)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateStatus sets the campaign status for a row the scope owns.
func (r *CampaignRepository) UpdateStatus(scope models.Scope, id uuid.UUID, status models.CampaignStatus) error {
	if scope.IsAdmin() {
		res, err := r.db.Exec(`UPDATE campaigns SET status = $1, updated_at = now() WHERE id = $2`, status, id)
		if err != nil {
			return err
		}
		return requireRow(res)
	}
	res, err := r.db.Exec(`
		UPDATE campaigns SET status = $1, updated_at = now() WHERE id = $2 AND user_id = $3
	`, status, id, scope.UserID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// UpdateBudget writes the budget/schedule fields of a row the scope owns.
// Validation happens in the service layer before this call.
func (r *CampaignRepository) UpdateBudget(scope models.Scope, id uuid.UUID, budget float64, daily *float64, start time.Time, end *time.Time) error {
	if scope.IsAdmin() {
		res, err := r.db.Exec(`
			UPDATE campaigns
			SET budget = $1, daily_budget = $2, start_date = $3, end_date = $4, updated_at = now()
			WHERE id = $5
		`, budget, daily, start, end, id)
		if err != nil {
			return err
		}
		return requireRow(res)
	}
	res, err := r.db.Exec(`
		UPDATE campaigns
		SET budget = $1, daily_budget = $2, start_date = $3, end_date = $4, updated_at = now()
		WHERE id = $5 AND user_id = $6
	`, budget, daily, start, end, id, scope.UserID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Delete removes a campaign the scope owns.
func (r *CampaignRepository) Delete(scope models.Scope, id uuid.UUID) error {
	if scope.IsAdmin() {
		res, err := r.db.Exec(`DELETE FROM campaigns WHERE id = $1`, id)
		if err != nil {
			return err
		}
		return requireRow(res)
	}
	res, err := r.db.Exec(`DELETE FROM campaigns WHERE id = $1 AND user_id = $2`, id, scope.UserID)
	if err != nil {
		return err
	}
	return requireRow(res)
}
