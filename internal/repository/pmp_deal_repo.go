package repository

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/models"
)

const dealColumns = `id, user_id, deal_id, deal_name, dsp_name, deal_type, floor_price, currency,
	priority, margin_percentage, status, description, start_date, end_date, created_at, updated_at`

// PMPDealRepository provides tenant-scoped data access for PMP deals.
type PMPDealRepository struct {
	db *sqlx.DB
}

// NewPMPDealRepository creates a new PMPDealRepository.
func NewPMPDealRepository(db *sqlx.DB) *PMPDealRepository {
	return &PMPDealRepository{db: db}
}

// Create inserts a deal.
func (r *PMPDealRepository) Create(d *models.PMPDeal) error {
	query := `
		INSERT INTO pmp_deals (user_id, deal_id, deal_name, dsp_name, deal_type, floor_price,
			currency, priority, margin_percentage, status, description, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(query,
		d.UserID, d.DealID, d.DealName, d.DSPName, d.DealType, d.FloorPrice,
		d.Currency, d.Priority, d.MarginPercentage, d.Status, d.Description, d.StartDate, d.EndDate,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
}

// List retrieves deals visible to the scope.
func (r *PMPDealRepository) List(scope models.Scope) ([]*models.PMPDeal, error) {
	var deals []*models.PMPDeal
	if scope.IsAdmin() {
		err := r.db.Select(&deals, `SELECT `+dealColumns+` FROM pmp_deals ORDER BY created_at DESC`)
		return deals, err
	}
	err := r.db.Select(&deals, `
		SELECT `+dealColumns+` FROM pmp_deals WHERE user_id = $1 ORDER BY created_at DESC
	`, scope.UserID)
	return deals, err
}

// GetByID retrieves one deal if the scope may see it.
func (r *PMPDealRepository) GetByID(scope models.Scope, id uuid.UUID) (*models.PMPDeal, error) {
	var d models.PMPDeal
	if scope.IsAdmin() {
		if err := r.db.Get(&d, `SELECT `+dealColumns+` FROM pmp_deals WHERE id = $1`, id); err != nil {
			return nil, err
		}
		return &d, nil
	}
	err := r.db.Get(&d, `SELECT `+dealColumns+` FROM pmp_deals WHERE id = $1 AND user_id = $2`, id, scope.UserID)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Update rewrites a deal the scope owns.
func (r *PMPDealRepository) Update(scope models.Scope, d *models.PMPDeal) error {
	set := `deal_id = $1, deal_name = $2, dsp_name = $3, deal_type = $4, floor_price = $5,
		currency = $6, priority = $7, margin_percentage = $8, status = $9, description = $10,
		start_date = $11, end_date = $12, updated_at = now()`
	args := []interface{}{
		d.DealID, d.DealName, d.DSPName, d.DealType, d.FloorPrice,
		d.Currency, d.Priority, d.MarginPercentage, d.Status, d.Description,
		d.StartDate, d.EndDate,
	}
	if scope.IsAdmin() {
		res, err := r.db.Exec(`UPDATE pmp_deals SET `+set+` WHERE id = $13`, append(args, d.ID)...)
		if err != nil {
			return err
		}
		return requireRow(res)
	}
	res, err := r.db.Exec(`UPDATE pmp_deals SET `+set+` WHERE id = $13 AND user_id = $14`,
		append(args, d.ID, scope.UserID)...)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Delete removes a deal the scope owns.
func (r *PMPDealRepository) Delete(scope models.Scope, id uuid.UUID) error {
	if scope.IsAdmin() {
		res, err := r.db.Exec(`DELETE FROM pmp_deals WHERE id = $1`, id)
		if err != nil {
			return err
		}
		return requireRow(res)
	}
	res, err := r.db.Exec(`DELETE FROM pmp_deals WHERE id = $1 AND user_id = $2`, id, scope.UserID)
	if err != nil {
		return err
	}
	return requireRow(res)
}
