package repository

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/models"
)

const commissionColumns = `id, user_id, applies_to_user_id, commission_type, percentage, is_active, created_at, updated_at`

// CommissionRepository provides data access for commission rules. All
// mutations are gated to the admin role before they reach this layer.
type CommissionRepository struct {
	db *sqlx.DB
}

// NewCommissionRepository creates a new CommissionRepository.
func NewCommissionRepository(db *sqlx.DB) *CommissionRepository {
	return &CommissionRepository{db: db}
}

// Create inserts a commission rule.
func (r *CommissionRepository) Create(c *models.Commission) error {
	query := `
		INSERT INTO commissions (user_id, applies_to_user_id, commission_type, percentage, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(query, c.UserID, c.AppliesToUserID, c.CommissionType, c.Percentage, c.IsActive).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// List retrieves all commission rules.
func (r *CommissionRepository) List() ([]*models.Commission, error) {
	var rules []*models.Commission
	err := r.db.Select(&rules, `SELECT `+commissionColumns+` FROM commissions ORDER BY created_at DESC`)
	return rules, err
}

// ListForUser retrieves the rules attached to one user.
func (r *CommissionRepository) ListForUser(userID uuid.UUID) ([]*models.Commission, error) {
	var rules []*models.Commission
	err := r.db.Select(&rules, `
		SELECT `+commissionColumns+`
		FROM commissions
		WHERE user_id = $1 OR applies_to_user_id = $1
		ORDER BY created_at DESC
	`, userID)
	return rules, err
}

// SetActive flips the active flag of a rule.
func (r *CommissionRepository) SetActive(id uuid.UUID, active bool) error {
	res, err := r.db.Exec(`
		UPDATE commissions SET is_active = $1, updated_at = now() WHERE id = $2
	`, active, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
