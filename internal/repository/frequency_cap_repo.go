package repository

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/models"
)

const capColumns = `id, user_id, campaign_id, cap_type, max_impressions, time_window_hours,
	is_active, created_at, updated_at`

// FrequencyCapRepository provides tenant-scoped data access for frequency caps.
type FrequencyCapRepository struct {
	db *sqlx.DB
}

// NewFrequencyCapRepository creates a new FrequencyCapRepository.
func NewFrequencyCapRepository(db *sqlx.DB) *FrequencyCapRepository {
	return &FrequencyCapRepository{db: db}
}

// Create inserts a new cap.
func (r *FrequencyCapRepository) Create(cap *models.FrequencyCap) error {
	query := `
		INSERT INTO frequency_caps (user_id, campaign_id, cap_type, max_impressions, time_window_hours, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(query,
		cap.UserID, cap.CampaignID, cap.CapType, cap.MaxImpressions, cap.TimeWindowHours, cap.IsActive,
	).Scan(&cap.ID, &cap.CreatedAt, &cap.UpdatedAt)
}

// List retrieves caps visible to the scope.
func (r *FrequencyCapRepository) List(scope models.Scope) ([]*models.FrequencyCap, error) {
	var caps []*models.FrequencyCap
	if scope.IsAdmin() {
		err := r.db.Select(&caps, `SELECT `+capColumns+` FROM frequency_caps ORDER BY created_at DESC`)
		return caps, err
	}
	err := r.db.Select(&caps, `
		SELECT `+capColumns+` FROM frequency_caps WHERE user_id = $1 ORDER BY created_at DESC
	`, scope.UserID)
	return caps, err
}

// GetByID retrieves one cap if the scope may see it.
func (r *FrequencyCapRepository) GetByID(scope models.Scope, id uuid.UUID) (*models.FrequencyCap, error) {
	var cap models.FrequencyCap
	if scope.IsAdmin() {
		if err := r.db.Get(&cap, `SELECT `+capColumns+` FROM frequency_caps WHERE id = $1`, id); err != nil {
			return nil, err
		}
		return &cap, nil
	}
	err := r.db.Get(&cap, `
		SELECT `+capColumns+` FROM frequency_caps WHERE id = $1 AND user_id = $2
	`, id, scope.UserID)
	if err != nil {
		return nil, err
	}
	return &cap, nil
}

// Update rewrites a cap the scope owns.
func (r *FrequencyCapRepository) Update(scope models.Scope, cap *models.FrequencyCap) error {
	if scope.IsAdmin() {
		res, err := r.db.Exec(`
			UPDATE frequency_caps
			SET cap_type = $1, max_impressions = $2, time_window_hours = $3, is_active = $4, updated_at = now()
			WHERE id = $5
		`, cap.CapType, cap.MaxImpressions, cap.TimeWindowHours, cap.IsActive, cap.ID)
		if err != nil {
			return err
		}
		return requireRow(res)
	}
	res, err := r.db.Exec(`
		UPDATE frequency_caps
		SET cap_type = $1, max_impressions = $2, time_window_hours = $3, is_active = $4, updated_at = now()
		WHERE id = $5 AND user_id = $6
	`, cap.CapType, cap.MaxImpressions, cap.TimeWindowHours, cap.IsActive, cap.ID, scope.UserID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Delete removes a cap the scope owns.
func (r *FrequencyCapRepository) Delete(scope models.Scope, id uuid.UUID) error {
	if scope.IsAdmin() {
		res, err := r.db.Exec(`DELETE FROM frequency_caps WHERE id = $1`, id)
		if err != nil {
			return err
		}
		return requireRow(res)
	}
	res, err := r.db.Exec(`DELETE FROM frequency_caps WHERE id = $1 AND user_id = $2`, id, scope.UserID)
	if err != nil {
		return err
	}
	return requireRow(res)
}
