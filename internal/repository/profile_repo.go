package repository

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/models"
)

const profileColumns = `id, user_id, role, company_name, contact_email, phone, address, created_at, updated_at`

// ProfileRepository provides data access methods for the profiles table.
type ProfileRepository struct {
	db *sqlx.DB
}

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// GetByUserID finds the profile belonging to a user.
func (r *ProfileRepository) GetByUserID(userID uuid.UUID) (*models.Profile, error) {
	var p models.Profile
	err := r.db.Get(&p, `SELECT `+profileColumns+` FROM profiles WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new profile.
func (r *ProfileRepository) Create(p *models.Profile) error {
	query := `
		INSERT INTO profiles (user_id, role, company_name, contact_email, phone, address)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(query, p.UserID, p.Role, p.CompanyName, p.ContactEmail, p.Phone, p.Address).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// List retrieves one page of profiles. Admin console only.
func (r *ProfileRepository) List(limit, offset int) ([]*models.Profile, error) {
	var profiles []*models.Profile
	err := r.db.Select(&profiles, `
		SELECT `+profileColumns+` FROM profiles ORDER BY created_at DESC LIMIT $1 OFFSET $2
	`, limit, offset)
	return profiles, err
}

// Count returns the total number of profiles.
func (r *ProfileRepository) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM profiles`)
	return n, err
}

// ListByRole retrieves all profiles with the given role, platform-wide.
func (r *ProfileRepository) ListByRole(role models.Role) ([]*models.Profile, error) {
	var profiles []*models.Profile
	err := r.db.Select(&profiles, `
		SELECT `+profileColumns+`
		FROM profiles
		WHERE role = $1
		ORDER BY company_name
	`, role)
	return profiles, err
}

// UpdateRole changes a profile's role. Admin console only.
func (r *ProfileRepository) UpdateRole(userID uuid.UUID, role models.Role) error {
	res, err := r.db.Exec(`
		UPDATE profiles SET role = $1, updated_at = now() WHERE user_id = $2
	`, role, userID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Update modifies the company contact fields of a profile.
func (r *ProfileRepository) Update(p *models.Profile) error {
	query := `
		UPDATE profiles
		SET company_name = $1, contact_email = $2, phone = $3, address = $4, updated_at = now()
		WHERE user_id = $5
		RETURNING updated_at
	`
	return r.db.QueryRow(query, p.CompanyName, p.ContactEmail, p.Phone, p.Address, p.UserID).
		Scan(&p.UpdatedAt)
}
