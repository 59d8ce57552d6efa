package repository

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/models"
)

// RelationshipRepository provides data access for agency-advertiser links.
type RelationshipRepository struct {
	db *sqlx.DB
}

// NewRelationshipRepository creates a new RelationshipRepository.
func NewRelationshipRepository(db *sqlx.DB) *RelationshipRepository {
	return &RelationshipRepository{db: db}
}

// Create inserts a new link between an agency and an advertiser.
func (r *RelationshipRepository) Create(rel *models.AgencyAdvertiser) error {
	query := `
		INSERT INTO agency_advertisers (agency_id, advertiser_id, is_active)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	return r.db.QueryRow(query, rel.AgencyID, rel.AdvertiserID, rel.IsActive).
		Scan(&rel.ID, &rel.CreatedAt)
}

// GetByID retrieves one link.
func (r *RelationshipRepository) GetByID(id uuid.UUID) (*models.AgencyAdvertiser, error) {
	var rel models.AgencyAdvertiser
	err := r.db.Get(&rel, `
		SELECT id, agency_id, advertiser_id, is_active, created_at
		FROM agency_advertisers
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	return &rel, nil
}

// Exists reports whether any link (active or not) already joins the pair.
func (r *RelationshipRepository) Exists(agencyID, advertiserID uuid.UUID) (bool, error) {
	var n int
	err := r.db.Get(&n, `
		SELECT COUNT(*) FROM agency_advertisers WHERE agency_id = $1 AND advertiser_id = $2
	`, agencyID, advertiserID)
	return n > 0, err
}

// ActiveExists reports whether an active link joins the pair. This is the
// gate for agency access to an advertiser's campaigns.
func (r *RelationshipRepository) ActiveExists(agencyID, advertiserID uuid.UUID) (bool, error) {
	var n int
	err := r.db.Get(&n, `
		SELECT COUNT(*) FROM agency_advertisers
		WHERE agency_id = $1 AND advertiser_id = $2 AND is_active = TRUE
	`, agencyID, advertiserID)
	return n > 0, err
}

// SetActive flips the active flag of a link owned by the agency.
func (r *RelationshipRepository) SetActive(agencyID, id uuid.UUID, active bool) error {
	res, err := r.db.Exec(`
		UPDATE agency_advertisers SET is_active = $1 WHERE id = $2 AND agency_id = $3
	`, active, id, agencyID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// ListManaged returns the advertiser profiles linked to an agency, joined
// with the relationship row.
func (r *RelationshipRepository) ListManaged(agencyID uuid.UUID) ([]*models.ManagedAdvertiser, error) {
	rows, err := r.db.Queryx(`
		SELECT aa.id, aa.is_active,
		       p.id, p.user_id, p.role, p.company_name, p.contact_email, p.phone, p.address,
		       p.created_at, p.updated_at
		FROM agency_advertisers aa
		JOIN profiles p ON p.user_id = aa.advertiser_id
		WHERE aa.agency_id = $1 AND p.role = 'advertiser'
		ORDER BY p.company_name
	`, agencyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var managed []*models.ManagedAdvertiser
	for rows.Next() {
		var m models.ManagedAdvertiser
		if err := rows.Scan(
			&m.RelationshipID,
			&m.IsActive,
			&m.Profile.ID,
			&m.Profile.UserID,
			&m.Profile.Role,
			&m.Profile.CompanyName,
			&m.Profile.ContactEmail,
			&m.Profile.Phone,
			&m.Profile.Address,
			&m.Profile.CreatedAt,
			&m.Profile.UpdatedAt,
		); err != nil {
			return nil, err
		}
		managed = append(managed, &m)
	}
	return managed, rows.Err()
}
