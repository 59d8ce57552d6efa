package repository

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/models"
)

const listEntryColumns = `id, user_id, campaign_id, list_type, entry_type, value, description,
	is_global, is_active, created_at, updated_at`

// ListEntryFilter narrows a list query. Zero values mean "no filter".
type ListEntryFilter struct {
	ListType   models.ListType
	EntryType  models.EntryType
	CampaignID *uuid.UUID
}

// ListEntryRepository provides tenant-scoped data access for targeting list
// entries. One repository serves every entry type; the original console had
// a cloned screen per type, this layer parametrizes them away.
type ListEntryRepository struct {
	db *sqlx.DB
}

// NewListEntryRepository creates a new ListEntryRepository.
func NewListEntryRepository(db *sqlx.DB) *ListEntryRepository {
	return &ListEntryRepository{db: db}
}

// Create inserts one list entry.
func (r *ListEntryRepository) Create(e *models.ListEntry) error {
	query := `
		INSERT INTO list_entries (user_id, campaign_id, list_type, entry_type, value, description, is_global, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(query,
		e.UserID, e.CampaignID, e.ListType, e.EntryType, e.Value, e.Description, e.IsGlobal, e.IsActive,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

// BulkCreate inserts many entries in one transaction and returns how many
// rows were written.
func (r *ListEntryRepository) BulkCreate(entries []*models.ListEntry) (int, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(`
		INSERT INTO list_entries (user_id, campaign_id, list_type, entry_type, value, description, is_global, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	count := 0
	for _, e := range entries {
		if _, err := stmt.Exec(e.UserID, e.CampaignID, e.ListType, e.EntryType, e.Value, e.Description, e.IsGlobal, e.IsActive); err != nil {
			return 0, err
		}
		count++
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return count, nil
}

// List retrieves entries visible to the scope, optionally filtered.
func (r *ListEntryRepository) List(scope models.Scope, f ListEntryFilter) ([]*models.ListEntry, error) {
	query := `SELECT ` + listEntryColumns + ` FROM list_entries WHERE 1=1`
	args := []interface{}{}
	n := 0
	next := func(v interface{}) string {
		n++
		args = append(args, v)
		return placeholder(n)
	}

	if !scope.IsAdmin() {
		query += ` AND user_id = ` + next(scope.UserID)
	}
	if f.ListType != "" {
		query += ` AND list_type = ` + next(f.ListType)
	}
	if f.EntryType != "" {
		query += ` AND entry_type = ` + next(f.EntryType)
	}
	if f.CampaignID != nil {
		query += ` AND campaign_id = ` + next(*f.CampaignID)
	}
	query += ` ORDER BY created_at DESC`

	var entries []*models.ListEntry
	err := r.db.Select(&entries, query, args...)
	return entries, err
}

// Update rewrites the mutable fields of an entry the scope owns.
func (r *ListEntryRepository) Update(scope models.Scope, e *models.ListEntry) error {
	if scope.IsAdmin() {
		res, err := r.db.Exec(`
			UPDATE list_entries
			SET list_type = $1, entry_type = $2, value = $3, description = $4,
			    is_global = $5, is_active = $6, campaign_id = $7, updated_at = now()
			WHERE id = $8
		`, e.ListType, e.EntryType, e.Value, e.Description, e.IsGlobal, e.IsActive, e.CampaignID, e.ID)
		if err != nil {
			return err
		}
		return requireRow(res)
	}
	res, err := r.db.Exec(`
		UPDATE list_entries
		SET list_type = $1, entry_type = $2, value = $3, description = $4,
		    is_global = $5, is_active = $6, campaign_id = $7, updated_at = now()
		WHERE id = $8 AND user_id = $9
	`, e.ListType, e.EntryType, e.Value, e.Description, e.IsGlobal, e.IsActive, e.CampaignID, e.ID, scope.UserID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// SetActive flips the active flag of an entry the scope owns.
func (r *ListEntryRepository) SetActive(scope models.Scope, id uuid.UUID, active bool) error {
	if scope.IsAdmin() {
		res, err := r.db.Exec(`UPDATE list_entries SET is_active = $1, updated_at = now() WHERE id = $2`, active, id)
		if err != nil {
			return err
		}
		return requireRow(res)
	}
	res, err := r.db.Exec(`
		UPDATE list_entries SET is_active = $1, updated_at = now() WHERE id = $2 AND user_id = $3
	`, active, id, scope.UserID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Delete removes an entry the scope owns.
func (r *ListEntryRepository) Delete(scope models.Scope, id uuid.UUID) error {
	if scope.IsAdmin() {
		res, err := r.db.Exec(`DELETE FROM list_entries WHERE id = $1`, id)
		if err != nil {
			return err
		}
		return requireRow(res)
	}
	res, err := r.db.Exec(`DELETE FROM list_entries WHERE id = $1 AND user_id = $2`, id, scope.UserID)
	if err != nil {
		return err
	}
	return requireRow(res)
}
