package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/models"
)

var listEntryRows = []string{
	"id", "user_id", "campaign_id", "list_type", "entry_type", "value", "description",
	"is_global", "is_active", "created_at", "updated_at",
}

func listEntryRow(userID uuid.UUID) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(listEntryRows).
		AddRow(uuid.New(), userID, nil, "blocklist", "domain", "spam.example", nil, true, true, now, now)
}

func TestListEntriesFilterCombination(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	userID := uuid.New()
	scope := models.Scope{UserID: userID, Role: models.RoleAdvertiser}

	mock.ExpectQuery(`AND user_id = \$1 AND list_type = \$2 AND entry_type = \$3`).
		WithArgs(userID, models.ListBlock, models.EntryDomain).
		WillReturnRows(listEntryRow(userID))

	repo := NewListEntryRepository(db)
	entries, err := repo.List(scope, ListEntryFilter{
		ListType:  models.ListBlock,
		EntryType: models.EntryDomain,
	})
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("List() returned %d entries, want 1", len(entries))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestListEntriesAdminSkipsOwnerFilter(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	scope := models.Scope{UserID: uuid.New(), Role: models.RoleAdmin}

	mock.ExpectQuery(`WHERE 1=1 AND list_type = \$1`).
		WithArgs(models.ListAllow).
		WillReturnRows(listEntryRow(uuid.New()))

	repo := NewListEntryRepository(db)
	if _, err := repo.List(scope, ListEntryFilter{ListType: models.ListAllow}); err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestBulkCreateCountsRows(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	userID := uuid.New()
	entries := []*models.ListEntry{
		{UserID: userID, ListType: models.ListBlock, EntryType: models.EntryDomain, Value: "a.example", IsActive: true},
		{UserID: userID, ListType: models.ListBlock, EntryType: models.EntryDomain, Value: "b.example", IsActive: true},
		{UserID: userID, ListType: models.ListBlock, EntryType: models.EntryDomain, Value: "c.example", IsActive: true},
	}

	mock.ExpectBegin()
	prep := mock.ExpectPrepare(`INSERT INTO list_entries`)
	for range entries {
		prep.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	repo := NewListEntryRepository(db)
	count, err := repo.BulkCreate(entries)
	if err != nil {
		t.Fatalf("BulkCreate() error: %v", err)
	}
	if count != 3 {
		t.Errorf("BulkCreate() count = %d, want 3", count)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
