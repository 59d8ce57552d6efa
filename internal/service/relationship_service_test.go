package service

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/models"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/repository"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/utils"
)

var profileCols = []string{"id", "user_id", "role", "company_name", "contact_email", "phone", "address", "created_at", "updated_at"}

func mockProfileRow(userID uuid.UUID, role models.Role) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(profileCols).
		AddRow(uuid.New(), userID, role, "Acme Media", nil, nil, nil, now, now)
}

func newRelationshipService(db *sqlx.DB) *RelationshipService {
	return NewRelationshipService(
		repository.NewRelationshipRepository(db),
		repository.NewProfileRepository(db),
		repository.NewCampaignRepository(db),
	)
}

func TestLinkCreatesActiveRelationship(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	scope := models.Scope{UserID: uuid.New(), Role: models.RoleAgency}
	advertiserID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`FROM profiles WHERE user_id = \$1`).
		WithArgs(advertiserID).
		WillReturnRows(mockProfileRow(advertiserID, models.RoleAdvertiser))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM agency_advertisers WHERE agency_id = \$1 AND advertiser_id = \$2`).
		WithArgs(scope.UserID, advertiserID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO agency_advertisers`).
		WithArgs(scope.UserID, advertiserID, true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(uuid.New(), now))

	rel, err := newRelationshipService(db).Link(scope, advertiserID)
	if err != nil {
		t.Fatalf("Link() error: %v", err)
	}
	if !rel.IsActive {
		t.Error("new link should be active")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestLinkRejectsNonAdvertiserTarget(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	scope := models.Scope{UserID: uuid.New(), Role: models.RoleAgency}
	targetID := uuid.New()

	mock.ExpectQuery(`FROM profiles WHERE user_id = \$1`).
		WithArgs(targetID).
		WillReturnRows(mockProfileRow(targetID, models.RoleAgency))

	_, err := newRelationshipService(db).Link(scope, targetID)
	if !errors.Is(err, utils.ErrInvalidRole) {
		t.Errorf("error = %v, want %v", err, utils.ErrInvalidRole)
	}
}

func TestLinkRejectsDuplicatePairEvenWhenInactive(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	scope := models.Scope{UserID: uuid.New(), Role: models.RoleAgency}
	advertiserID := uuid.New()

	mock.ExpectQuery(`FROM profiles WHERE user_id = \$1`).
		WithArgs(advertiserID).
		WillReturnRows(mockProfileRow(advertiserID, models.RoleAdvertiser))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM agency_advertisers WHERE agency_id = \$1 AND advertiser_id = \$2`).
		WithArgs(scope.UserID, advertiserID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	_, err := newRelationshipService(db).Link(scope, advertiserID)
	if !errors.Is(err, utils.ErrRelationshipExists) {
		t.Errorf("error = %v, want %v", err, utils.ErrRelationshipExists)
	}
}

func TestAdvertiserCampaignsRequireActiveLink(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	scope := models.Scope{UserID: uuid.New(), Role: models.RoleAgency}
	advertiserID := uuid.New()

	// Inactive pair: counts zero active links, so access is denied.
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM agency_advertisers\s+WHERE agency_id = \$1 AND advertiser_id = \$2 AND is_active = TRUE`).
		WithArgs(scope.UserID, advertiserID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	_, err := newRelationshipService(db).AdvertiserCampaigns(scope, advertiserID)
	if !errors.Is(err, utils.ErrForbidden) {
		t.Errorf("error = %v, want %v", err, utils.ErrForbidden)
	}
}

func TestAdvertiserCampaignsListedThroughActiveLink(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	scope := models.Scope{UserID: uuid.New(), Role: models.RoleAgency}
	advertiserID := uuid.New()
	campaignID := uuid.New()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM agency_advertisers\s+WHERE agency_id = \$1 AND advertiser_id = \$2 AND is_active = TRUE`).
		WithArgs(scope.UserID, advertiserID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`FROM campaigns\s+WHERE user_id = \$1`).
		WithArgs(advertiserID).
		WillReturnRows(mockCampaignRow(campaignID, advertiserID, models.CampaignActive))

	campaigns, err := newRelationshipService(db).AdvertiserCampaigns(scope, advertiserID)
	if err != nil {
		t.Fatalf("AdvertiserCampaigns() error: %v", err)
	}
	if len(campaigns) != 1 || campaigns[0].ID != campaignID {
		t.Errorf("campaigns = %v, want the advertiser's one campaign", campaigns)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSetLinkActiveScopedToOwningAgency(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	scope := models.Scope{UserID: uuid.New(), Role: models.RoleAgency}
	linkID := uuid.New()

	// Another agency's link: the scoped update touches zero rows.
	mock.ExpectExec(`UPDATE agency_advertisers SET is_active = \$1 WHERE id = \$2 AND agency_id = \$3`).
		WithArgs(false, linkID, scope.UserID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := newRelationshipService(db).SetActive(scope, linkID, false)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("error = %v, want %v", err, sql.ErrNoRows)
	}
}

func TestSetLinkActiveReturnsUpdatedRow(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	scope := models.Scope{UserID: uuid.New(), Role: models.RoleAgency}
	linkID := uuid.New()
	advertiserID := uuid.New()
	now := time.Now()

	mock.ExpectExec(`UPDATE agency_advertisers SET is_active = \$1 WHERE id = \$2 AND agency_id = \$3`).
		WithArgs(false, linkID, scope.UserID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`FROM agency_advertisers\s+WHERE id = \$1`).
		WithArgs(linkID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "agency_id", "advertiser_id", "is_active", "created_at"}).
			AddRow(linkID, scope.UserID, advertiserID, false, now))

	rel, err := newRelationshipService(db).SetActive(scope, linkID, false)
	if err != nil {
		t.Fatalf("SetActive() error: %v", err)
	}
	if rel.IsActive {
		t.Error("link should be inactive after toggle")
	}
}
