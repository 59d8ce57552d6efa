package service

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/models"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/repository"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/utils"
)

var campaignCols = []string{
	"id", "user_id", "agency_id", "name", "description", "status", "budget", "daily_budget",
	"start_date", "end_date", "targeting_config", "created_at", "updated_at",
}

func mockCampaignRow(id, userID uuid.UUID, status models.CampaignStatus) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(campaignCols).
		AddRow(id, userID, nil, "Q3 Awareness", nil, status, 500.0, nil, now, nil, []byte("{}"), now, now)
}

func TestCreateCampaignBudgetValidation(t *testing.T) {
	db, _, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewCampaignService(repository.NewCampaignRepository(db), nil)
	scope := models.Scope{UserID: uuid.New(), Role: models.RoleAdvertiser}
	start := time.Now()
	end := start.Add(-24 * time.Hour)

	tests := []struct {
		name    string
		input   CampaignInput
		wantErr error
	}{
		{
			"negative budget",
			CampaignInput{Name: "c", Budget: -1, StartDate: start},
			utils.ErrInvalidBudget,
		},
		{
			"negative daily budget",
			CampaignInput{Name: "c", Budget: 100, DailyBudget: floatPtr(-5), StartDate: start},
			utils.ErrInvalidBudget,
		},
		{
			"missing start date",
			CampaignInput{Name: "c", Budget: 100},
			utils.ErrInvalidDateRange,
		},
		{
			"end before start",
			CampaignInput{Name: "c", Budget: 100, StartDate: start, EndDate: &end},
			utils.ErrInvalidDateRange,
		},
	}

	// No database expectations: every case must be rejected before a write.
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(scope, tt.input); !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateCampaignZeroBudgetAllowed(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	scope := models.Scope{UserID: uuid.New(), Role: models.RoleAdvertiser}
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO campaigns`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(uuid.New(), now, now))

	svc := NewCampaignService(repository.NewCampaignRepository(db), nil)
	c, err := svc.Create(scope, CampaignInput{Name: "zero", Budget: 0, StartDate: now})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if c.Status != models.CampaignDraft {
		t.Errorf("new campaign status = %s, want draft", c.Status)
	}
}

func TestUpdateStatusOnlyToggleAllowed(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	scope := models.Scope{UserID: uuid.New(), Role: models.RoleAdvertiser}
	campaignID := uuid.New()

	mock.ExpectQuery(`FROM campaigns WHERE id = \$1 AND user_id = \$2`).
		WithArgs(campaignID, scope.UserID).
		WillReturnRows(mockCampaignRow(campaignID, scope.UserID, models.CampaignDraft))

	svc := NewCampaignService(repository.NewCampaignRepository(db), nil)
	if _, err := svc.UpdateStatus(scope, campaignID, models.CampaignActive); !errors.Is(err, utils.ErrInvalidTransition) {
		t.Errorf("UpdateStatus(draft -> active) error = %v, want %v", err, utils.ErrInvalidTransition)
	}
}

func TestUpdateStatusActivePausedToggle(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	scope := models.Scope{UserID: uuid.New(), Role: models.RoleAdvertiser}
	campaignID := uuid.New()

	mock.ExpectQuery(`FROM campaigns WHERE id = \$1 AND user_id = \$2`).
		WithArgs(campaignID, scope.UserID).
		WillReturnRows(mockCampaignRow(campaignID, scope.UserID, models.CampaignActive))
	mock.ExpectExec(`UPDATE campaigns SET status = \$1`).
		WithArgs(models.CampaignPaused, campaignID, scope.UserID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := NewCampaignService(repository.NewCampaignRepository(db), nil)
	c, err := svc.UpdateStatus(scope, campaignID, models.CampaignPaused)
	if err != nil {
		t.Fatalf("UpdateStatus() error: %v", err)
	}
	if c.Status != models.CampaignPaused {
		t.Errorf("status = %s, want paused", c.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpdateBudgetValidatedBeforeWrite(t *testing.T) {
	db, _, cleanup := setupTestDB(t)
	defer cleanup()

	scope := models.Scope{UserID: uuid.New(), Role: models.RoleAdvertiser}
	svc := NewCampaignService(repository.NewCampaignRepository(db), nil)

	err := svc.UpdateBudget(scope, uuid.New(), -100, nil, time.Now(), nil)
	if !errors.Is(err, utils.ErrInvalidBudget) {
		t.Errorf("UpdateBudget() error = %v, want %v", err, utils.ErrInvalidBudget)
	}
}
