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

func TestCreateDealClampsMargin(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	scope := models.Scope{UserID: uuid.New(), Role: models.RoleAdvertiser}
	now := time.Now()

	// A 75% margin must land in the database as 50%.
	mock.ExpectQuery(`INSERT INTO pmp_deals`).
		WithArgs(scope.UserID, "DEAL-1", "Premium Video", "The Trade Desk", string(models.DealFixedPrice),
			nil, "USD", 1, 50.0, "draft", nil, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(uuid.New(), now, now))

	svc := NewDealService(repository.NewPMPDealRepository(db))
	deal, err := svc.Create(scope, DealInput{
		DealID:           "DEAL-1",
		DealName:         "Premium Video",
		DSPName:          "The Trade Desk",
		DealType:         models.DealFixedPrice,
		Currency:         "USD",
		Priority:         1,
		MarginPercentage: 75,
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if deal.MarginPercentage != 50 {
		t.Errorf("margin = %v, want 50", deal.MarginPercentage)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateDealNegativeMarginClampsToZero(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	scope := models.Scope{UserID: uuid.New(), Role: models.RoleAdvertiser}
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO pmp_deals`).
		WithArgs(scope.UserID, "DEAL-2", "Display", "Amazon DSP", string(models.DealSecondPrice),
			nil, "EUR", 0, 0.0, "draft", nil, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(uuid.New(), now, now))

	svc := NewDealService(repository.NewPMPDealRepository(db))
	deal, err := svc.Create(scope, DealInput{
		DealID:           "DEAL-2",
		DealName:         "Display",
		DSPName:          "Amazon DSP",
		DealType:         models.DealSecondPrice,
		Currency:         "EUR",
		MarginPercentage: -12.5,
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if deal.MarginPercentage != 0 {
		t.Errorf("margin = %v, want 0", deal.MarginPercentage)
	}
}

func TestCreateDealRejectsUnknownTypeAndCurrency(t *testing.T) {
	db, _, cleanup := setupTestDB(t)
	defer cleanup()

	scope := models.Scope{UserID: uuid.New(), Role: models.RoleAdvertiser}
	svc := NewDealService(repository.NewPMPDealRepository(db))

	_, err := svc.Create(scope, DealInput{DealID: "D", DealName: "n", DSPName: "d", DealType: "auction", Currency: "USD"})
	if !errors.Is(err, utils.ErrInvalidDealType) {
		t.Errorf("unknown deal type error = %v, want %v", err, utils.ErrInvalidDealType)
	}

	_, err = svc.Create(scope, DealInput{DealID: "D", DealName: "n", DSPName: "d", DealType: models.DealFixedPrice, Currency: "JPY"})
	if !errors.Is(err, utils.ErrInvalidCurrency) {
		t.Errorf("unknown currency error = %v, want %v", err, utils.ErrInvalidCurrency)
	}
}
