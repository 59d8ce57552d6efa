package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/cache"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/models"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/repository"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/utils"
)

func newAdminService(t *testing.T, db *sqlx.DB) *AdminService {
	t.Helper()
	mr := miniredis.RunT(t)
	profileCache := cache.NewProfileCache(cache.NewRedisClientFromAddr(mr.Addr()))
	return NewAdminService(repository.NewUserRepository(db), repository.NewProfileRepository(db), profileCache)
}

func TestListProfilesPaginates(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM profiles`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(120))
	mock.ExpectQuery(`FROM profiles ORDER BY created_at DESC LIMIT \$1 OFFSET \$2`).
		WithArgs(25, 50).
		WillReturnRows(sqlmock.NewRows(profileCols).
			AddRow(uuid.New(), uuid.New(), models.RoleAdvertiser, "Acme Media", nil, nil, nil, now, now))

	profiles, total, err := newAdminService(t, db).ListProfiles(3, 25)
	if err != nil {
		t.Fatalf("ListProfiles() error: %v", err)
	}
	if total != 120 {
		t.Errorf("total = %d, want 120", total)
	}
	if len(profiles) != 1 {
		t.Errorf("len = %d, want 1", len(profiles))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpdateRoleUnknownUser(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	userID := uuid.New()
	mock.ExpectQuery(`FROM users\s+WHERE id = \$1`).
		WithArgs(userID).
		WillReturnError(sql.ErrNoRows)

	err := newAdminService(t, db).UpdateRole(context.Background(), userID, models.RoleAgency)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("error = %v, want %v", err, sql.ErrNoRows)
	}
}

func TestUpdateRoleRejectsUnknownRole(t *testing.T) {
	db, _, cleanup := setupTestDB(t)
	defer cleanup()

	err := newAdminService(t, db).UpdateRole(context.Background(), uuid.New(), "superuser")
	if !errors.Is(err, utils.ErrInvalidRole) {
		t.Errorf("error = %v, want %v", err, utils.ErrInvalidRole)
	}
}
