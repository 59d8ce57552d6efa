package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

// setupTestDB returns a sqlx.DB backed by sqlmock plus a cleanup func.
func setupTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error: %v", err)
	}
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock, func() { db.Close() }
}

func floatPtr(f float64) *float64 { return &f }

func intPtr(i int) *int { return &i }
