package service

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/models"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/repository"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/utils"
)

var userCols = []string{"id", "email", "password_hash", "is_active", "created_at", "updated_at"}

func TestRegisterRejectsAdminRole(t *testing.T) {
	db, _, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewAuthService(repository.NewUserRepository(db), repository.NewProfileRepository(db))

	_, _, _, err := svc.Register(RegisterInput{Email: "a@b.com", Password: "hunter22", Role: models.RoleAdmin})
	if !errors.Is(err, utils.ErrInvalidRole) {
		t.Errorf("admin signup error = %v, want %v", err, utils.ErrInvalidRole)
	}

	_, _, _, err = svc.Register(RegisterInput{Email: "a@b.com", Password: "hunter22", Role: "superuser"})
	if !errors.Is(err, utils.ErrInvalidRole) {
		t.Errorf("unknown role error = %v, want %v", err, utils.ErrInvalidRole)
	}
}

func TestRegisterRejectsTakenEmail(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(`FROM users`).
		WithArgs("taken@agency.io").
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(uuid.New(), "taken@agency.io", "x", true, now, now))

	svc := NewAuthService(repository.NewUserRepository(db), repository.NewProfileRepository(db))
	_, _, _, err := svc.Register(RegisterInput{
		Email:    " Taken@Agency.io ",
		Password: "hunter22",
		Role:     models.RoleAgency,
	})
	if !errors.Is(err, utils.ErrEmailTaken) {
		t.Errorf("error = %v, want %v", err, utils.ErrEmailTaken)
	}
}

func TestLoginVerifiesPassword(t *testing.T) {
	utils.SetJWTSecret("test-secret")

	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	userID := uuid.New()
	now := time.Now()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}

	userRow := func() *sqlmock.Rows {
		return sqlmock.NewRows(userCols).
			AddRow(userID, "ops@agency.io", string(hash), true, now, now)
	}

	svc := NewAuthService(repository.NewUserRepository(db), repository.NewProfileRepository(db))

	mock.ExpectQuery(`FROM users`).WithArgs("ops@agency.io").WillReturnRows(userRow())

	_, _, _, err = svc.Login("ops@agency.io", "wrong password")
	if !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("bad password error = %v, want %v", err, utils.ErrInvalidCredentials)
	}

	mock.ExpectQuery(`FROM users`).WithArgs("ops@agency.io").WillReturnRows(userRow())
	mock.ExpectQuery(`FROM profiles WHERE user_id = \$1`).
		WithArgs(userID).
		WillReturnRows(mockProfileRow(userID, models.RoleAgency))

	user, profile, token, err := svc.Login("OPS@agency.io", "correct horse")
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if user.ID != userID {
		t.Errorf("user id = %s, want %s", user.ID, userID)
	}
	if profile.Role != models.RoleAgency {
		t.Errorf("role = %s, want agency", profile.Role)
	}
	if token == "" {
		t.Error("empty session token")
	}
}

func TestLoginUnknownEmailAndInactiveAccount(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewAuthService(repository.NewUserRepository(db), repository.NewProfileRepository(db))

	mock.ExpectQuery(`FROM users`).WithArgs("ghost@agency.io").WillReturnError(sql.ErrNoRows)
	_, _, _, err := svc.Login("ghost@agency.io", "whatever")
	if !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("unknown email error = %v, want %v", err, utils.ErrInvalidCredentials)
	}

	now := time.Now()
	mock.ExpectQuery(`FROM users`).
		WithArgs("frozen@agency.io").
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(uuid.New(), "frozen@agency.io", "hash", false, now, now))
	_, _, _, err = svc.Login("frozen@agency.io", "whatever")
	if !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("inactive account error = %v, want %v", err, utils.ErrInvalidCredentials)
	}
}
