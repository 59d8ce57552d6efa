package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestJWTRoundTrip(t *testing.T) {
	SetJWTSecret("unit-test-secret")

	userID := uuid.New()
	token, err := GenerateJWT(userID, "ops@agency.io", "agency")
	if err != nil {
		t.Fatalf("GenerateJWT() error: %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT() error: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("uid = %s, want %s", claims.UserID, userID)
	}
	if claims.Email != "ops@agency.io" {
		t.Errorf("email = %s", claims.Email)
	}
	if claims.Role != "agency" {
		t.Errorf("role = %s", claims.Role)
	}
}

func TestValidateJWTRejectsGarbageAndWrongKey(t *testing.T) {
	SetJWTSecret("unit-test-secret")

	if _, err := ValidateJWT("not-a-token"); err != ErrInvalidToken {
		t.Errorf("garbage token error = %v, want %v", err, ErrInvalidToken)
	}

	token, err := GenerateJWT(uuid.New(), "a@b.com", "advertiser")
	if err != nil {
		t.Fatal(err)
	}
	SetJWTSecret("rotated-secret")
	if _, err := ValidateJWT(token); err != ErrInvalidToken {
		t.Errorf("wrong key error = %v, want %v", err, ErrInvalidToken)
	}
}
