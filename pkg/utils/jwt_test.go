package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestTokenRoundTrip(t *testing.T) {
	AppConfig.JWTSecret = "test-secret"

	userId := uuid.New()
	token, err := CreateToken(userId, "admin")
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != userId.String() {
		t.Errorf("user id = %q, want %q", claims.UserID, userId.String())
	}
	if claims.Role != "admin" {
		t.Errorf("role = %q, want admin", claims.Role)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	AppConfig.JWTSecret = "test-secret"

	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
