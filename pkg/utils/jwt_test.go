package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestTokenRoundTrip(t *testing.T) {
	userId := uuid.New()

	token, err := CreateToken(userId, "approver", []string{"create_request", "approve_request"})
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != userId.String() {
		t.Errorf("user_id = %q, want %q", claims.UserID, userId)
	}
	if claims.Role != "approver" {
		t.Errorf("role = %q, want approver", claims.Role)
	}
	if len(claims.Permissions) != 2 || claims.Permissions[1] != "approve_request" {
		t.Errorf("permissions = %v, want the issued set", claims.Permissions)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, err := ValidateToken("not.a.token"); err == nil {
		t.Error("expected an error for a malformed token")
	}
}
