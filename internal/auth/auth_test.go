package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestStaticVerifier(t *testing.T) {
	v := StaticVerifier{Password: "admin123"}

	if !v.Verify("admin123") {
		t.Error("expected correct password to verify")
	}
	if v.Verify("wrong") {
		t.Error("expected wrong password to fail")
	}
	if v.Verify("") {
		t.Error("expected empty password to fail")
	}
}

func TestBcryptVerifier(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	v := BcryptVerifier{Hash: string(hash)}

	if !v.Verify("admin123") {
		t.Error("expected correct password to verify")
	}
	if v.Verify("wrong") {
		t.Error("expected wrong password to fail")
	}
}

func TestGenerateAndParseAdminToken(t *testing.T) {
	tokenStr, err := GenerateAdminToken()
	if err != nil {
		t.Fatalf("GenerateAdminToken failed: %v", err)
	}

	token, claims, err := TokenClaims("Bearer " + tokenStr)
	if err != nil {
		t.Fatalf("TokenClaims failed: %v", err)
	}
	if !token.Valid {
		t.Error("expected a valid token")
	}
	if claims["role"] != "admin" {
		t.Errorf("expected role admin, got %v", claims["role"])
	}
	if claims["sub"] != "admin" {
		t.Errorf("expected sub admin, got %v", claims["sub"])
	}
}

func TestTokenClaimsRejectsGarbage(t *testing.T) {
	if _, _, err := TokenClaims("Bearer not-a-token"); err == nil {
		t.Error("expected an error for a malformed token")
	}
}
