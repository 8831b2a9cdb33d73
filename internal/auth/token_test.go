package auth_test

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/bizcard-service/internal/auth"
	"github.com/spec-kit/bizcard-service/internal/domain"
)

const testSecret = "token-test-secret-at-least-32-chars!!"

func TestIssueVerify_Roundtrip(t *testing.T) {
	tm := auth.NewTokenManager(testSecret, time.Hour)
	want := domain.Identity{UserID: "user-1", IsAdmin: true, IsBusiness: false}

	token, exp, err := tm.Issue(want)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if !exp.After(time.Now()) {
		t.Errorf("expiry %v is not in the future", exp)
	}

	got, err := tm.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if got != want {
		t.Errorf("verify returned %+v, want %+v", got, want)
	}
}

func TestVerify_ExpiredToken(t *testing.T) {
	tm := auth.NewTokenManager(testSecret, time.Hour)

	claims := jwt.MapClaims{
		"sub":        "user-1",
		"isAdmin":    false,
		"isBusiness": true,
		"iat":        time.Now().Add(-2 * time.Hour).Unix(),
		"exp":        time.Now().Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := tm.Verify(token); err == nil {
		t.Error("expected error for expired token, got nil")
	}
}

func TestVerify_WrongKey(t *testing.T) {
	issuer := auth.NewTokenManager("a-different-secret-that-is-32-chars!", time.Hour)
	verifier := auth.NewTokenManager(testSecret, time.Hour)

	token, _, err := issuer.Issue(domain.Identity{UserID: "user-1"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := verifier.Verify(token); err == nil {
		t.Error("expected error for wrong signing key, got nil")
	}
}

func TestVerify_Malformed(t *testing.T) {
	tm := auth.NewTokenManager(testSecret, time.Hour)
	if _, err := tm.Verify("not.a.jwt"); err == nil {
		t.Error("expected error for malformed token, got nil")
	}
}

func TestVerify_WrongSigningMethod(t *testing.T) {
	tm := auth.NewTokenManager(testSecret, time.Hour)

	// "none" algorithm tokens must never verify.
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := tm.Verify(token); err == nil {
		t.Error("expected error for unsigned token, got nil")
	}
}
