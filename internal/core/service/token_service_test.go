package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jgmedellin/coffee-shop-api/internal/core/domain"
)

func TestTokenService_IssueVerify_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", 2*time.Hour)

	token, err := svc.Issue("a@x.com", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	email, role, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if email != "a@x.com" {
		t.Fatalf("unexpected email: %s", email)
	}
	if role != domain.RoleAdmin {
		t.Fatalf("unexpected role: %s", role)
	}
}

func TestTokenService_Verify_WrongKey(t *testing.T) {
	issuer := NewTokenService("secret", time.Hour)
	verifier := NewTokenService("other-secret", time.Hour)

	token, err := issuer.Issue("a@x.com", domain.RoleUser)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, _, err := verifier.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_Verify_Expired(t *testing.T) {
	svc := NewTokenService("secret", 2*time.Hour)

	issued := time.Now().UTC()
	svc.now = func() time.Time { return issued }

	token, err := svc.Issue("a@x.com", domain.RoleUser)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Just past the 2h validity window.
	svc.now = func() time.Time { return issued.Add(2*time.Hour + time.Minute) }
	if _, _, err := svc.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}

	// Still inside the window.
	svc.now = func() time.Time { return issued.Add(time.Hour) }
	if _, _, err := svc.Verify(token); err != nil {
		t.Fatalf("expected valid token inside window, got %v", err)
	}
}

func TestTokenService_Verify_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		if _, _, err := svc.Verify(tok); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", tok, err)
		}
	}
}

func TestTokenService_Verify_MissingRoleDefaultsToUser(t *testing.T) {
	secret := "secret"
	claims := jwt.MapClaims{
		"sub": "a@x.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	svc := NewTokenService(secret, time.Hour)
	_, role, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if role != domain.RoleUser {
		t.Fatalf("expected default role USER, got %s", role)
	}
}

func TestTokenService_Verify_RejectsUnexpectedAlgorithm(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "a@x.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	svc := NewTokenService("secret", time.Hour)
	if _, _, err := svc.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for alg=none, got %v", err)
	}
}
