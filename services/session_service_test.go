package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func newTestSessionService(t *testing.T) *SessionService {
	t.Helper()
	svc := &SessionService{
		secretKey:     []byte("test-secret"),
		adminPassword: "5550555",
	}
	return svc
}

func TestSessionRoundTrip(t *testing.T) {
	svc := newTestSessionService(t)

	token, err := svc.Authenticate("5550555")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}

	claims, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims.User != SessionUser {
		t.Fatalf("expected user %q, got %q", SessionUser, claims.User)
	}

	expires := claims.ExpiresAt.Time
	issued := claims.IssuedAt.Time
	if got := expires.Sub(issued); got != SessionDuration {
		t.Fatalf("expected %v lifetime, got %v", SessionDuration, got)
	}
}

func TestSessionWrongPassword(t *testing.T) {
	svc := newTestSessionService(t)

	if _, err := svc.Authenticate("wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Authenticate(""); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSessionEmptyConfiguredPassword(t *testing.T) {
	svc := &SessionService{secretKey: []byte("test-secret")}

	// An unset admin password must never authenticate anything
	if _, err := svc.Authenticate(""); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSessionTamperedToken(t *testing.T) {
	svc := newTestSessionService(t)

	token, err := svc.Authenticate("5550555")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := svc.VerifyToken(tampered); err == nil {
		t.Fatal("expected tampered token to fail verification")
	}
}

func TestSessionWrongKeyRejected(t *testing.T) {
	svc := newTestSessionService(t)
	other := &SessionService{secretKey: []byte("other-secret"), adminPassword: "5550555"}

	token, err := other.Authenticate("5550555")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if _, err := svc.VerifyToken(token); err == nil {
		t.Fatal("expected token signed with another key to fail")
	}
}

func TestSessionExpiredToken(t *testing.T) {
	svc := newTestSessionService(t)

	claims := SessionClaims{
		User: SessionUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(svc.secretKey)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if _, err := svc.VerifyToken(token); err == nil {
		t.Fatal("expected expired token to fail verification")
	}
}

func TestSessionMissingUserClaim(t *testing.T) {
	svc := newTestSessionService(t)

	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(svc.secretKey)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if _, err := svc.VerifyToken(token); err == nil || !strings.Contains(err.Error(), "user claim") {
		t.Fatalf("expected missing user claim error, got %v", err)
	}
}
