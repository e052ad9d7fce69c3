package services

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// SessionCookieName is the cookie carrying the signed admin session token
	SessionCookieName = "admin_session"

	// SessionDuration is the token lifetime from issuance
	SessionDuration = 24 * time.Hour

	// SessionUser is the single identity the shared-secret login maps to
	SessionUser = "admin"
)

// ErrInvalidCredentials is returned when the submitted password does not
// match the shared admin secret.
var ErrInvalidCredentials = errors.New("invalid credentials")

// SessionClaims is the fixed identity claim carried by every session token
type SessionClaims struct {
	User string `json:"user"`
	jwt.RegisteredClaims
}

// SessionService issues and verifies the stateless signed session tokens.
// There is no server-side session store and no revocation: a token stays
// valid until its natural expiry. The Authenticate/VerifyToken pair is kept
// free of any storage dependency so a real identity provider can replace
// just these two functions later.
type SessionService struct {
	secretKey     []byte
	adminPassword string
}

var sessionService *SessionService

// InitSessionService initializes the session service with the signing secret
// and the shared admin password
func InitSessionService(secretKey, adminPassword string) error {
	if secretKey == "" {
		return errors.New("session secret key cannot be empty")
	}
	if adminPassword == "" {
		return errors.New("admin password cannot be empty")
	}
	sessionService = &SessionService{
		secretKey:     []byte(secretKey),
		adminPassword: adminPassword,
	}
	return nil
}

// GetSessionService returns the initialized session service
func GetSessionService() *SessionService {
	if sessionService == nil {
		// Fallback to environment variables if not initialized
		secretKey := os.Getenv("SESSION_SECRET")
		if secretKey == "" {
			secretKey = "dev-secret-key-change-in-production"
		}
		sessionService = &SessionService{
			secretKey:     []byte(secretKey),
			adminPassword: os.Getenv("ADMIN_PASSWORD"),
		}
	}
	return sessionService
}

// Authenticate checks the submitted credential against the shared secret and
// issues a signed 24-hour token on exact match.
func (s *SessionService) Authenticate(password string) (string, error) {
	if s.adminPassword == "" ||
		subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) != 1 {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := SessionClaims{
		User: SessionUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "mo3d-cms",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// VerifyToken checks signature and expiry; nothing else. Returns the claims
// if valid.
func (s *SessionService) VerifyToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.User == "" {
		return nil, errors.New("token missing user claim")
	}
	return claims, nil
}

// Convenience functions that use the global service

func Authenticate(password string) (string, error) {
	return GetSessionService().Authenticate(password)
}

func VerifySessionToken(tokenString string) (*SessionClaims, error) {
	return GetSessionService().VerifyToken(tokenString)
}

// SetSessionCookie attaches the session token as an HTTP-only cookie scoped
// to the whole site. Secure is set in production only.
func SetSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		SessionCookieName,
		token,
		int(SessionDuration.Seconds()),
		"/",
		"",
		os.Getenv("APP_ENV") == "production",
		true,
	)
}

// ClearSessionCookie expires the cookie immediately
func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		SessionCookieName,
		"",
		-1,
		"/",
		"",
		os.Getenv("APP_ENV") == "production",
		true,
	)
}
