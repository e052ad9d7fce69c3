package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/services"
)

func newProtectedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if err := services.InitSessionService("test-secret", "test-password"); err != nil {
		t.Fatalf("failed to init session service: %v", err)
	}

	router := gin.New()
	router.GET("/protected", AdminAuthMiddleware(), func(c *gin.Context) {
		user := c.GetString("sessionUser")
		c.String(http.StatusOK, user)
	})
	return router
}

func TestAdminAuthNoToken(t *testing.T) {
	router := newProtectedRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAdminAuthCookieToken(t *testing.T) {
	router := newProtectedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: services.SessionCookieName, Value: sessionToken(t)})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != services.SessionUser {
		t.Fatalf("expected session user in context, got %q", w.Body.String())
	}
}

func TestAdminAuthBearerToken(t *testing.T) {
	router := newProtectedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+sessionToken(t))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestAdminAuthMalformedHeader(t *testing.T) {
	router := newProtectedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAdminAuthInvalidToken(t *testing.T) {
	router := newProtectedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: services.SessionCookieName, Value: "garbage"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
