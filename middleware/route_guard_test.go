package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/services"
)

func newGuardedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if err := services.InitSessionService("test-secret", "test-password"); err != nil {
		t.Fatalf("failed to init session service: %v", err)
	}

	router := gin.New()
	router.Use(RouteGuard())
	router.GET("/admin/dashboard", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/admin/login", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/en/products", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/api/v1/products", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func sessionToken(t *testing.T) string {
	t.Helper()
	token, err := services.Authenticate("test-password")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	return token
}

func TestRouteGuardRedirectsAnonymousAdmin(t *testing.T) {
	router := newGuardedRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	if got := w.Header().Get("Location"); got != "/admin/login" {
		t.Fatalf("expected redirect to /admin/login, got %q", got)
	}
}

func TestRouteGuardAllowsValidSession(t *testing.T) {
	router := newGuardedRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: services.SessionCookieName, Value: sessionToken(t)})
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRouteGuardRejectsGarbageToken(t *testing.T) {
	router := newGuardedRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: services.SessionCookieName, Value: "not-a-token"})
	router.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
}

func TestRouteGuardLoginPageAlwaysReachable(t *testing.T) {
	router := newGuardedRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRouteGuardLocaleRedirects(t *testing.T) {
	router := newGuardedRouter(t)

	// Root redirects to the default locale
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/en" {
		t.Fatalf("expected 302 to /en, got %d %q", w.Code, w.Header().Get("Location"))
	}

	// Unprefixed public path gets the default locale prepended
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products", nil))
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/en/products" {
		t.Fatalf("expected 302 to /en/products, got %d %q", w.Code, w.Header().Get("Location"))
	}

	// Locale-prefixed path passes through
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/en/products", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRouteGuardPassesAPIThrough(t *testing.T) {
	router := newGuardedRouter(t)

	// API paths are never redirected, even without a session
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
