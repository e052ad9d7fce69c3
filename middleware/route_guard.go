package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/models"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/services"
)

const adminLoginPath = "/admin/login"

// RouteGuard is the request-level gate at the edge of the router.
//
// Admin page paths (everything under /admin except the login page and API
// sub-paths) require a valid, unexpired session token; absence or
// verification failure redirects to the login page. API endpoints are passed
// through here and verify the token themselves (AdminAuthMiddleware), failing
// closed with 401 instead of redirecting.
//
// Non-admin public paths are not gated; they undergo locale-prefix
// normalization instead: a path whose first segment is not a recognized
// locale is redirected under the fallback locale. Paths containing a dot
// (static assets) are never touched.
func RouteGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if strings.HasPrefix(path, "/api") || strings.Contains(path, ".") {
			c.Next()
			return
		}

		if path == adminLoginPath {
			c.Next()
			return
		}

		if strings.HasPrefix(path, "/admin") {
			token, err := c.Cookie(services.SessionCookieName)
			if err != nil || token == "" {
				c.Redirect(http.StatusFound, adminLoginPath)
				c.Abort()
				return
			}
			if _, err := services.VerifySessionToken(token); err != nil {
				c.Redirect(http.StatusFound, adminLoginPath)
				c.Abort()
				return
			}
			c.Next()
			return
		}

		// Public path: make sure it starts with a recognized locale segment
		if path == "/" {
			c.Redirect(http.StatusFound, "/"+models.DefaultLocale)
			c.Abort()
			return
		}
		segment := strings.SplitN(strings.TrimPrefix(path, "/"), "/", 2)[0]
		if !models.IsSupportedLocale(segment) {
			c.Redirect(http.StatusFound, "/"+models.DefaultLocale+path)
			c.Abort()
			return
		}

		c.Next()
	}
}
