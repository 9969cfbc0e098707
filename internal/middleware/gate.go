package middleware

// gate.go holds the session boundary between the public site and the admin
// panel, plus the cache policy tied to admin writes. Authorization failures
// are silent redirects, never error pages.

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orlcoffee/coffee-shop-finder/internal/cache"
)

// RequireAdmin redirects anonymous visitors of admin pages to the login
// view.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !Auth(c).IsAdmin {
			return c.Redirect(http.StatusFound, "/login")
		}
		return next(c)
	}
}

// RedirectAuthenticated sends admins who land on the login view straight to
// the admin panel.
func RedirectAuthenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if Auth(c).IsAdmin {
			return c.Redirect(http.StatusFound, "/admin")
		}
		return next(c)
	}
}

// ClearCacheOnAdminWrite drops the whole cache before any POST by an
// authenticated admin is processed. Clearing before the handler's own reads
// guarantees the admin never sees stale data they just wrote, at the cost
// of a cold cache after every admin mutation.
func ClearCacheOnAdminWrite(store cache.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if store != nil && Auth(c).IsAdmin && c.Request().Method == http.MethodPost {
				store.InvalidateAll(c.Request().Context())
			}
			return next(c)
		}
	}
}
