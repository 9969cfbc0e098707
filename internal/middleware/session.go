package middleware // middleware provides shared request processing for handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orlcoffee/coffee-shop-finder/internal/utils"
)

// CookieName is the name of the session cookie. The cookie carries a signed
// token and has no max-age, so it lives exactly as long as the browser
// session.
const CookieName = "session"

const authKey = "auth"

// AuthContext is the per-request authentication state resolved from the
// session cookie. It is stored in the echo context rather than any global,
// so tests can inject whatever state they need.
type AuthContext struct {
	IsAdmin bool
	AdminID uint64
}

// Session returns a middleware that resolves the session cookie into an
// AuthContext. A missing, malformed or badly signed cookie simply yields an
// anonymous context; it is never an error, since most of the site is public.
func Session(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := AuthContext{}
			if ck, err := c.Cookie(CookieName); err == nil && ck.Value != "" {
				if id, err := utils.ParseSessionToken(secret, ck.Value); err == nil {
					auth = AuthContext{IsAdmin: true, AdminID: id}
				}
			}
			c.Set(authKey, auth)
			return next(c)
		}
	}
}

// Auth extracts the AuthContext stored by Session. Requests that somehow
// bypassed the middleware get the anonymous zero value.
func Auth(c echo.Context) AuthContext {
	if v, ok := c.Get(authKey).(AuthContext); ok {
		return v
	}
	return AuthContext{}
}

// NewSessionCookie builds the cookie holding a signed session token.
func NewSessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredSessionCookie builds a cookie that removes the session.
func ExpiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	}
}
