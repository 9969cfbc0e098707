package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orlcoffee/coffee-shop-finder/internal/config"
	"github.com/orlcoffee/coffee-shop-finder/internal/middleware"
	"github.com/orlcoffee/coffee-shop-finder/internal/repository"
	"github.com/orlcoffee/coffee-shop-finder/internal/utils"
	"github.com/orlcoffee/coffee-shop-finder/internal/view"
)

// loginFailedMessage is shown for both an unknown email and a wrong
// password, so the response reveals neither.
const loginFailedMessage = "Invalid username or password"

// AuthHandler bundles dependencies for the login and logout endpoints.
type AuthHandler struct {
	Cfg    config.Config
	Admins AdminStore
}

func NewAuthHandler(cfg config.Config, admins AdminStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Admins: admins}
}

// LoginForm renders the admin login form. Authenticated admins never reach
// this handler; the gate middleware redirects them to /admin first.
func (h *AuthHandler) LoginForm(c echo.Context) error {
	return h.renderLogin(c, "")
}

// Login attempts authentication from the posted form. Success sets the
// session cookie and redirects to the admin panel; failure falls through to
// the login view with an inline message, not a redirect.
func (h *AuthHandler) Login(c echo.Context) error {
	if c.FormValue("login") == "" {
		return c.Redirect(http.StatusFound, "/login")
	}

	email := c.FormValue("email")
	password := c.FormValue("password")

	a, err := h.Admins.Authenticate(c.Request().Context(), email, password)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidCredentials) {
			return h.renderLogin(c, loginFailedMessage)
		}
		return err
	}

	tok, err := utils.NewSessionToken(h.Cfg.SessionSecret, a.ID)
	if err != nil {
		return err
	}
	c.SetCookie(middleware.NewSessionCookie(tok))
	return c.Redirect(http.StatusFound, "/admin")
}

// Logout destroys the session and returns to the public grid. Posting
// logout without an admin session is silently redirected home.
func (h *AuthHandler) Logout(c echo.Context) error {
	if !middleware.Auth(c).IsAdmin || c.FormValue("logout") == "" {
		return c.Redirect(http.StatusFound, "/")
	}
	c.SetCookie(middleware.ExpiredSessionCookie())
	return c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) renderLogin(c echo.Context, errMsg string) error {
	return c.Render(http.StatusOK, "login.html", view.LoginView{
		Page:  view.Page{AppName: h.Cfg.AppName},
		Error: errMsg,
	})
}
