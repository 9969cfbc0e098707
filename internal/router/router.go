// Package router defines how HTTP routes are registered: the public pages,
// the login/logout pair and the admin panel behind its session gate. Route
// registration order mirrors the view precedence of the site: login and
// admin views are matched before the detail and grid catch-alls.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/orlcoffee/coffee-shop-finder/internal/cache"
	"github.com/orlcoffee/coffee-shop-finder/internal/config"
	"github.com/orlcoffee/coffee-shop-finder/internal/handler"
	"github.com/orlcoffee/coffee-shop-finder/internal/middleware"
)

// Register wires every route and the shared middleware onto the Echo
// instance. The session middleware runs first so every later gate and
// handler sees the resolved auth context; the cache-clear middleware runs
// next so an admin's own reads never see data from before their write.
func Register(e *echo.Echo, cfg config.Config, store cache.Store,
	pub *handler.PublicHandler, auth *handler.AuthHandler, admin *handler.AdminHandler) {

	e.Use(middleware.Session(cfg.SessionSecret))
	e.Use(middleware.ClearCacheOnAdminWrite(store))

	e.GET("/healthz", handler.Health)
	e.Static("/images", cfg.UploadDir)

	// Login and logout. Admins landing on the login view are pushed to
	// the panel by the gate.
	e.GET("/login", auth.LoginForm, middleware.RedirectAuthenticated)
	e.POST("/login", auth.Login, middleware.RedirectAuthenticated)
	e.POST("/logout", auth.Logout)

	// Admin panel; anonymous visitors are redirected to /login.
	g := e.Group("/admin", middleware.RequireAdmin)
	g.GET("", admin.Dashboard)
	g.GET("/new-coffee-shop", admin.NewShopForm)
	g.POST("/new-coffee-shop", admin.CreateShop)
	g.GET("/edit-coffee-shop", admin.EditShopForm)
	g.POST("/edit-coffee-shop", admin.UpdateShop)
	g.POST("/delete-coffee-shop", admin.DeleteShop)

	// Public pages. The comment URI also answers GET because a successful
	// submission redirects back to the URI it was posted to.
	e.GET("/shop/:slug", pub.ShopDetail)
	e.GET("/shop/:slug/comment", pub.ShopDetail)
	e.POST("/shop/:slug/comment", pub.SubmitComment)
	e.GET("/", pub.Home)
}
