package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/orlcoffee/coffee-shop-finder/internal/cache"
	"github.com/orlcoffee/coffee-shop-finder/internal/config"
	"github.com/orlcoffee/coffee-shop-finder/internal/middleware"
	"github.com/orlcoffee/coffee-shop-finder/internal/model"
	"github.com/orlcoffee/coffee-shop-finder/internal/repository"
	"github.com/orlcoffee/coffee-shop-finder/internal/view"
)

// PublicHandler serves the pages every visitor can reach: the shop grid
// with its filters, shop detail pages and comment submission. It also hosts
// the one-time admin bootstrap, which only responds in the local
// environment.
type PublicHandler struct {
	Cfg      config.Config
	Shops    ShopStore
	Comments CommentStore
	Admins   AdminStore
	Cache    cache.Store
}

func NewPublicHandler(cfg config.Config, shops ShopStore, comments CommentStore, admins AdminStore, store cache.Store) *PublicHandler {
	return &PublicHandler{Cfg: cfg, Shops: shops, Comments: comments, Admins: admins, Cache: store}
}

// parseFilter extracts the grid filters from the query string. A parameter
// that is absent, empty or out of range counts as unset; any set parameter
// switches the grid to the filtered query.
func parseFilter(c echo.Context) model.ShopFilter {
	var f model.ShopFilter

	switch c.QueryParam("food_available") {
	case "1":
		yes := true
		f.FoodAvailable = &yes
	case "0":
		no := false
		f.FoodAvailable = &no
	}
	f.DrinkType = c.QueryParam("drink_type")
	if s := c.QueryParam("rating"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= 5 {
			f.Rating = n
		}
	}
	return f
}

// Home renders the shop grid, filtered when at least one filter is active.
// Both the full list and each filter combination are served through the
// cache.
func (h *PublicHandler) Home(c echo.Context) error {
	ctx := c.Request().Context()

	if h.Cfg.Env == "local" && c.QueryParam("init") == "true" {
		return h.bootstrapAdmin(c)
	}

	all, err := cache.GetOrCompute(ctx, h.Cache, cache.AllShopsKey, h.Shops.ListAll)
	if err != nil {
		return err
	}
	drinkTypes, err := cache.GetOrCompute(ctx, h.Cache, cache.DrinkTypesKey, func(context.Context) ([]string, error) {
		return model.DistinctDrinkTypes(all), nil
	})
	if err != nil {
		return err
	}

	f := parseFilter(c)
	shops := all
	if !f.Empty() {
		shops, err = cache.GetOrCompute(ctx, h.Cache, cache.FilteredShopsKey(f), func(ctx context.Context) ([]model.Shop, error) {
			return h.Shops.ListFiltered(ctx, f)
		})
		if err != nil {
			return err
		}
	}

	food := ""
	if f.FoodAvailable != nil {
		food = "0"
		if *f.FoodAvailable {
			food = "1"
		}
	}
	return c.Render(http.StatusOK, "grid.html", view.GridView{
		Page: view.Page{
			AppName:   h.Cfg.AppName,
			ShopCount: len(shops),
			IsAdmin:   middleware.Auth(c).IsAdmin,
		},
		Shops:      shops,
		DrinkTypes: drinkTypes,
		Food:       food,
		Drink:      f.DrinkType,
		Rating:     f.Rating,
	})
}

// bootstrapAdmin creates the initial admin user. Reachable only as
// GET /?init=true with APP_ENV=local.
func (h *PublicHandler) bootstrapAdmin(c echo.Context) error {
	ctx := c.Request().Context()
	_, err := h.Admins.Create(ctx, h.Cfg.BootstrapAdminEmail, h.Cfg.BootstrapAdminPassword, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.String(http.StatusConflict, "Admin user already exists")
		}
		return err
	}
	return c.String(http.StatusOK, "Admin user created")
}

// ShopDetail renders a shop's detail page with its comments, served through
// the per-slug cache key. An unresolvable slug redirects to the grid.
func (h *PublicHandler) ShopDetail(c echo.Context) error {
	ctx := c.Request().Context()
	slug := c.Param("slug")

	d, err := cache.GetOrCompute(ctx, h.Cache, cache.ShopKey(slug), func(ctx context.Context) (*model.ShopDetail, error) {
		return h.Shops.GetBySlug(ctx, slug)
	})
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return c.Redirect(http.StatusFound, "/")
		}
		return err
	}
	return h.renderDetail(c, d, "")
}

// SubmitComment handles the comment form posted on a detail page. Success
// invalidates only that shop's detail key and redirects back to the same
// URI so a refresh cannot resubmit; a validation failure re-renders the
// detail view with an inline message.
func (h *PublicHandler) SubmitComment(c echo.Context) error {
	ctx := c.Request().Context()
	slug := c.Param("slug")

	if c.FormValue("comment_submitted") == "" {
		return c.Redirect(http.StatusFound, "/shop/"+slug)
	}

	d, err := h.Shops.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return c.Redirect(http.StatusFound, "/")
		}
		return err
	}

	name := c.FormValue("name")
	body := c.FormValue("body")
	if name == "" || body == "" {
		return h.renderDetail(c, d, "All fields are required to leave a comment.")
	}

	if _, err := h.Comments.Create(ctx, d.ID, name, body); err != nil {
		return err
	}
	if h.Cache != nil {
		h.Cache.Invalidate(ctx, cache.ShopKey(d.Slug))
	}
	return c.Redirect(http.StatusFound, c.Request().RequestURI)
}

func (h *PublicHandler) renderDetail(c echo.Context, d *model.ShopDetail, errMsg string) error {
	return c.Render(http.StatusOK, "detail.html", view.DetailView{
		Page: view.Page{
			AppName:   h.Cfg.AppName,
			ShopCount: h.totalShops(c),
			IsAdmin:   middleware.Auth(c).IsAdmin,
		},
		Shop:     d.Shop,
		Comments: d.Comments,
		Error:    errMsg,
	})
}

// totalShops returns the site-wide shop count shown in the page header,
// going through the same cached list the grid uses. Errors degrade to zero
// rather than failing the page.
func (h *PublicHandler) totalShops(c echo.Context) int {
	all, err := cache.GetOrCompute(c.Request().Context(), h.Cache, cache.AllShopsKey, h.Shops.ListAll)
	if err != nil {
		return 0
	}
	return len(all)
}
