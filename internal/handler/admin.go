package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/orlcoffee/coffee-shop-finder/internal/config"
	"github.com/orlcoffee/coffee-shop-finder/internal/model"
	"github.com/orlcoffee/coffee-shop-finder/internal/repository"
	"github.com/orlcoffee/coffee-shop-finder/internal/utils"
	"github.com/orlcoffee/coffee-shop-finder/internal/view"
)

// requiredFieldsMessage annotates a create/update attempt with empty
// required fields.
const requiredFieldsMessage = "All fields are required"

// ratingRangeMessage annotates a rating outside 1..5.
const ratingRangeMessage = "Rating must be a number from 1 to 5"

// AdminHandler implements the management panel: the shop table and the
// create, update and delete commands. Every route it serves sits behind the
// RequireAdmin gate; the full cache clear on admin POSTs happens in
// middleware before these handlers run.
type AdminHandler struct {
	Cfg   config.Config
	Shops ShopStore
}

func NewAdminHandler(cfg config.Config, shops ShopStore) *AdminHandler {
	return &AdminHandler{Cfg: cfg, Shops: shops}
}

// shopForm is the validated state of a posted create/update form.
type shopForm struct {
	Name          string
	Location      string
	Rating        int
	HoursOpen     string
	DrinkTypes    string
	FoodAvailable bool
}

// parseShopForm extracts and validates the shop fields of the posted form.
// Missing fields default to empty strings; the returned message is empty
// when the form is valid.
func parseShopForm(c echo.Context) (shopForm, string) {
	f := shopForm{
		Name:          c.FormValue("name"),
		Location:      c.FormValue("location"),
		HoursOpen:     c.FormValue("hours_open"),
		DrinkTypes:    c.FormValue("drink_types"),
		FoodAvailable: c.FormValue("food_available") == "1",
	}
	rating := c.FormValue("rating")
	if f.Name == "" || f.Location == "" || rating == "" || f.HoursOpen == "" || f.DrinkTypes == "" {
		return f, requiredFieldsMessage
	}
	n, err := strconv.Atoi(rating)
	if err != nil || n < 1 || n > 5 {
		return f, ratingRangeMessage
	}
	f.Rating = n
	return f, ""
}

// Dashboard lists every shop with its management actions. It reads the
// table directly so an admin always sees the rows they just wrote.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	shops, err := h.Shops.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "admin.html", view.AdminView{
		Page:  view.Page{AppName: h.Cfg.AppName, ShopCount: len(shops), IsAdmin: true},
		Shops: shops,
	})
}

// NewShopForm renders the empty create form.
func (h *AdminHandler) NewShopForm(c echo.Context) error {
	return h.renderNewForm(c, "")
}

// CreateShop handles the posted create form. The uploaded image (if any)
// is written before the INSERT and removed again if the INSERT fails.
func (h *AdminHandler) CreateShop(c echo.Context) error {
	if c.FormValue("create_coffee_shop") == "" {
		return c.Redirect(http.StatusFound, "/admin")
	}

	f, errMsg := parseShopForm(c)
	if errMsg != "" {
		return h.renderNewForm(c, errMsg)
	}

	image, err := saveUpload(c, h.Cfg.UploadDir)
	if err != nil {
		return err
	}

	shop := model.Shop{
		Name:          f.Name,
		Location:      f.Location,
		Rating:        f.Rating,
		HoursOpen:     f.HoursOpen,
		DrinkTypes:    f.DrinkTypes,
		FoodAvailable: f.FoodAvailable,
		Slug:          utils.Slugify(f.Name),
		Image:         image,
	}
	if err := h.Shops.Create(c.Request().Context(), &shop); err != nil {
		removeUpload(h.Cfg.UploadDir, image)
		return err
	}
	return c.Redirect(http.StatusFound, "/admin")
}

// EditShopForm renders the edit form for an existing shop. A missing or
// invalid id, or an id matching no shop, redirects back to the panel.
func (h *AdminHandler) EditShopForm(c echo.Context) error {
	shop, ok, err := h.shopFromQuery(c)
	if err != nil {
		return err
	}
	if !ok {
		return c.Redirect(http.StatusFound, "/admin")
	}
	return h.renderEditForm(c, shop, "")
}

// UpdateShop handles the posted edit form. The slug is recomputed from the
// submitted name, and the image column is only touched when a new file was
// uploaded.
func (h *AdminHandler) UpdateShop(c echo.Context) error {
	if c.FormValue("update_coffee_shop") == "" {
		return c.Redirect(http.StatusFound, "/admin")
	}

	shop, ok, err := h.shopFromQuery(c)
	if err != nil {
		return err
	}
	if !ok {
		return c.Redirect(http.StatusFound, "/admin")
	}

	f, errMsg := parseShopForm(c)
	if errMsg != "" {
		return h.renderEditForm(c, shop, errMsg)
	}

	image, err := saveUpload(c, h.Cfg.UploadDir)
	if err != nil {
		return err
	}
	withImage := image != ""

	shop.Name = f.Name
	shop.Location = f.Location
	shop.Rating = f.Rating
	shop.HoursOpen = f.HoursOpen
	shop.DrinkTypes = f.DrinkTypes
	shop.FoodAvailable = f.FoodAvailable
	shop.Slug = utils.Slugify(f.Name)
	if withImage {
		shop.Image = image
	}

	if err := h.Shops.Update(c.Request().Context(), shop, withImage); err != nil {
		removeUpload(h.Cfg.UploadDir, image)
		if errors.Is(err, repository.ErrShopNotFound) {
			return c.Redirect(http.StatusFound, "/admin")
		}
		return err
	}
	return c.Redirect(http.StatusFound, "/admin")
}

// DeleteShop removes a shop and its comments. Missing ids and already
// deleted shops both land back on the panel without an error page.
func (h *AdminHandler) DeleteShop(c echo.Context) error {
	if c.FormValue("delete_coffee_shop") == "" {
		return c.Redirect(http.StatusFound, "/admin")
	}

	id, err := strconv.ParseUint(c.QueryParam("id"), 10, 64)
	if err != nil {
		return c.Redirect(http.StatusFound, "/admin")
	}
	if err := h.Shops.Delete(c.Request().Context(), id); err != nil && !errors.Is(err, repository.ErrShopNotFound) {
		return err
	}
	return c.Redirect(http.StatusFound, "/admin")
}

// shopFromQuery resolves the ?id= query parameter to a shop. ok is false
// when the id is absent, malformed or matches no shop.
func (h *AdminHandler) shopFromQuery(c echo.Context) (*model.Shop, bool, error) {
	id, err := strconv.ParseUint(c.QueryParam("id"), 10, 64)
	if err != nil {
		return nil, false, nil
	}
	shop, err := h.Shops.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return shop, true, nil
}

func (h *AdminHandler) renderNewForm(c echo.Context, errMsg string) error {
	return c.Render(http.StatusOK, "shop_form.html", view.ShopFormView{
		Page:   view.Page{AppName: h.Cfg.AppName, IsAdmin: true},
		Title:  "Add New Coffee Shop",
		Action: "/admin/new-coffee-shop",
		Field:  "create_coffee_shop",
		Submit: "Add Coffee Shop",
		Error:  errMsg,
	})
}

func (h *AdminHandler) renderEditForm(c echo.Context, shop *model.Shop, errMsg string) error {
	return c.Render(http.StatusOK, "shop_form.html", view.ShopFormView{
		Page:   view.Page{AppName: h.Cfg.AppName, IsAdmin: true},
		Title:  "Edit Coffee Shop",
		Action: "/admin/edit-coffee-shop?id=" + strconv.FormatUint(shop.ID, 10),
		Field:  "update_coffee_shop",
		Submit: "Update Coffee Shop",
		Shop:   shop,
		Error:  errMsg,
	})
}
