package view

import "github.com/orlcoffee/coffee-shop-finder/internal/model"

// Page carries the header state shared by every view.
type Page struct {
	AppName   string
	ShopCount int
	IsAdmin   bool
}

// GridView is the default shop grid with the filter form state. The filter
// fields hold the raw query values so the form re-renders its selection.
type GridView struct {
	Page
	Shops      []model.Shop
	DrinkTypes []string
	Food       string // "", "0" or "1"
	Drink      string
	Rating     int // 0 when unset
}

// LoginView renders the admin login form, optionally with the outcome of a
// failed attempt.
type LoginView struct {
	Page
	Error string
}

// AdminView lists every shop with its management actions.
type AdminView struct {
	Page
	Shops []model.Shop
}

// ShopFormView serves both the new-shop and edit-shop forms. Shop is nil on
// the new form; Field names the submit button so the POST carries the
// matching command field.
type ShopFormView struct {
	Page
	Title  string
	Action string
	Field  string
	Submit string
	Shop   *model.Shop
	Error  string
}

// DetailView is a shop detail page with its comments and the comment form,
// optionally annotated with a comment validation error.
type DetailView struct {
	Page
	Shop     model.Shop
	Comments []model.Comment
	Error    string
}
