package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/orlcoffee/coffee-shop-finder/internal/model"
)

func TestStars(t *testing.T) {
	cases := []struct {
		rating int
		want   string
	}{
		{0, "☆☆☆☆☆"},
		{1, "★☆☆☆☆"},
		{3, "★★★☆☆"},
		{5, "★★★★★"},
		{-2, "☆☆☆☆☆"}, // clamped, must not panic
		{9, "★★★★★"},
	}
	for _, tc := range cases {
		if got := Stars(tc.rating); got != tc.want {
			t.Errorf("Stars(%d) = %q, want %q", tc.rating, got, tc.want)
		}
	}
}

func TestStars_Counts(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		got := Stars(rating)
		if n := strings.Count(got, "★"); n != rating {
			t.Errorf("Stars(%d) has %d filled symbols, want %d", rating, n, rating)
		}
		if n := strings.Count(got, "☆"); n != 5-rating {
			t.Errorf("Stars(%d) has %d empty symbols, want %d", rating, n, 5-rating)
		}
	}
}

func sampleShop() model.Shop {
	return model.Shop{
		ID:            1,
		Name:          "Brew Haven",
		Location:      "123 Main St",
		Rating:        4,
		HoursOpen:     "Mon-Fri 7-5; Sat 8-2",
		DrinkTypes:    "Latte, Espresso",
		FoodAvailable: true,
		Slug:          "brew-haven",
	}
}

func TestRenderer_Grid(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var buf bytes.Buffer
	data := GridView{
		Page:       Page{AppName: "ORL Coffee", ShopCount: 1},
		Shops:      []model.Shop{sampleShop()},
		DrinkTypes: []string{"Latte", "Espresso"},
		Drink:      "Latte",
		Rating:     4,
	}
	if err := r.Render(&buf, "grid.html", data, nil); err != nil {
		t.Fatalf("Render grid: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Brew Haven", "★★★★☆", "/shop/brew-haven", "ORL Coffee"} {
		if !strings.Contains(out, want) {
			t.Errorf("grid output missing %q", want)
		}
	}
}

func TestRenderer_Detail(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var buf bytes.Buffer
	data := DetailView{
		Page: Page{AppName: "ORL Coffee", ShopCount: 1},
		Shop: sampleShop(),
		Comments: []model.Comment{
			{ID: 1, ShopID: 1, Name: "Ana", Body: "Great espresso"},
		},
	}
	if err := r.Render(&buf, "detail.html", data, nil); err != nil {
		t.Fatalf("Render detail: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Mon-Fri 7-5", "Sat 8-2", "Espresso", "Ana", "Great espresso", "/shop/brew-haven/comment"} {
		if !strings.Contains(out, want) {
			t.Errorf("detail output missing %q", want)
		}
	}
}

func TestRenderer_FormsAndLogin(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	shop := sampleShop()
	views := []struct {
		name string
		data interface{}
	}{
		{"login.html", LoginView{Page: Page{AppName: "ORL Coffee"}, Error: "Invalid username or password"}},
		{"admin.html", AdminView{Page: Page{AppName: "ORL Coffee"}, Shops: []model.Shop{shop}}},
		{"shop_form.html", ShopFormView{
			Page: Page{AppName: "ORL Coffee"}, Title: "Add New Coffee Shop",
			Action: "/admin/new-coffee-shop", Field: "create_coffee_shop", Submit: "Add Coffee Shop",
		}},
		{"shop_form.html", ShopFormView{
			Page: Page{AppName: "ORL Coffee"}, Title: "Edit Coffee Shop",
			Action: "/admin/edit-coffee-shop?id=1", Field: "update_coffee_shop", Submit: "Update Coffee Shop",
			Shop: &shop,
		}},
	}
	for _, v := range views {
		var buf bytes.Buffer
		if err := r.Render(&buf, v.name, v.data, nil); err != nil {
			t.Errorf("Render %s (%T): %v", v.name, v.data, err)
		}
	}
}
