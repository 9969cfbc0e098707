package model

import "strings"

// Shop represents a coffee shop listing as stored in the `shops` table.
// The Slug field is derived from Name and recomputed on every update, so
// detail-page links can change when a shop is renamed. Image holds only
// the filename of an uploaded picture; the file itself lives in the
// upload directory.
type Shop struct {
	ID            uint64 // shops.id
	Name          string // shops.name
	Location      string // shops.location
	Rating        int    // shops.rating
	HoursOpen     string // shops.hours_open
	DrinkTypes    string // shops.drink_types
	FoodAvailable bool   // shops.food_available
	Slug          string // shops.slug
	Image         string // shops.image (nullable in DB)
}

// ShopDetail is a shop joined with its comments in database order. It is
// the unit cached under the per-slug detail key.
type ShopDetail struct {
	Shop
	Comments []Comment
}

// ShopFilter holds the optional constraints of the public grid view. Zero
// values mean "not set"; all set constraints combine with logical AND.
type ShopFilter struct {
	Rating        int    // exact match when 1..5, unset when 0
	DrinkType     string // substring match on drink_types, unset when empty
	FoodAvailable *bool  // exact match, unset when nil
}

// Empty reports whether no constraint is active. An empty filter is
// equivalent to listing all shops.
func (f ShopFilter) Empty() bool {
	return f.Rating == 0 && f.DrinkType == "" && f.FoodAvailable == nil
}

// DistinctDrinkTypes collects the unique drink tags across shops,
// trimming whitespace and preserving first-seen order. It feeds the
// filter dropdown on the grid view.
func DistinctDrinkTypes(shops []Shop) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range shops {
		for _, t := range strings.Split(s.DrinkTypes, ",") {
			t = strings.TrimSpace(t)
			if t == "" || seen[t] {
				continue
			}
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}
