package cache

import (
	"crypto/sha1"
	"fmt"

	"github.com/orlcoffee/coffee-shop-finder/internal/model"
)

// Deterministic key space of the application. Each key names the query
// that produced its value, so any entry can be rebuilt by re-running that
// query.
const (
	// AllShopsKey caches the unfiltered shop list.
	AllShopsKey = "all_shops"
	// DrinkTypesKey caches the distinct drink tags for the filter dropdown.
	DrinkTypesKey = "drink_types"
)

// ShopKey returns the detail-cache key for one shop slug.
func ShopKey(slug string) string {
	return "shop:" + slug
}

// FilteredShopsKey returns the key for one filter combination. The filter
// is serialized canonically (fixed field order, explicit unset markers) and
// hashed so that equal filters always map to the same key.
func FilteredShopsKey(f model.ShopFilter) string {
	food := ""
	if f.FoodAvailable != nil {
		food = "0"
		if *f.FoodAvailable {
			food = "1"
		}
	}
	canonical := fmt.Sprintf("rating=%d&drink_type=%s&food_available=%s", f.Rating, f.DrinkType, food)
	sum := sha1.Sum([]byte(canonical))
	return fmt.Sprintf("filtered:%x", sum)
}
