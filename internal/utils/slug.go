package utils

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives the URL identifier for a shop from its name: the name is
// lowercased and every run of non-alphanumeric characters is collapsed to a
// single hyphen. Leading and trailing hyphens are kept, so "Joe's Café!"
// becomes "joe-s-caf-". The result is deterministic for a given name and is
// not guaranteed to be unique across shops.
func Slugify(name string) string {
	return nonAlnum.ReplaceAllString(strings.ToLower(name), "-")
}
