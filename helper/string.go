package helper

import (
	"regexp"
	"strings"
)

var (
	camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	acronymTail   = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
)

// Underscore converts a Go struct field name to its snake_case wire key,
// e.g. "FirstName" -> "first_name", "AdTitle" -> "ad_title", "ImageURL" -> "image_url".
func Underscore(s string) string {
	s = acronymTail.ReplaceAllString(s, "${1}_${2}")
	s = camelBoundary.ReplaceAllString(s, "${1}_${2}")
	return strings.ToLower(s)
}
