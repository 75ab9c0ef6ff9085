// Package breed derives human-readable breed labels from dog.ceo media URLs.
// All functions are pure and total.
package breed

import (
	"regexp"
	"strings"
)

const Unknown = "Unknown"

// The sentinel category meaning "no filter".
const All = "all"

var slugPattern = regexp.MustCompile(`breeds/([a-zA-Z-]+)/`)

// Slug extracts the raw breed slug from a dog.ceo image URL, e.g.
// ".../breeds/terrier-yorkshire/1.jpg" -> "terrier-yorkshire".
// Returns "" when the URL does not follow the convention.
func Slug(rawURL string) string {
	m := slugPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return ""
	}
	return m[1]
}

// Resolve derives a display label from a dog.ceo image URL. The slug's
// sub-breed precedes the breed: "terrier-yorkshire" -> "yorkshire terrier".
// Slugs with more than one hyphen split on the first hyphen only, so
// "a-b-c" -> "b-c a". Non-matching URLs resolve to Unknown.
func Resolve(rawURL string) string {
	slug := Slug(rawURL)
	if slug == "" {
		return Unknown
	}
	main, sub, found := strings.Cut(slug, "-")
	if found {
		return sub + " " + main
	}
	return main
}

// APIPath converts a category token to the path form the breed-scoped
// endpoint expects: "terrier-yorkshire" -> "terrier/yorkshire". Tokens
// without a hyphen pass through unchanged.
func APIPath(category string) string {
	main, sub, found := strings.Cut(category, "-")
	if found {
		return main + "/" + sub
	}
	return main
}
