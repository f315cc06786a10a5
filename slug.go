package mdharvest

import "strings"

// SlugFromURL derives a filesystem-safe identifier from a URL: the final
// non-empty path segment. URLs with and without a trailing slash yield the
// identical slug.
func SlugFromURL(rawURL string) string {
	trimmed := strings.TrimRight(rawURL, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}
