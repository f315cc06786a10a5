// Package goquery provides CSS-selector-based implementations of
// mdharvest.Discoverer and mdharvest.Extractor.
package goquery

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkruczek/mdharvest"
)

// Ensure Discoverer implements mdharvest.Discoverer at compile time.
var _ mdharvest.Discoverer = (*Discoverer)(nil)

// Discoverer extracts category/article links and pagination bounds from
// listing pages using CSS selectors.
type Discoverer struct{}

// NewDiscoverer creates a new Discoverer.
func NewDiscoverer() *Discoverer {
	return &Discoverer{}
}

// Links returns the ordered list of distinct links matched by the selector.
// Relative hrefs are resolved against baseURL, fragments are stripped, and
// duplicate URLs keep the first-seen entry.
func (d *Discoverer) Links(html string, baseURL string, selector string) ([]mdharvest.Link, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, mdharvest.Errorf(mdharvest.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, mdharvest.Errorf(mdharvest.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]struct{})
	var links []mdharvest.Link

	doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}

		// Skip non-HTTP links (javascript:, mailto:, etc.)
		if isNonHTTPLink(href) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}

		// First-seen-wins deduplication
		if _, ok := seen[resolved]; ok {
			return
		}
		seen[resolved] = struct{}{}

		links = append(links, mdharvest.Link{
			Text: strings.TrimSpace(sel.Text()),
			URL:  resolved,
		})
	})

	return links, nil
}

// LastPage locates the "last page" navigation link via the selector and
// parses the page index from its "page" query parameter. Returns 0 when no
// such link exists, meaning the listing has exactly one page.
func (d *Discoverer) LastPage(html string, selector string) (int, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return 0, mdharvest.Errorf(mdharvest.EINVALID, "failed to parse HTML: %v", err)
	}

	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return 0, nil
	}

	href, exists := sel.Attr("href")
	if !exists || href == "" {
		return 0, nil
	}

	u, err := url.Parse(href)
	if err != nil {
		return 0, mdharvest.Errorf(mdharvest.EINVALID, "invalid pager link %q: %v", href, err)
	}

	raw := u.Query().Get("page")
	if raw == "" {
		return 0, nil
	}

	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0, mdharvest.Errorf(mdharvest.EINVALID, "pager link %q: non-numeric page index", href)
	}

	return page, nil
}

// resolveURL resolves a relative URL against a base URL.
// Fragments are stripped from the result for deduplication purposes.
// Returns empty string if the href cannot be parsed.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""
	return resolved.String()
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
