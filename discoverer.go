package mdharvest

// Discoverer extracts structure from index and listing pages.
type Discoverer interface {
	// Links returns the ordered list of distinct links matched by the
	// CSS selector, first-seen-wins for duplicate URLs. Relative hrefs
	// are resolved against baseURL.
	Links(html string, baseURL string, selector string) ([]Link, error)

	// LastPage locates the "last page" navigation link via the selector
	// and parses the page index from its "page" query parameter.
	// Returns 0 when no such link exists (exactly one page).
	LastPage(html string, selector string) (int, error)
}
