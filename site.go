package mdharvest

// Site is a crawl profile for one source site. Each supported site is a
// configuration value, not a code path: the selectors drive structure
// discovery and extraction, and the base URL drives relative link
// resolution in the converter.
type Site struct {
	// Name identifies the profile and names the output root and archive.
	Name string

	// BaseURL is the origin used to resolve relative URLs.
	BaseURL string

	// IndexURL is the page the crawl starts from.
	IndexURL string

	// CategorySelector matches category links on the index page.
	// Empty means the index page is itself the single article listing.
	CategorySelector string

	// ArticleSelector matches article links on a listing page.
	ArticleSelector string

	// TitleSelector matches the article title node.
	TitleSelector string

	// ContentSelector matches the article content root. Empty selects
	// heuristic (selector-free) extraction.
	ContentSelector string

	// PagerSelector matches the "last page" pagination link on a
	// listing page. Empty means listings are single-page.
	PagerSelector string

	// MinContentLen is the quality gate threshold for this site.
	// Zero falls back to DefaultMinContentLen.
	MinContentLen int
}

// Validate returns an error if the profile is not crawlable.
func (s *Site) Validate() error {
	if s.Name == "" {
		return Errorf(EINVALID, "site name required")
	}
	if s.BaseURL == "" {
		return Errorf(EINVALID, "site base URL required")
	}
	if s.IndexURL == "" {
		return Errorf(EINVALID, "site index URL required")
	}
	if s.ArticleSelector == "" {
		return Errorf(EINVALID, "site article selector required")
	}
	return nil
}

// BuiltinSites returns the site profiles shipped with the tool.
func BuiltinSites() []Site {
	return []Site{
		{
			Name:             "health-topics",
			BaseURL:          "https://www.westonaprice.org",
			IndexURL:         "https://www.westonaprice.org/health-topics/",
			CategorySelector: "a[href*='health-topics-category']",
			ArticleSelector:  "main.content h5 a",
			TitleSelector:    "h1",
			ContentSelector:  "div.entry-content",
		},
		{
			Name:            "popular-blogs",
			BaseURL:         "https://www.greenmedinfo.com",
			IndexURL:        "https://www.greenmedinfo.com/gmi-blogs-popular",
			ArticleSelector: "div.views-field-title a",
			TitleSelector:   "div.field-title h1",
			ContentSelector: "div.field-body",
			PagerSelector:   "li.pager-last a",
		},
	}
}

// FindSite returns the named profile from sites, or ENOTFOUND.
func FindSite(sites []Site, name string) (Site, error) {
	for _, s := range sites {
		if s.Name == name {
			return s, nil
		}
	}
	return Site{}, Errorf(ENOTFOUND, "site profile %q not found", name)
}
