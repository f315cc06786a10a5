package mdharvest

// ExtractResult holds the content region extracted from an article page.
type ExtractResult struct {
	// Title is the article title, whitespace-trimmed.
	Title string

	// ContentHTML is the article body subtree as HTML, page chrome
	// (navigation, sidebars, ads) excluded.
	ContentHTML string
}

// Extractor locates the title node and the main content subtree of an
// article page.
type Extractor interface {
	// Extract processes raw page HTML and returns the title and content
	// region. Returns ENOTFOUND when either is missing; callers treat
	// that as a routine skip, not a fault.
	Extract(html string) (*ExtractResult, error)
}
