package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkruczek/mdharvest"
)

// Ensure Extractor implements mdharvest.Extractor at compile time.
var _ mdharvest.Extractor = (*Extractor)(nil)

// Extractor locates an article's title node and content root using a fixed
// pair of CSS selectors from the site profile.
type Extractor struct {
	titleSelector   string
	contentSelector string
}

// NewExtractor creates an Extractor for the given title and content selectors.
func NewExtractor(titleSelector, contentSelector string) *Extractor {
	return &Extractor{
		titleSelector:   titleSelector,
		contentSelector: contentSelector,
	}
}

// Extract processes raw page HTML and returns the title and content region.
// A missing title or content node yields ENOTFOUND: non-article pages,
// redirects, and layout variants are routine and handled as skips upstream.
func (e *Extractor) Extract(rawHTML string) (*mdharvest.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, mdharvest.Errorf(mdharvest.EINVALID, "failed to parse HTML: %v", err)
	}

	title := doc.Find(e.titleSelector).First()
	if title.Length() == 0 {
		return nil, mdharvest.Errorf(mdharvest.ENOTFOUND, "no title node matches %q", e.titleSelector)
	}

	content := doc.Find(e.contentSelector).First()
	if content.Length() == 0 {
		return nil, mdharvest.Errorf(mdharvest.ENOTFOUND, "no content root matches %q", e.contentSelector)
	}

	contentHTML, err := goquery.OuterHtml(content)
	if err != nil {
		return nil, mdharvest.Errorf(mdharvest.EINTERNAL, "render content root: %v", err)
	}

	return &mdharvest.ExtractResult{
		Title:       strings.TrimSpace(title.Text()),
		ContentHTML: contentHTML,
	}, nil
}
