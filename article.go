package mdharvest

import (
	"context"
	"unicode/utf8"
)

// Link is a display-name/URL pair extracted from a listing page.
// The URL is absolute after discovery resolves it against the site base.
type Link struct {
	Text string
	URL  string
}

// Category represents one article grouping discovered on the index page.
// Its slug names the output subfolder holding the category's articles.
type Category struct {
	Name string
	Slug string
	URL  string
}

// Article is a fully converted article ready to be written out.
// It is immutable once built and consumed by the writer exactly once.
type Article struct {
	SourceURL    string
	CategorySlug string
	Slug         string
	Title        string
	Body         string // Markdown
	ContentHash  string
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.SourceURL == "" {
		return Errorf(EINVALID, "article source URL required")
	}
	if a.Slug == "" {
		return Errorf(EINVALID, "article slug required")
	}
	return nil
}

// DefaultMinContentLen is the quality gate threshold: converted bodies
// shorter than this are treated as paywalled stubs or empty shells.
const DefaultMinContentLen = 300

// AcceptBody reports whether a converted body clears the quality gate.
// Length is measured in characters, not bytes, so non-ASCII text is not
// over-counted. A minLen of zero or less falls back to
// DefaultMinContentLen.
func AcceptBody(body string, minLen int) bool {
	if minLen <= 0 {
		minLen = DefaultMinContentLen
	}
	return utf8.RuneCountInString(body) >= minLen
}

// ArticleWriter persists converted articles. Articles sharing a slug within
// a category overwrite each other; the last write wins.
type ArticleWriter interface {
	WriteArticle(ctx context.Context, article *Article) error
}

// Archiver packages a finished output tree into a single artifact and
// returns its path. A pre-existing artifact of the same name is replaced.
type Archiver interface {
	Archive(ctx context.Context, root string, name string) (string, error)
}
