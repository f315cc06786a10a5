// Package fs persists harvested articles as Markdown files on disk.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkruczek/mdharvest"
)

var _ mdharvest.ArticleWriter = (*Writer)(nil)

// Writer writes one Markdown file per article under a base directory,
// grouped by category slug. Writing the same category and slug twice
// silently overwrites, keeping the last fetched version.
type Writer struct {
	baseDir string
}

// NewWriter creates a Writer rooted at baseDir. The directory tree is
// created lazily on first write.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteArticle persists the article to <baseDir>/<category slug>/<slug>.md.
func (w *Writer) WriteArticle(ctx context.Context, article *mdharvest.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	dir := filepath.Join(w.baseDir, article.CategorySlug)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return mdharvest.Errorf(mdharvest.EINTERNAL, "create category directory %s: %v", dir, err)
	}

	path := filepath.Join(dir, article.Slug+".md")
	if err := os.WriteFile(path, []byte(FormatArticle(article)), 0o644); err != nil {
		return mdharvest.Errorf(mdharvest.EINTERNAL, "write article %s: %v", path, err)
	}
	return nil
}

// FormatArticle renders the on-disk document: a title heading, the source
// URL, and the converted body.
func FormatArticle(article *mdharvest.Article) string {
	return fmt.Sprintf("# %s\n\nSource: %s\n\n%s\n", article.Title, article.SourceURL, article.Body)
}
