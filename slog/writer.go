// Package slog provides logging decorators for mdharvest services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkruczek/mdharvest"
)

// Ensure LoggingArticleWriter implements mdharvest.ArticleWriter.
var _ mdharvest.ArticleWriter = (*LoggingArticleWriter)(nil)

// LoggingArticleWriter wraps an ArticleWriter with per-article logging.
type LoggingArticleWriter struct {
	next   mdharvest.ArticleWriter
	logger *slog.Logger
}

// NewLoggingArticleWriter creates a new LoggingArticleWriter.
func NewLoggingArticleWriter(next mdharvest.ArticleWriter, logger *slog.Logger) *LoggingArticleWriter {
	return &LoggingArticleWriter{next: next, logger: logger}
}

// WriteArticle delegates to the wrapped writer and logs the operation.
func (w *LoggingArticleWriter) WriteArticle(ctx context.Context, article *mdharvest.Article) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write article",
			"category", article.CategorySlug,
			"slug", article.Slug,
			"bytes", len(article.Body),
			"hash", article.ContentHash,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteArticle(ctx, article)
}
