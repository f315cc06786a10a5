// Package mock provides function-field mock implementations of the
// mdharvest interfaces for use in tests.
package mock

import (
	"context"

	"github.com/pkruczek/mdharvest"
)

var _ mdharvest.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of mdharvest.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ mdharvest.Discoverer = (*Discoverer)(nil)

// Discoverer is a mock implementation of mdharvest.Discoverer.
type Discoverer struct {
	LinksFn    func(html, baseURL, selector string) ([]mdharvest.Link, error)
	LastPageFn func(html, selector string) (int, error)
}

func (d *Discoverer) Links(html, baseURL, selector string) ([]mdharvest.Link, error) {
	return d.LinksFn(html, baseURL, selector)
}

func (d *Discoverer) LastPage(html, selector string) (int, error) {
	return d.LastPageFn(html, selector)
}

var _ mdharvest.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of mdharvest.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*mdharvest.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*mdharvest.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ mdharvest.Converter = (*Converter)(nil)

// Converter is a mock implementation of mdharvest.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ mdharvest.ArticleWriter = (*ArticleWriter)(nil)

// ArticleWriter is a mock implementation of mdharvest.ArticleWriter.
type ArticleWriter struct {
	WriteArticleFn func(ctx context.Context, article *mdharvest.Article) error
}

func (w *ArticleWriter) WriteArticle(ctx context.Context, article *mdharvest.Article) error {
	return w.WriteArticleFn(ctx, article)
}

var _ mdharvest.Archiver = (*Archiver)(nil)

// Archiver is a mock implementation of mdharvest.Archiver.
type Archiver struct {
	ArchiveFn func(ctx context.Context, dir, name string) (string, error)
}

func (a *Archiver) Archive(ctx context.Context, dir, name string) (string, error) {
	return a.ArchiveFn(ctx, dir, name)
}

var _ mdharvest.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of mdharvest.Limiter.
type Limiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *Limiter) Wait(ctx context.Context, domain string) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx, domain)
}
