// Package crawl implements the harvesting orchestration: structure
// discovery, pagination, article processing, and archival. Execution is
// fully sequential, paced by a politeness limiter.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/pkruczek/mdharvest"
)

// Seen-set sizing for a single run.
const (
	seenExpectedURLs      = 10000
	seenFalsePositiveRate = 0.01
)

// Crawler runs one harvesting pass over a site profile. All collaborators
// except Fetcher, Discoverer, Extractor, Converter, and Writer are
// optional.
type Crawler struct {
	Fetcher    mdharvest.Fetcher
	Discoverer mdharvest.Discoverer
	Extractor  mdharvest.Extractor
	Converter  mdharvest.Converter
	Writer     mdharvest.ArticleWriter
	Archiver   mdharvest.Archiver
	Limiter    mdharvest.Limiter
	Logger     *slog.Logger

	// OutputDir is the output root handed to the Archiver after the run.
	OutputDir string

	// RetryDelays are the inter-attempt delays for fetch retries. Nil
	// selects DefaultRetryDelays.
	RetryDelays []time.Duration
}

// Result summarizes a completed run.
type Result struct {
	Categories  int
	Pages       int
	Saved       int
	Skipped     int
	ArchivePath string
}

// Run harvests the site. A failure to fetch the index page or to discover
// categories aborts the run; every per-page and per-article failure is
// logged and skipped so one broken article never stops the crawl.
func (c *Crawler) Run(ctx context.Context, site mdharvest.Site) (*Result, error) {
	if err := site.Validate(); err != nil {
		return nil, err
	}

	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("site", site.Name)

	indexHTML, err := c.fetchPolite(ctx, logger, site.IndexURL)
	if err != nil {
		return nil, fmt.Errorf("fetch index %s: %w", site.IndexURL, err)
	}

	categories, err := c.categories(site, indexHTML)
	if err != nil {
		return nil, fmt.Errorf("discover categories: %w", err)
	}
	logger.Info("categories discovered", "count", len(categories))

	seen := NewSeenSet(seenExpectedURLs, seenFalsePositiveRate)
	result := &Result{Categories: len(categories)}

	for _, category := range categories {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		c.crawlCategory(ctx, logger, site, category, seen, result)
	}

	if c.Archiver != nil {
		path, err := c.Archiver.Archive(ctx, c.OutputDir, site.Name)
		if err != nil {
			return result, fmt.Errorf("archive output: %w", err)
		}
		result.ArchivePath = path
		logger.Info("archive created", "path", path)
	}

	return result, nil
}

// categories resolves the listings to crawl. Sites without a category
// selector are flat: the index page itself is the single listing.
func (c *Crawler) categories(site mdharvest.Site, indexHTML string) ([]mdharvest.Category, error) {
	if site.CategorySelector == "" {
		return []mdharvest.Category{{
			Name: site.Name,
			Slug: mdharvest.SlugFromURL(site.IndexURL),
			URL:  site.IndexURL,
		}}, nil
	}

	links, err := c.Discoverer.Links(indexHTML, site.BaseURL, site.CategorySelector)
	if err != nil {
		return nil, err
	}

	categories := make([]mdharvest.Category, 0, len(links))
	for _, link := range links {
		categories = append(categories, mdharvest.Category{
			Name: link.Text,
			Slug: mdharvest.SlugFromURL(link.URL),
			URL:  link.URL,
		})
	}
	return categories, nil
}

// crawlCategory walks one category's listing pages and processes every
// newly discovered article link.
func (c *Crawler) crawlCategory(ctx context.Context, logger *slog.Logger, site mdharvest.Site, category mdharvest.Category, seen *SeenSet, result *Result) {
	logger = logger.With("category", category.Slug)

	listingHTML, err := c.fetchPolite(ctx, logger, category.URL)
	if err != nil {
		logger.Warn("skipping category: listing fetch failed", "url", category.URL, "error", err)
		result.Skipped++
		return
	}

	lastPage := 0
	if site.PagerSelector != "" {
		lastPage, err = c.Discoverer.LastPage(listingHTML, site.PagerSelector)
		if err != nil {
			logger.Warn("pager unreadable, assuming a single page", "url", category.URL, "error", err)
			lastPage = 0
		}
	}

	for page := 0; page <= lastPage; page++ {
		if ctx.Err() != nil {
			return
		}

		pageHTML := listingHTML
		if site.PagerSelector != "" {
			pageURL, err := listingPageURL(category.URL, page)
			if err != nil {
				logger.Warn("skipping page: bad listing URL", "url", category.URL, "page", page, "error", err)
				continue
			}
			pageHTML, err = c.fetchPolite(ctx, logger, pageURL)
			if err != nil {
				logger.Warn("skipping page: fetch failed", "url", pageURL, "error", err)
				continue
			}
		}
		result.Pages++

		links, err := c.Discoverer.Links(pageHTML, site.BaseURL, site.ArticleSelector)
		if err != nil {
			logger.Warn("skipping page: link discovery failed", "page", page, "error", err)
			continue
		}
		logger.Info("articles found", "page", page, "count", len(links))

		for _, link := range links {
			if ctx.Err() != nil {
				return
			}
			if !seen.Add(link.URL) {
				continue
			}
			if c.article(ctx, logger, site, category, link.URL) {
				result.Saved++
			} else {
				result.Skipped++
			}
		}
	}
}

// article runs fetch, extract, convert, quality gate, and write for one
// URL. It reports success; every failure is logged and absorbed.
func (c *Crawler) article(ctx context.Context, logger *slog.Logger, site mdharvest.Site, category mdharvest.Category, articleURL string) bool {
	rawHTML, err := c.fetchPolite(ctx, logger, articleURL)
	if err != nil {
		logger.Warn("skipping article: fetch failed", "url", articleURL, "error", err)
		return false
	}

	extracted, err := c.Extractor.Extract(rawHTML)
	if err != nil {
		logger.Warn("skipping article: no title or content region", "url", articleURL, "error", err)
		return false
	}

	body, err := c.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		logger.Warn("skipping article: conversion failed", "url", articleURL, "error", err)
		return false
	}

	if !mdharvest.AcceptBody(body, site.MinContentLen) {
		err := mdharvest.Errorf(mdharvest.ECONTENT, "body length %d below minimum", utf8.RuneCountInString(body))
		logger.Warn("skipping article: body below minimum length", "url", articleURL, "error", err)
		return false
	}

	article := &mdharvest.Article{
		SourceURL:    articleURL,
		CategorySlug: category.Slug,
		Slug:         mdharvest.SlugFromURL(articleURL),
		Title:        extracted.Title,
		Body:         body,
		ContentHash:  contentHash(body),
	}

	if err := c.Writer.WriteArticle(ctx, article); err != nil {
		logger.Warn("skipping article: write failed", "url", articleURL, "error", err)
		return false
	}

	logger.Info("article saved", "slug", article.Slug, "bytes", len(body), "hash", article.ContentHash)
	return true
}

// fetchPolite waits out the per-domain rate limit and then fetches with
// retries.
func (c *Crawler) fetchPolite(ctx context.Context, logger *slog.Logger, rawURL string) (string, error) {
	if c.Limiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			return "", mdharvest.Errorf(mdharvest.EINVALID, "invalid URL %q: %v", rawURL, err)
		}
		if err := c.Limiter.Wait(ctx, u.Host); err != nil {
			return "", err
		}
	}

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	return FetchWithRetryDelays(ctx, rawURL, c.Fetcher.Fetch, logger, delays)
}

// listingPageURL sets the page query parameter on a listing URL. Page zero
// is requested explicitly as ?page=0.
func listingPageURL(listingURL string, page int) (string, error) {
	u, err := url.Parse(listingURL)
	if err != nil {
		return "", mdharvest.Errorf(mdharvest.EINVALID, "invalid listing URL %q: %v", listingURL, err)
	}
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func contentHash(body string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(body))
}
