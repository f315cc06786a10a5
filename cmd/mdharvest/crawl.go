package main

import (
	"fmt"
	"log/slog"
	"net/url"

	"github.com/pkruczek/mdharvest"
	"github.com/pkruczek/mdharvest/crawl"
	"github.com/pkruczek/mdharvest/fs"
	"github.com/pkruczek/mdharvest/goquery"
	"github.com/pkruczek/mdharvest/htmltomarkdown"
	mdhttp "github.com/pkruczek/mdharvest/http"
	"github.com/pkruczek/mdharvest/markdown"
	mdslog "github.com/pkruczek/mdharvest/slog"
	"github.com/pkruczek/mdharvest/trafilatura"
	"github.com/pkruczek/mdharvest/ziparchive"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	sites, err := loadSites(c.Config)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mdharvest.ErrorMessage(err))
		return err
	}

	site, err := mdharvest.FindSite(sites, c.Site)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\nRun 'mdharvest sites' to list available profiles.\n", mdharvest.ErrorMessage(err))
		return err
	}

	base, err := url.Parse(site.BaseURL)
	if err != nil {
		return mdharvest.Errorf(mdharvest.EINVALID, "invalid base URL %q: %v", site.BaseURL, err)
	}

	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(deps.Stderr, &slog.HandlerOptions{Level: level}))

	fetcher := mdhttp.NewFetcher(mdhttp.WithTimeout(c.Timeout))
	defer fetcher.Close()

	// Profiles without a content selector fall back to heuristic
	// extraction.
	var extractor mdharvest.Extractor
	if site.ContentSelector == "" {
		extractor = trafilatura.NewExtractor()
	} else {
		extractor = goquery.NewExtractor(site.TitleSelector, site.ContentSelector)
	}

	var converter mdharvest.Converter
	switch c.Engine {
	case "commonmark":
		converter = htmltomarkdown.NewConverter()
	default:
		opts := []markdown.Option{markdown.WithBaseURL(base)}
		if c.SkipNested {
			opts = append(opts, markdown.WithSkipNested())
		}
		converter = markdown.NewConverter(opts...)
	}

	crawler := &crawl.Crawler{
		Fetcher:     mdslog.NewLoggingFetcher(fetcher, logger),
		Discoverer:  goquery.NewDiscoverer(),
		Extractor:   extractor,
		Converter:   converter,
		Writer:      mdslog.NewLoggingArticleWriter(fs.NewWriter(c.Output), logger),
		Limiter:     crawl.NewDomainLimiter(c.Delay),
		Logger:      logger,
		OutputDir:   c.Output,
		RetryDelays: crawl.FixedDelays(c.Retries, c.RetryDelay),
	}
	if !c.NoArchive {
		crawler.Archiver = ziparchive.NewArchiver("")
	}

	result, err := crawler.Run(deps.Ctx, site)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mdharvest.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d articles across %d categories (%d pages, %d skipped)\n",
		result.Saved, result.Categories, result.Pages, result.Skipped)
	if result.ArchivePath != "" {
		fmt.Fprintf(deps.Stdout, "Archive: %s\n", result.ArchivePath)
	}
	return nil
}
