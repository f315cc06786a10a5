package main

import (
	"context"
	"io"
	"time"

	"github.com/pkruczek/mdharvest"
	"github.com/pkruczek/mdharvest/yamlcfg"
)

// Dependencies holds shared state for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Crawl CrawlCmd `cmd:"" help:"Harvest a site's articles into Markdown files"`
	Sites SitesCmd `cmd:"" help:"List available site profiles"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	Site       string        `arg:"" help:"Site profile name"`
	Output     string        `short:"o" default:"articles" help:"Output directory"`
	Engine     string        `default:"site" enum:"site,commonmark" help:"Markdown conversion engine"`
	SkipNested bool          `help:"Emit nested inline elements once instead of re-emitting them"`
	Retries    int           `default:"3" help:"Total fetch attempts per URL"`
	RetryDelay time.Duration `default:"3s" help:"Pause between fetch attempts"`
	Timeout    time.Duration `default:"30s" help:"Per-request timeout"`
	Delay      time.Duration `default:"1s" help:"Politeness delay between requests to one domain"`
	Config     string        `short:"c" help:"YAML file with site profiles (replaces the builtin set)"`
	NoArchive  bool          `help:"Skip zipping the output directory"`
	Verbose    bool          `short:"v" help:"Log at debug level"`
}

// SitesCmd is the "sites" subcommand.
type SitesCmd struct {
	Config string `short:"c" help:"YAML file with site profiles (replaces the builtin set)"`
}

// loadSites returns the builtin profiles, or those from a config file when
// one is given.
func loadSites(configPath string) ([]mdharvest.Site, error) {
	if configPath == "" {
		return mdharvest.BuiltinSites(), nil
	}
	return yamlcfg.LoadSites(configPath)
}
