// Package mdharvest harvests long-form articles from content sites and
// archives them as normalized Markdown documents, organized by source
// category. It crawls a site's index page, discovers categories and
// paginated article listings, extracts each article's title and body,
// converts the body HTML to Markdown, and hands the result to a writer
// and an archiver.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, fs/, crawl/).
package mdharvest
