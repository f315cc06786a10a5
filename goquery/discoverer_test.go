package goquery_test

import (
	"testing"

	"github.com/pkruczek/mdharvest"
	"github.com/pkruczek/mdharvest/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Discoverer implements mdharvest.Discoverer at compile time.
var _ mdharvest.Discoverer = (*goquery.Discoverer)(nil)

func TestDiscoverer_Links(t *testing.T) {
	t.Parallel()

	t.Run("extracts links in document order", func(t *testing.T) {
		t.Parallel()

		html := `<main class="content">
			<h5><a href="https://example.com/articles/first">First</a></h5>
			<h5><a href="https://example.com/articles/second">Second</a></h5>
		</main>`

		d := goquery.NewDiscoverer()
		links, err := d.Links(html, "https://example.com", "main.content h5 a")

		require.NoError(t, err)
		require.Len(t, links, 2)
		assert.Equal(t, mdharvest.Link{Text: "First", URL: "https://example.com/articles/first"}, links[0])
		assert.Equal(t, mdharvest.Link{Text: "Second", URL: "https://example.com/articles/second"}, links[1])
	})

	t.Run("deduplicates by URL keeping first occurrence", func(t *testing.T) {
		t.Parallel()

		html := `<div>
			<a class="cat" href="/topics/nutrition">Nutrition</a>
			<a class="cat" href="/topics/health">Health</a>
			<a class="cat" href="/topics/nutrition">Nutrition (sidebar)</a>
		</div>`

		d := goquery.NewDiscoverer()
		links, err := d.Links(html, "https://example.com", "a.cat")

		require.NoError(t, err)
		require.Len(t, links, 2)
		assert.Equal(t, "Nutrition", links[0].Text)
		assert.Equal(t, "https://example.com/topics/nutrition", links[0].URL)

		urls := make(map[string]int)
		for _, l := range links {
			urls[l.URL]++
		}
		for u, n := range urls {
			assert.Equal(t, 1, n, "URL %s appears more than once", u)
		}
	})

	t.Run("resolves relative URLs against the base", func(t *testing.T) {
		t.Parallel()

		html := `<div class="views-field-title"><a href="/blog/why-sleep-matters">Why Sleep Matters</a></div>`

		d := goquery.NewDiscoverer()
		links, err := d.Links(html, "https://example.com", "div.views-field-title a")

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://example.com/blog/why-sleep-matters", links[0].URL)
	})

	t.Run("strips fragments so anchors deduplicate", func(t *testing.T) {
		t.Parallel()

		html := `<nav>
			<a href="/page#top">Page</a>
			<a href="/page#bottom">Page again</a>
		</nav>`

		d := goquery.NewDiscoverer()
		links, err := d.Links(html, "https://example.com", "nav a")

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://example.com/page", links[0].URL)
	})

	t.Run("skips non-HTTP and empty hrefs", func(t *testing.T) {
		t.Parallel()

		html := `<div>
			<a href="javascript:void(0)">JS</a>
			<a href="mailto:x@example.com">Mail</a>
			<a href="">Empty</a>
			<a>None</a>
			<a href="/real">Real</a>
		</div>`

		d := goquery.NewDiscoverer()
		links, err := d.Links(html, "https://example.com", "a")

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://example.com/real", links[0].URL)
	})

	t.Run("invalid base URL returns EINVALID", func(t *testing.T) {
		t.Parallel()

		d := goquery.NewDiscoverer()
		_, err := d.Links("<a href='/x'>x</a>", "://not-a-url", "a")

		require.Error(t, err)
		assert.Equal(t, mdharvest.EINVALID, mdharvest.ErrorCode(err))
	})
}

func TestDiscoverer_LastPage(t *testing.T) {
	t.Parallel()

	t.Run("parses page index from pager link", func(t *testing.T) {
		t.Parallel()

		html := `<ul class="pager">
			<li class="pager-next"><a href="/gmi-blogs-popular?page=1">next</a></li>
			<li class="pager-last"><a href="/gmi-blogs-popular?page=41">last</a></li>
		</ul>`

		d := goquery.NewDiscoverer()
		page, err := d.LastPage(html, "li.pager-last a")

		require.NoError(t, err)
		assert.Equal(t, 41, page)
	})

	t.Run("returns 0 when pager link is absent", func(t *testing.T) {
		t.Parallel()

		d := goquery.NewDiscoverer()
		page, err := d.LastPage(`<div>no pager here</div>`, "li.pager-last a")

		require.NoError(t, err)
		assert.Equal(t, 0, page)
	})

	t.Run("returns 0 when pager link has no page parameter", func(t *testing.T) {
		t.Parallel()

		html := `<li class="pager-last"><a href="/gmi-blogs-popular">last</a></li>`

		d := goquery.NewDiscoverer()
		page, err := d.LastPage(html, "li.pager-last a")

		require.NoError(t, err)
		assert.Equal(t, 0, page)
	})

	t.Run("non-numeric page index returns EINVALID", func(t *testing.T) {
		t.Parallel()

		html := `<li class="pager-last"><a href="/gmi-blogs-popular?page=abc">last</a></li>`

		d := goquery.NewDiscoverer()
		_, err := d.LastPage(html, "li.pager-last a")

		require.Error(t, err)
		assert.Equal(t, mdharvest.EINVALID, mdharvest.ErrorCode(err))
	})
}
