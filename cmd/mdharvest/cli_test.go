package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	m := NewMain()
	err = m.Run(context.Background(), args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), err
}

func TestRun_NoArgs(t *testing.T) {
	t.Parallel()

	_, _, err := runCLI(t)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	stdout, _, err := runCLI(t, "--help")

	require.NoError(t, err)
	assert.Contains(t, stdout, "crawl")
	assert.Contains(t, stdout, "sites")
}

func TestSitesCmd(t *testing.T) {
	t.Parallel()

	t.Run("lists builtin profiles", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := runCLI(t, "sites")

		require.NoError(t, err)
		assert.Contains(t, stdout, "health-topics")
		assert.Contains(t, stdout, "popular-blogs")
	})

	t.Run("lists profiles from a config file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "sites.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
sites:
  - name: custom-site
    base_url: https://example.com
    index_url: https://example.com/articles
    article_selector: div.title a
`), 0o644))

		stdout, _, err := runCLI(t, "sites", "-c", path)

		require.NoError(t, err)
		assert.Contains(t, stdout, "custom-site")
		assert.NotContains(t, stdout, "health-topics")
	})
}

func TestCrawlCmd(t *testing.T) {
	t.Parallel()

	t.Run("unknown site profile is an error", func(t *testing.T) {
		t.Parallel()

		_, stderr, err := runCLI(t, "crawl", "no-such-site", "--no-archive")

		require.Error(t, err)
		assert.Contains(t, stderr, "no-such-site")
	})

	t.Run("harvests a configured site end to end", func(t *testing.T) {
		t.Parallel()

		longBody := strings.Repeat("A sentence of plain article body text. ", 12)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.URL.Path == "/articles":
				fmt.Fprint(w, `<html><body>
					<div class="title"><a href="/articles/first-post">First Post</a></div>
					<div class="title"><a href="/articles/second-post">Second Post</a></div>
				</body></html>`)
			case strings.HasPrefix(r.URL.Path, "/articles/"):
				name := strings.TrimPrefix(r.URL.Path, "/articles/")
				fmt.Fprintf(w, `<html><body><h1>%s</h1><div class="body"><p>%s</p></div></body></html>`, name, longBody)
			default:
				http.NotFound(w, r)
			}
		}))
		defer srv.Close()

		cfgPath := filepath.Join(t.TempDir(), "sites.yaml")
		require.NoError(t, os.WriteFile(cfgPath, fmt.Appendf(nil, `
sites:
  - name: test-site
    base_url: %s
    index_url: %s/articles
    article_selector: div.title a
    title_selector: h1
    content_selector: div.body
`, srv.URL, srv.URL), 0o644))

		outDir := filepath.Join(t.TempDir(), "out")
		stdout, stderr, err := runCLI(t, "crawl", "test-site",
			"-c", cfgPath, "-o", outDir,
			"--delay=0s", "--retries=1", "--no-archive")

		require.NoError(t, err)
		assert.Contains(t, stdout, "Saved 2 articles")
		assert.Contains(t, stderr, "fetch")
		assert.Contains(t, stderr, "write article")

		for _, slug := range []string{"first-post", "second-post"} {
			data, err := os.ReadFile(filepath.Join(outDir, "articles", slug+".md"))
			require.NoError(t, err)
			assert.Contains(t, string(data), "# "+slug)
		}
	})
}
