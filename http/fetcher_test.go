package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkruczek/mdharvest"
	mdhttp "github.com/pkruczek/mdharvest/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Fetcher implements mdharvest.Fetcher at compile time.
var _ mdharvest.Fetcher = (*mdhttp.Fetcher)(nil)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns body on success", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html><body>hello</body></html>"))
		}))
		defer srv.Close()

		f := mdhttp.NewFetcher()
		defer f.Close()

		html, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "<html><body>hello</body></html>", html)
	})

	t.Run("sends the configured user agent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
		}))
		defer srv.Close()

		f := mdhttp.NewFetcher(mdhttp.WithUserAgent("harvester/1.0"))
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "harvester/1.0", gotUA)
	})

	t.Run("sends a browser-like user agent by default", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
		}))
		defer srv.Close()

		f := mdhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, mdhttp.DefaultUserAgent, gotUA)
	})

	t.Run("classifies HTTP error status as EREMOTE", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "not found", http.StatusNotFound)
		}))
		defer srv.Close()

		f := mdhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Equal(t, mdharvest.EREMOTE, mdharvest.ErrorCode(err))
		assert.False(t, mdharvest.Transient(err))
	})

	t.Run("classifies server error status as EREMOTE", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		f := mdhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Equal(t, mdharvest.EREMOTE, mdharvest.ErrorCode(err))
	})

	t.Run("classifies timeout as EUNAVAILABLE", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		f := mdhttp.NewFetcher(mdhttp.WithTimeout(20 * time.Millisecond))
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Equal(t, mdharvest.EUNAVAILABLE, mdharvest.ErrorCode(err))
		assert.True(t, mdharvest.Transient(err))
	})

	t.Run("classifies connection failure as EUNAVAILABLE", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // nothing listening anymore

		f := mdhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Equal(t, mdharvest.EUNAVAILABLE, mdharvest.ErrorCode(err))
	})
}
