package crawl_test

import (
	"testing"

	"github.com/pkruczek/mdharvest/crawl"
	"github.com/stretchr/testify/assert"
)

func TestSeenSet(t *testing.T) {
	t.Parallel()

	t.Run("first add is new, second is a duplicate", func(t *testing.T) {
		t.Parallel()

		s := crawl.NewSeenSet(1000, 0.01)

		assert.True(t, s.Add("https://example.com/a/b"))
		assert.False(t, s.Add("https://example.com/a/b"))
		assert.True(t, s.Seen("https://example.com/a/b"))
	})

	t.Run("distinct URLs are distinct", func(t *testing.T) {
		t.Parallel()

		s := crawl.NewSeenSet(1000, 0.01)

		assert.True(t, s.Add("https://example.com/a"))
		assert.True(t, s.Add("https://example.com/b"))
	})

	t.Run("fragments are ignored", func(t *testing.T) {
		t.Parallel()

		s := crawl.NewSeenSet(1000, 0.01)

		assert.True(t, s.Add("https://example.com/a#top"))
		assert.False(t, s.Add("https://example.com/a"))
		assert.False(t, s.Add("https://example.com/a#comments"))
	})
}
