package crawl

import (
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
)

// SeenSet records URLs already discovered during a run, so articles linked
// from multiple listing pages are processed once. It is run-scoped and
// never persisted. Deduplication uses a Bloom filter sized at construction:
// false positives (a new URL reported as seen) occur at the configured
// rate; false negatives do not.
//
// The crawl is sequential, so the set is not safe for concurrent use.
type SeenSet struct {
	filter *bloom.BloomFilter
}

// NewSeenSet creates a SeenSet sized for n expected URLs with the given
// false positive rate.
func NewSeenSet(n uint, fpRate float64) *SeenSet {
	return &SeenSet{
		filter: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records the URL and reports whether it was new. URL fragments are
// stripped first, so URLs differing only by fragment are duplicates.
func (s *SeenSet) Add(rawURL string) bool {
	u := normalizeURL(rawURL)
	if s.filter.TestString(u) {
		return false
	}
	s.filter.AddString(u)
	return true
}

// Seen reports whether the URL has been recorded.
func (s *SeenSet) Seen(rawURL string) bool {
	return s.filter.TestString(normalizeURL(rawURL))
}

func normalizeURL(rawURL string) string {
	if idx := strings.Index(rawURL, "#"); idx != -1 {
		return rawURL[:idx]
	}
	return rawURL
}
