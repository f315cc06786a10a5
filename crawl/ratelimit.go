package crawl

import (
	"context"
	"sync"
	"time"

	"github.com/pkruczek/mdharvest"
	"golang.org/x/time/rate"
)

var _ mdharvest.Limiter = (*DomainLimiter)(nil)

// DomainLimiter enforces the politeness delay between requests to the same
// domain using token buckets. Each domain gets its own limiter with a burst
// of 1, so the first request passes immediately and subsequent requests
// wait out the configured interval.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	interval time.Duration
}

// NewDomainLimiter creates a DomainLimiter with the given minimum interval
// between requests to one domain. A non-positive interval disables waiting.
func NewDomainLimiter(interval time.Duration) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		interval: interval,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limit := rate.Inf
		if d.interval > 0 {
			limit = rate.Every(d.interval)
		}
		limiter = rate.NewLimiter(limit, 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
