package mdharvest

import "context"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch performs a blocking GET and returns the response body.
	// Transport failures carry EUNAVAILABLE; HTTP error statuses carry
	// EREMOTE. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// Limiter bounds the outbound request rate per domain (politeness delay).
type Limiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
