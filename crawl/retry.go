package crawl

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkruczek/mdharvest"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// DefaultRetryDelays returns the fixed inter-attempt delays for fetch
// retries: two 3s pauses, giving three total attempts.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{3 * time.Second, 3 * time.Second}
}

// FixedDelays returns attempts-1 copies of d, for use with
// FetchWithRetryDelays when the attempt budget comes from configuration.
func FixedDelays(attempts int, d time.Duration) []time.Duration {
	if attempts <= 1 {
		return []time.Duration{}
	}
	delays := make([]time.Duration, attempts-1)
	for i := range delays {
		delays[i] = d
	}
	return delays
}

// FetchWithRetry attempts to fetch a URL, retrying transient failures with
// the default delays. The logger, if provided, records each retry.
func FetchWithRetry(ctx context.Context, url string, fetch FetchFunc, logger *slog.Logger) (string, error) {
	return FetchWithRetryDelays(ctx, url, fetch, logger, DefaultRetryDelays())
}

// FetchWithRetryDelays is like FetchWithRetry but allows configurable
// delays, so tests can substitute zero delays without changing logic.
// The total attempt count is len(delays)+1. Only transient failures are
// retried: a fatal HTTP error status returns after the first attempt.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, logger *slog.Logger, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if !mdharvest.Transient(err) {
			return "", err
		}

		// Don't sleep after the last attempt
		if attempt >= maxAttempts-1 {
			break
		}

		if logger != nil {
			logger.Warn("retrying fetch", "url", url, "attempt", attempt+2, "error", err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
