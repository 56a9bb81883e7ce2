package volby

import "context"

// Fetcher retrieves decoded HTML from URLs. Implementations are expected
// to reuse one underlying connection across calls; the results site is
// fetched page by page and connection setup dominates otherwise.
type Fetcher interface {
	// Fetch performs a GET for the URL and returns the body decoded to
	// UTF-8. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases transport resources.
	Close() error
}

// Limiter paces consecutive requests to the source.
type Limiter interface {
	// Wait blocks until the next request is allowed.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context) error
}
