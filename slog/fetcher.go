// Package slog provides logging decorators for volby services using the
// standard library structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/rjanotik/volby"
)

// Ensure Fetcher implements volby.Fetcher at compile time.
var _ volby.Fetcher = (*Fetcher)(nil)

// Fetcher wraps a volby.Fetcher with request logging.
type Fetcher struct {
	next   volby.Fetcher
	logger *slog.Logger
}

// NewFetcher creates a new logging Fetcher.
func NewFetcher(next volby.Fetcher, logger *slog.Logger) *Fetcher {
	return &Fetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the request.
func (f *Fetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Debug("fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.next.Close()
}
