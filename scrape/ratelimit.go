package scrape

import (
	"context"
	"time"

	"github.com/rjanotik/volby"
	"golang.org/x/time/rate"
)

// DefaultDelay is the default pause between consecutive requests to the
// results site.
const DefaultDelay = 200 * time.Millisecond

var _ volby.Limiter = (*Pacer)(nil)

// Pacer enforces a fixed delay between consecutive requests using a
// token bucket with a burst of 1. The first request passes immediately;
// every following one waits out the remainder of the delay.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer creates a Pacer with the given inter-request delay.
// A non-positive delay disables pacing.
func NewPacer(delay time.Duration) *Pacer {
	if delay <= 0 {
		return &Pacer{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	return &Pacer{limiter: rate.NewLimiter(rate.Every(delay), 1)}
}

// Wait blocks until the next request is allowed.
// Returns an error if the context is canceled before the wait completes.
func (p *Pacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}
