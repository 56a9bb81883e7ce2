package mock

import (
	"context"

	"github.com/rjanotik/volby"
)

var _ volby.ResultWriter = (*ResultWriter)(nil)

// ResultWriter is a mock implementation of volby.ResultWriter.
type ResultWriter struct {
	WriteResultsFn func(results []volby.Result) error
}

func (w *ResultWriter) WriteResults(results []volby.Result) error {
	return w.WriteResultsFn(results)
}

var _ volby.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of volby.Limiter.
type Limiter struct {
	WaitFn func(ctx context.Context) error
}

func (l *Limiter) Wait(ctx context.Context) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx)
}
