// Package scrape orchestrates the end-to-end run: fetch the index page,
// extract municipality refs, then fetch and extract each detail page in
// order, pacing requests in between. Per-municipality failures are
// demoted to zero-filled placeholder results; the run itself only fails
// on startup errors or cancellation.
package scrape

import (
	"context"
	"errors"
	"fmt"

	"github.com/rjanotik/volby"
)

// Progress reports the outcome of processing one municipality.
type Progress struct {
	// Index is 1-based; Total is the number of discovered municipalities.
	Index int
	Total int
	Ref   volby.MunicipalityRef

	// Err is set when the municipality was replaced by a placeholder.
	Err error

	// Warning flags a successfully extracted row whose figures look
	// inconsistent (e.g. more valid votes than issued envelopes). The
	// row is kept as extracted; this only makes silent misextraction
	// visible.
	Warning string
}

// ProgressFunc is called once per municipality, after it is processed.
type ProgressFunc func(Progress)

// Scraper drives the fetch/extract loop. All collaborators are required
// except Limiter, which defaults to no pacing when nil.
type Scraper struct {
	Fetcher volby.Fetcher
	Index   volby.IndexExtractor
	Detail  volby.DetailExtractor
	Limiter volby.Limiter
}

// Run executes the pipeline for one index URL. The URL is assumed to be
// validated by the caller. It returns exactly one result per discovered
// municipality, in index-page order, including placeholders for failed
// ones. Errors are fatal only when the index page cannot be fetched or
// yields no municipalities, or when ctx is canceled.
func (s *Scraper) Run(ctx context.Context, indexURL string, progress ProgressFunc) ([]volby.Result, error) {
	html, err := s.Fetcher.Fetch(ctx, indexURL)
	if err != nil {
		return nil, volby.Errorf(volby.EUNAVAILABLE, "fetching index page: %v", err)
	}

	refs, err := s.Index.ExtractMunicipalities(html, indexURL)
	if err != nil {
		return nil, err
	}

	results := make([]volby.Result, 0, len(refs))
	for i, ref := range refs {
		if s.Limiter != nil {
			if err := s.Limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		res := s.scrapeOne(ctx, ref)

		// A canceled context must abort the run, not degrade into an
		// endless series of placeholder rows.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		results = append(results, res)
		if progress != nil {
			progress(Progress{
				Index:   i + 1,
				Total:   len(refs),
				Ref:     ref,
				Err:     res.Err,
				Warning: sanityWarning(res),
			})
		}
	}

	return results, nil
}

// scrapeOne processes a single municipality. Any failure yields a
// zero-filled placeholder result carrying the error.
func (s *Scraper) scrapeOne(ctx context.Context, ref volby.MunicipalityRef) volby.Result {
	placeholder := func(err error) volby.Result {
		return volby.Result{
			Ref:     ref,
			Summary: volby.Summary{Code: ref.Code, Location: ref.Name},
			Parties: volby.PartyVotes{},
			Err:     err,
		}
	}

	html, err := s.Fetcher.Fetch(ctx, ref.DetailURL)
	if err != nil {
		return placeholder(err)
	}

	detail, err := s.Detail.ExtractDetail(html)
	if err != nil {
		return placeholder(err)
	}

	return volby.Result{
		Ref: ref,
		Summary: volby.Summary{
			Code:       ref.Code,
			Location:   ref.Name,
			Registered: detail.Registered,
			Envelopes:  detail.Envelopes,
			Valid:      detail.Valid,
		},
		Parties: detail.Parties,
	}
}

// sanityWarning checks a successful result for figures the source could
// not legitimately report. The extraction heuristics depend on cell
// order; when the upstream layout shifts they produce wrong numbers
// instead of errors, and this is the only place that notices.
func sanityWarning(res volby.Result) string {
	if res.Err != nil {
		return ""
	}
	s := res.Summary
	if s.Envelopes > s.Registered {
		return fmt.Sprintf("envelopes (%d) exceed registered voters (%d)", s.Envelopes, s.Registered)
	}
	if s.Valid > s.Envelopes {
		return fmt.Sprintf("valid votes (%d) exceed issued envelopes (%d)", s.Valid, s.Envelopes)
	}
	return ""
}

// IsCanceled reports whether err is a context cancellation.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled)
}
