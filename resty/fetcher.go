// Package resty provides an HTTP implementation of volby.Fetcher built on
// github.com/go-resty/resty/v2. One client is reused for every request so
// connections to the results site are amortized across the whole run.
package resty

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rjanotik/volby"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/charmap"
)

// DefaultTimeout is the default per-request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent identifies the scraper to the results site.
const DefaultUserAgent = "volbyscrape/1.0 (+https://github.com/rjanotik/volby)"

// Ensure Fetcher implements volby.Fetcher at compile time.
var _ volby.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves pages over HTTP and decodes them to UTF-8.
type Fetcher struct {
	client    *resty.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
// Defaults to DefaultTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header attached to every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	client := resty.New()
	client.SetTimeout(f.timeout)
	client.SetHeader("User-Agent", f.userAgent)
	f.client = client

	return f
}

// Fetch performs a GET for the URL and returns the body decoded to UTF-8.
// The results site serves windows-1250; the encoding is taken from the
// Content-Type header or a meta tag, with windows-1250 as the fallback
// when neither declares one.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode(), url)
	}
	return decode(resp.Body(), resp.Header().Get("Content-Type"))
}

// decode converts a response body to UTF-8 using the declared charset.
func decode(body []byte, contentType string) (string, error) {
	enc, name, certain := charset.DetermineEncoding(body, contentType)
	if !certain && name == "windows-1252" {
		// Nothing declared an encoding; the sniffer's generic default
		// would mangle Czech diacritics, the site's actual legacy
		// encoding is windows-1250.
		enc = charmap.Windows1250
	}
	decoded, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return "", fmt.Errorf("decoding response body: %w", err)
	}
	return string(decoded), nil
}

// Close releases idle connections held by the underlying client.
func (f *Fetcher) Close() error {
	f.client.GetClient().CloseIdleConnections()
	return nil
}
