package input

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/katalvlaran/aoc/puzzle"
)

const (
	// DefaultBaseURL is the Advent of Code origin.
	DefaultBaseURL = "https://adventofcode.com"
	// DefaultTimeout bounds a single download.
	DefaultTimeout = 30 * time.Second

	defaultUserAgent = "github.com/katalvlaran/aoc input fetcher"
)

// HTTPFetcher downloads puzzle inputs with the account session cookie.
// The transport negotiates gzip and decompresses transparently.
type HTTPFetcher struct {
	client    *http.Client
	baseURL   string
	session   string
	userAgent string
}

// HTTPOption customizes an HTTPFetcher.
type HTTPOption func(*HTTPFetcher)

// WithHTTPClient replaces the default client.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(f *HTTPFetcher) {
		if c != nil {
			f.client = c
		}
	}
}

// WithBaseURL points the fetcher at another origin.
func WithBaseURL(u string) HTTPOption {
	return func(f *HTTPFetcher) {
		if u != "" {
			f.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithTimeout sets the client timeout for a download.
func WithTimeout(d time.Duration) HTTPOption {
	return func(f *HTTPFetcher) {
		if d > 0 {
			f.client.Timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) HTTPOption {
	return func(f *HTTPFetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// NewHTTPFetcher returns a fetcher authenticating with session. An empty
// session is accepted here and reported as ErrMissingCredential by Fetch,
// so warm caches work without credentials.
func NewHTTPFetcher(session string, opts ...HTTPOption) *HTTPFetcher {
	f := &HTTPFetcher{
		client:    &http.Client{Timeout: DefaultTimeout},
		baseURL:   DefaultBaseURL,
		session:   strings.TrimSpace(session),
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// URL returns the input address for sel.
func (f *HTTPFetcher) URL(sel puzzle.Selector) string {
	return fmt.Sprintf("%s/%d/day/%d/input", f.baseURL, sel.Year, sel.Day)
}

// Fetch implements Fetcher.
func (f *HTTPFetcher) Fetch(ctx context.Context, sel puzzle.Selector) ([]byte, error) {
	if f.session == "" {
		return nil, ErrMissingCredential
	}
	if sel.Year <= 0 {
		return nil, fmt.Errorf("%w: a year is required to download day %d", puzzle.ErrInvalidDay, sel.Day)
	}
	url := f.URL(sel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &NetworkError{URL: url, Category: "request", Err: err}
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: f.session})
	req.Header.Set("User-Agent", f.userAgent)

	res, err := f.client.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: url, Category: "transport", Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &NetworkError{URL: url, StatusCode: res.StatusCode, Status: res.Status, Category: "status"}
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &NetworkError{URL: url, Category: "read", Err: err}
	}
	return body, nil
}
