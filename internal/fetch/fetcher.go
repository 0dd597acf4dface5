package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// NetworkError reports a failed retrieval of the source document.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Fetcher retrieves the raw source markdown from a fixed URL.
type Fetcher struct {
	url    string
	client *http.Client
	cache  *DiskCache
}

// New creates a fetcher for the given URL with a request timeout.
func New(url string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// WithCache attaches a disk cache, used as a write-through store on
// success and as a stale fallback when the network is unavailable.
func (f *Fetcher) WithCache(c *DiskCache) *Fetcher {
	f.cache = c
	return f
}

// URL returns the configured source URL.
func (f *Fetcher) URL() string {
	return f.url
}

// Document fetches the document text. The stale result is true when the
// network failed and an expired-or-not cached copy was served instead; a
// *NetworkError is returned only when no cached copy exists either.
func (f *Fetcher) Document(ctx context.Context) (text string, stale bool, err error) {
	text, err = f.get(ctx)
	if err == nil {
		if f.cache != nil {
			// Best effort; a cache write failure never fails the fetch.
			_ = f.cache.Put(f.url, text)
		}
		return text, false, nil
	}

	if f.cache != nil {
		if cached, ok := f.cache.Get(f.url, true); ok {
			return cached, true, nil
		}
	}
	return "", false, err
}

func (f *Fetcher) get(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return "", &NetworkError{URL: f.url, Err: err}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &NetworkError{URL: f.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &NetworkError{URL: f.url, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &NetworkError{URL: f.url, Err: err}
	}
	return string(body), nil
}
