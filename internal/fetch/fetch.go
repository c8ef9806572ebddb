// Package fetch reads color data sources over HTTP with retries, so a
// conversion can point straight at a raw file URL (e.g. a data file on a
// GitHub raw content URL) instead of a local path.
package fetch

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// maxBodySize caps response bodies; color data files are tiny.
const maxBodySize = 16 << 20

// IsURL reports whether src names an HTTP(S) source rather than a local path.
func IsURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// Client fetches remote sources with retries.
type Client struct {
	http *retryablehttp.Client
}

// New creates a Client that retries failed requests up to retryMax times
// with the given per-request timeout.
func New(retryMax int, timeout time.Duration) *Client {
	c := retryablehttp.NewClient()
	c.RetryMax = retryMax
	c.HTTPClient.Timeout = timeout
	c.Logger = nil // suppress retryablehttp's default logging
	return &Client{http: c}
}

// Get fetches url and returns the response body. Non-2xx responses are
// errors.
func (c *Client) Get(url string) ([]byte, error) {
	resp, err := c.http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", url, err)
	}
	return body, nil
}
