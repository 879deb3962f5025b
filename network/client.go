// Package network provides the HTTP capability used by providers to talk to upstream APIs.
package network

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lineup-cli/lineup/log"
	"github.com/lineup-cli/lineup/metrics"
)

// Doer executes a prepared request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client performs GET requests and decodes JSON bodies.
type Client interface {
	// GetJSON issues a GET with the given headers and decodes the body into v.
	// A "Host" header overrides the request host.
	// Non-2xx responses yield a *StatusError.
	GetJSON(ctx context.Context, rawURL string, header http.Header, v any) error
}

// Shared is the HTTP client used when no other Doer is configured.
var Shared = &http.Client{
	Timeout:   time.Minute,
	Transport: newTransport(),
}

// newTransport initializes a tuned http.Transport with optimized pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.MaxConnsPerHost = 200
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 30 * time.Second
	return t
}

// NewHTTP builds an *http.Client with the given timeout, optionally dialing with a browser TLS fingerprint.
func NewHTTP(timeout time.Duration, fingerprint bool) *http.Client {
	var transport http.RoundTripper = newTransport()
	if fingerprint {
		transport = newFingerprintTransport()
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

// HTTPClient is the default Client implementation.
type HTTPClient struct {
	doer   Doer
	cookie string
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithDoer replaces the underlying HTTP executor.
func WithDoer(doer Doer) Option {
	return func(c *HTTPClient) {
		c.doer = doer
	}
}

// WithCookie sends the given Cookie header value with every request.
func WithCookie(cookie string) Option {
	return func(c *HTTPClient) {
		c.cookie = cookie
	}
}

// New creates an HTTPClient.
func New(options ...Option) *HTTPClient {
	c := &HTTPClient{doer: Shared}
	for _, option := range options {
		option(c)
	}
	return c
}

// GetJSON implements Client.
func (c *HTTPClient) GetJSON(ctx context.Context, rawURL string, header http.Header, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	for name, values := range header {
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}

	// net/http ignores a Host entry in the header map.
	if host := header.Get("Host"); host != "" {
		req.Host = host
	}

	if c.cookie != "" {
		req.Header.Set("Cookie", c.cookie)
	}

	start := time.Now()
	resp, err := c.doer.Do(req)
	if err != nil {
		metrics.ObserveRequest(req.URL.Host, metrics.StatusError, time.Since(start))
		return fmt.Errorf("%w: GET %s: %w", ErrTransport, rawURL, err)
	}
	defer resp.Body.Close()

	metrics.ObserveStatus(req.URL.Host, resp.StatusCode, time.Since(start))
	log.Debugf("GET %s -> %d", rawURL, resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{StatusCode: resp.StatusCode, URL: rawURL}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body of %s: %w", ErrTransport, rawURL, err)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDecode, rawURL, err)
	}

	return nil
}
