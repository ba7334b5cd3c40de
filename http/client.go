// Package http provides a client for the remote knowledge service.
// The service crawls and indexes references, extracts text from uploaded
// documents and answers questions over its index.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/docent"
	"golang.org/x/time/rate"
)

// DefaultTimeout is the default timeout for requests to the service.
// Crawls of a few dozen pages regularly take minutes.
const DefaultTimeout = 5 * time.Minute

// maxResponseSize caps how much of a response body is read.
const maxResponseSize = 10 << 20 // 10MB

// Client talks to the knowledge service over HTTP.
type Client struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
	limiter *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the timeout for requests.
// Defaults to DefaultTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient sets the underlying HTTP client.
// Its Timeout is overridden by WithTimeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithRateLimit limits requests to rps per second with no bursting.
// Zero or negative rps disables limiting.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewClient creates a new Client for the service at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.client == nil {
		c.client = &http.Client{}
	}
	hc := *c.client
	hc.Timeout = c.timeout
	c.client = &hc

	return c
}

// postJSON sends in as a JSON body to path and decodes the response into out.
func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(ctx, req, out)
}

// do waits for the rate limiter, sends req and decodes a JSON response.
// Transport failures and non-2xx statuses are returned as EUNAVAILABLE;
// context errors are returned unchanged.
func (c *Client) do(ctx context.Context, req *http.Request, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return err
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return docent.Errorf(docent.EUNAVAILABLE, "knowledge service unreachable: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return docent.Errorf(docent.EUNAVAILABLE, "failed to read response from %s: %v", req.URL.Path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return docent.Errorf(docent.EUNAVAILABLE, "knowledge service returned HTTP %d for %s", resp.StatusCode, req.URL.Path)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return docent.Errorf(docent.EINTERNAL, "invalid response from %s: %v", req.URL.Path, err)
	}
	return nil
}
