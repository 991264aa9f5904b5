// Package httpclient is the shared outbound HTTP client: one retry after a
// fixed backoff for network and 5xx failures, none for 4xx.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"foundmoney/internal/errors"
)

const (
	DefaultTimeout = 30 * time.Second
	DefaultBackoff = time.Second

	maxAttempts  = 2
	maxErrorBody = 512
	userAgent    = "foundmoney/1.0"
)

// StatusError is a non-2xx response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// Permanent reports whether repeating the request cannot help.
func (e *StatusError) Permanent() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500 && e.StatusCode != http.StatusTooManyRequests
}

// IsPermanent reports whether err is a 4xx response other than 429.
func IsPermanent(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Permanent()
	}

	return false
}

// Client performs JSON requests with a bounded retry.
type Client struct {
	httpClient *http.Client
	backoff    time.Duration
	logger     *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithBackoff overrides the wait before the retry.
func WithBackoff(backoff time.Duration) Option {
	return func(c *Client) {
		c.backoff = backoff
	}
}

// WithHTTPClient replaces the underlying transport client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a Client with the given overall per-attempt timeout.
func New(timeout time.Duration, logger *slog.Logger, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		backoff: DefaultBackoff,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// GetJSON issues a GET with query parameters and decodes the JSON body into dest.
func (c *Client) GetJSON(ctx context.Context, rawURL string, params url.Values, dest any) error {
	fullURL := rawURL
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	body, err := c.Do(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return errors.Wrap(err, "unmarshal response")
	}

	return nil
}

// Do sends the request, retrying once on transport errors, 429 and 5xx.
func (c *Client) Do(ctx context.Context, method, fullURL string, payload []byte) ([]byte, error) {
	var lastErr error
	for attempt := range maxAttempts {
		if attempt > 0 {
			c.logger.DebugContext(ctx, "retrying request",
				slog.String("url", fullURL),
				slog.Int("attempt", attempt),
				slog.Duration("backoff", c.backoff),
			)

			select {
			case <-ctx.Done():
				return nil, errors.Wrap(ctx.Err(), "request cancelled during backoff")
			case <-time.After(c.backoff):
			}
		}

		body, err := c.attempt(ctx, method, fullURL, payload)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if IsPermanent(err) || ctx.Err() != nil {
			return nil, err
		}
	}

	return nil, errors.Wrapf(lastErr, "request failed after %d attempts", maxAttempts)
}

func (c *Client) attempt(ctx context.Context, method, fullURL string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "send request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response body")
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	c.logger.WarnContext(ctx, "upstream returned error status",
		slog.String("url", fullURL),
		slog.Int("status", resp.StatusCode),
	)

	return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
}
