package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var (
	// ErrNoEndpoint is returned when no classification endpoint is configured.
	ErrNoEndpoint = errors.New("classification endpoint not configured")
	// ErrMalformedResponse is returned when a successful response cannot be
	// decoded into a verdict.
	ErrMalformedResponse = errors.New("malformed classification response")
)

// Classifier defines the interface for classifying a message.
// This interface is implemented by *Client and can be used for testing.
type Classifier interface {
	Classify(ctx context.Context, text string) (Verdict, error)
}

// Ensure Client implements Classifier at compile time.
var _ Classifier = (*Client)(nil)

// Client talks to the remote classification service.
type Client struct {
	endpoint  *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultUserAgent = "smsshield/dev"
	defaultTimeout   = 10 * time.Second
	maxResponseBytes = 1 << 20
)

// Option customises a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua = strings.TrimSpace(ua); ua != "" {
			c.userAgent = ua
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewClient builds a Client that posts to endpoint as-is.
func NewClient(endpoint string, opts ...Option) (*Client, error) {
	target, err := parseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	c := &Client{
		endpoint: target,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Endpoint returns the configured classification URL.
func (c *Client) Endpoint() string {
	if c == nil || c.endpoint == nil {
		return ""
	}
	return c.endpoint.String()
}

// Classify posts text, untrimmed, and decodes the verdict.
func (c *Client) Classify(ctx context.Context, text string) (Verdict, error) {
	if c == nil {
		return Verdict{}, fmt.Errorf("client is nil")
	}
	body, err := json.Marshal(Request{Text: text})
	if err != nil {
		return Verdict{}, fmt.Errorf("encode request: %w", err)
	}
	data, err := c.do(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Verdict{}, err
	}
	verdict, err := decodeResponse(data)
	if err != nil {
		return Verdict{}, fmt.Errorf("decode response: %w", err)
	}
	return verdict, nil
}

// Ping issues a GET against the endpoint's origin. The reference backend
// answers its root route with a liveness message.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	origin := &url.URL{Scheme: c.endpoint.Scheme, Host: c.endpoint.Host, Path: "/"}
	_, err := c.do(ctx, http.MethodGet, origin, nil)
	return err
}

func (c *Client) do(ctx context.Context, method string, target *url.URL, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id := RequestIDFromContext(ctx); id != "" {
		req.Header.Set(RequestIDHeader, id)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%s %s returned status %d", method, target.Path, resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return data, nil
}

func parseEndpoint(endpoint string) (*url.URL, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		return nil, ErrNoEndpoint
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", endpoint, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse endpoint %q: missing host", endpoint)
	}
	return u, nil
}
