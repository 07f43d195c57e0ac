// Package apiclient is the single typed client for the fine-tuning backend's
// REST API. Every call performs exactly one round-trip: there are no
// retries, no caching and no request de-duplication. Failures are returned
// as *TransportError, *StatusError or *DecodeError.
package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RequestIDHeader carries the correlation id of each backend call.
const RequestIDHeader = "X-Request-ID"

// maxErrorBody bounds the body excerpt kept on a StatusError.
const maxErrorBody = 512

// Client issues JSON requests against a backend base URL.
type Client struct {
	baseURL string
	hc      *http.Client
	timeout time.Duration
	headers http.Header
	log     zerolog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.hc = hc
		}
	}
}

// WithTimeout bounds every call. Zero disables the per-call deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d < 0 {
			d = 0
		}
		c.timeout = d
	}
}

// WithLogger installs a structured logger for per-call debug lines.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithHeader adds a default header sent on every call.
func WithHeader(key, value string) Option {
	return func(c *Client) { c.headers.Set(key, value) }
}

// New returns a client for baseURL. An empty baseURL yields relative
// endpoints, which only work with a transport that resolves them.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      http.DefaultClient,
		headers: make(http.Header),
		log:     zerolog.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// RequestOptions mirrors the subset of fetch options the client supports.
type RequestOptions struct {
	// Method defaults to GET.
	Method string
	// Body is JSON-encoded when non-nil.
	Body any
	// Header entries override the defaults, including Content-Type.
	Header http.Header
}

// Do sends one request to baseURL+endpoint and decodes a 2xx JSON body
// into out. out may be nil when the caller does not need the body.
func (c *Client) Do(ctx context.Context, endpoint string, opts RequestOptions, out any) error {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body io.Reader
	if opts.Body != nil {
		b, err := sonic.Marshal(opts.Body)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", endpoint, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return &TransportError{Method: method, Endpoint: endpoint, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID(ctx))
	mergeHeader(req.Header, c.headers)
	mergeHeader(req.Header, opts.Header)

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observe(endpoint, method, 0, start)
		c.log.Debug().Str("method", method).Str("endpoint", endpoint).Dur("dur", time.Since(start)).Err(err).Msg("api call failed")
		return &TransportError{Method: method, Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()
	observe(endpoint, method, resp.StatusCode, start)
	c.log.Debug().Str("method", method).Str("endpoint", endpoint).Int("status", resp.StatusCode).Dur("dur", time.Since(start)).Msg("api call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Code: resp.StatusCode, Method: method, Endpoint: endpoint, Body: strings.TrimSpace(string(excerpt))}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(out); err != nil {
		return &DecodeError{Endpoint: endpoint, Err: err}
	}
	return nil
}

func mergeHeader(dst, src http.Header) {
	for k, vs := range src {
		dst.Del(k)
		for _, v := range vs {
			dst.Add(k, v)
		}
	}
}

// requestID reuses the inbound request id when the call happens on behalf
// of a page request, otherwise it mints a new one.
func requestID(ctx context.Context) string {
	if rid := middleware.GetReqID(ctx); rid != "" {
		return rid
	}
	return uuid.NewString()
}
