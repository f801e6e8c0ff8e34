// Package api is the typed client for the TặngTặng REST API. Every operation
// takes a context, returns a concrete type or a typed *Error, and performs no
// automatic retries.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/form/v4"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// TokenSource supplies the bearer token per request and absorbs the 401
// sign-out trigger. A nil TokenSource means anonymous browsing.
type TokenSource interface {
	Token() string
	Invalidate()
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
	limiter    *rate.Limiter
	tokens     TokenSource
	encoder    *form.Encoder
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithRateLimit throttles outgoing requests client-side.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

func New(baseURL string, tokens TokenSource, logger *logrus.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
		tokens:     tokens,
		encoder:    form.NewEncoder(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// do issues a JSON request and decodes the JSON response into out (skipped
// when out is nil).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, header http.Header, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	return c.send(req, out)
}

// send applies rate limiting and auth, executes the request, and classifies
// the outcome into the error taxonomy. Shared by JSON and multipart paths.
func (c *Client) send(req *http.Request, out any) error {
	ctx := req.Context()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return &Error{Kind: KindNetwork, err: err}
		}
	}

	req.Header.Set("Accept", "application/json")
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	started := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithError(err).WithFields(logrus.Fields{
			"method": req.Method,
			"url":    req.URL.Path,
		}).Warn("api request failed")
		return &Error{Kind: KindNetwork, err: err}
	}
	defer resp.Body.Close()

	c.logger.WithFields(logrus.Fields{
		"method":      req.Method,
		"url":         req.URL.Path,
		"status":      resp.StatusCode,
		"duration_ms": time.Since(started).Milliseconds(),
	}).Debug("api request")

	if resp.StatusCode == http.StatusUnauthorized {
		// The session is dead; signing out here is the only mutation the
		// fetch layer is allowed to make to it.
		if c.tokens != nil {
			c.tokens.Invalidate()
		}
		return &Error{Kind: KindAuth, StatusCode: resp.StatusCode, ServerMessage: serverMessage(resp.Body)}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return &Error{Kind: KindServer, StatusCode: resp.StatusCode, ServerMessage: serverMessage(resp.Body)}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}

	return nil
}

func (c *Client) encodeQuery(filter any) (url.Values, error) {
	values, err := c.encoder.Encode(filter)
	if err != nil {
		return nil, fmt.Errorf("encode query filter: %w", err)
	}
	return values, nil
}

// serverMessage pulls the {"message": ...} payload Express-style APIs attach
// to error responses, falling back to the raw body.
func serverMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 1<<16))
	if err != nil {
		return ""
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}

	return strings.TrimSpace(string(raw))
}
