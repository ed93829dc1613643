// Package gateway is the uniform outbound call path to the inventory
// backend. It attaches the bearer credential when one is held, maps HTTP 401
// on authenticated calls to the session-expired sentinel, and converts
// transport and parse failures into a single recoverable error category.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/inventorypro/dashboard/internal/domain/shared"
)

// TokenSource yields the current bearer token, empty when logged out.
// The session store satisfies it.
type TokenSource interface {
	Token() string
}

// Client issues requests against the configured base URL. It never retries;
// callers decide how to recover.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     *zap.Logger
}

// NewClient creates a gateway client. baseURL includes the API prefix,
// e.g. "http://localhost:8080/api". timeout bounds every request.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
}

// Do issues a single request. The path is relative to the base URL. A token,
// when held, is sent as "Authorization: Token <token>". Non-2xx responses are
// not an error at this level; the caller inspects the status.
func (c *Client) Do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", shared.ErrUnavailable, err)
	}
	return resp, nil
}

// call issues a request and decodes a 2xx JSON body into out (when out is
// non-nil). Statuses map onto the error taxonomy: a 401 while holding a token
// is fatal to the session, 403 is a permission failure, any other non-2xx is
// a generic request failure carrying the status code. A 401 on an
// unauthenticated call (bad login, rejected registration) is an ordinary
// rejection, not an expired session.
func (c *Client) call(ctx context.Context, method, path string, body, out any) error {
	resp, err := c.Do(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusUnauthorized && c.tokens.Token() != "":
		return shared.ErrUnauthorized
	case resp.StatusCode == http.StatusForbidden:
		return shared.ErrForbidden
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		c.log.Warn("request rejected",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return fmt.Errorf("%w: %s %s returned %d", shared.ErrRequestFailed, method, path, resp.StatusCode)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", shared.ErrUnavailable, err)
	}
	return nil
}
