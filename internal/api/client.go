// Package api is the single chokepoint for all calls to the HR backend.
// It owns auth attachment, response unwrapping and failure normalization;
// the typed facades in this package add nothing beyond path and payload
// shaping.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"hrconsole/internal/logging"
	"hrconsole/internal/session"
)

// Client issues JSON requests against the backend base URL.
//
// The bearer token is re-read from the session store on every call, never
// cached at construction, so a login or a 401-triggered clear is visible
// to the next request. No failure class is retried automatically; callers
// re-invoke if they want a retry.
type Client struct {
	baseURL string
	http    *http.Client
	session session.Store
	log     logging.Logger

	// onUnauthorized runs exactly once per failing call that came back 401,
	// after the session store has been cleared. It is the impure half of
	// the 401 handling; message derivation stays in NormalizeMessage.
	onUnauthorized func()
}

// New returns a Client for the given base URL. httpClient may be nil, in
// which case http.DefaultClient is used (no explicit timeout beyond the
// transport's own). onUnauthorized may be nil.
func New(baseURL string, sess session.Store, httpClient *http.Client, onUnauthorized func(), log logging.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = logging.Discard()
	}
	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		http:           httpClient,
		session:        sess,
		onUnauthorized: onUnauthorized,
		log:            log,
	}
}

// do performs one request/response cycle. in (when non-nil) is marshalled
// as the JSON body; out (when non-nil) receives the decoded 2xx response.
// Any failure comes back as *Error carrying the normalized user message.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	token, err := c.session.Get()
	if err != nil {
		return fmt.Errorf("read session: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return &Error{UserMessage: normalizeTransport(err), err: fmt.Errorf("%w: %w", ErrUnavailable, err)}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{UserMessage: normalizeTransport(err), err: err}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil || len(data) == 0 {
			return nil
		}
		// The server contract is trusted: the body is decoded, not validated.
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}

	apiErr := &Error{
		Status:      resp.StatusCode,
		UserMessage: NormalizeMessage(resp.StatusCode, statusText(resp), data),
		Body:        data,
	}
	if resp.StatusCode == http.StatusUnauthorized {
		apiErr.err = ErrUnauthorized
		// Unconditional: even a failing background refresh loses the session.
		if err := c.session.Clear(); err != nil {
			c.log.Error(ctx, "clearing session after 401", "error", err)
		}
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
	}
	c.log.Warn(ctx, "api error", "method", method, "path", path, "status", resp.StatusCode)
	return apiErr
}

// statusText strips the numeric prefix from resp.Status, leaving the bare
// reason phrase ("404 Not Found" -> "Not Found").
func statusText(resp *http.Response) string {
	return strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
}
