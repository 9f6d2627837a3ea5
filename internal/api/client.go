// Package api implements the resource clients for the HRM backend: one small
// set of functions per resource, all funneled through a single doJSON call
// that attaches the bearer token and normalizes error responses.
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

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"hrmc/internal/platform/config"
)

// TokenSource yields the current bearer token. It must fail with the
// session's ErrNoToken before any network call when the user is logged out.
type TokenSource interface {
	Token() (string, error)
}

type Client struct {
	base   *url.URL
	http   *http.Client
	tokens TokenSource
	log    *logrus.Logger
}

func New(cfg config.Config, tokens TokenSource, log *logrus.Logger) (*Client, error) {
	base := strings.TrimSpace(cfg.APIBaseURL)
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid API base URL %q", base)
	}
	return &Client{
		base: u,
		http: &http.Client{
			Timeout: cfg.RequestTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		tokens: tokens,
		log:    log,
	}, nil
}

// doJSON issues one request and decodes the response into out (when non-nil).
// Auth errors are raised before the request is built so that a logged-out
// client never touches the network.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, reqBody, out any) error {
	return c.request(ctx, method, path, query, reqBody, out, true)
}

// doPublicJSON is doJSON without the bearer token, for login only.
func (c *Client) doPublicJSON(ctx context.Context, method, path string, query url.Values, reqBody, out any) error {
	return c.request(ctx, method, path, query, reqBody, out, false)
}

func (c *Client) request(ctx context.Context, method, path string, query url.Values, reqBody, out any, withAuth bool) error {
	var token string
	if withAuth {
		var err error
		token, err = c.tokens.Token()
		if err != nil {
			return err
		}
	}

	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var body io.Reader
	if reqBody != nil {
		encoded, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if withAuth {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithFields(logrus.Fields{"method": method, "path": path}).WithError(err).Warn("request failed")
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := errorDetail(respBody)
		c.log.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
			"status": resp.StatusCode,
		}).Warn("request rejected")
		if resp.StatusCode == http.StatusUnauthorized {
			if detail != "" {
				return fmt.Errorf("%w: %s", ErrSessionExpired, detail)
			}
			return ErrSessionExpired
		}
		return &APIError{StatusCode: resp.StatusCode, Detail: detail}
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorDetail pulls the human message out of an error body. FastAPI-style
// backends use `detail`, envelope responses use `message`.
func errorDetail(body []byte) string {
	var parsed struct {
		Detail  json.RawMessage `json:"detail"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}
	if len(parsed.Detail) > 0 {
		var text string
		if err := json.Unmarshal(parsed.Detail, &text); err == nil {
			return text
		}
		// 422 bodies carry a structured list; surface it verbatim.
		return strings.TrimSpace(string(parsed.Detail))
	}
	return parsed.Message
}
