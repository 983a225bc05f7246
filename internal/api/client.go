// Package api is the typed client for the remote expense and auth service.
// It attaches the session's bearer credential to every expense request and
// normalizes transport and HTTP failures into the package's error taxonomy.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/girijakangutkar/Expense-report-client/internal/session"
)

const defaultTimeout = 10 * time.Second

// Client manages all endpoints of the expense service.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	session    *session.Session
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithTimeout bounds every request; a timeout surfaces as ErrNetwork.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// New creates a Client for the service at baseURL. The session supplies the
// bearer credential for expense operations and receives the one issued by
// login/register.
func New(baseURL string, sess *session.Session, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL %q: %w", baseURL, err)
	}

	c := &Client{
		httpClient: &http.Client{
			Timeout:   defaultTimeout,
			Transport: newTraceTransport(nil),
		},
		baseURL: u,
		session: sess,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// doJSON issues one request and decodes a JSON response into out (when out is
// non-nil). With authed set, the session token is attached; its absence fails
// before any network call.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any, authed bool) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	endpoint := c.baseURL.ResolveReference(&url.URL{Path: path})
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if authed {
		token := c.session.Token()
		if token == "" {
			return fmt.Errorf("missing bearer token: %w", ErrAuth)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w: %w", method, path, ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return statusError(method, path, resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%s %s: decoding response: %w", method, path, err)
		}
	}
	return nil
}

// statusError maps an HTTP failure status onto the error taxonomy, carrying
// the server's {"error": "..."} message when one is present.
func statusError(method, path string, resp *http.Response) error {
	msg := serverMessage(resp.Body)

	var base error
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		base = ErrAuth
	case http.StatusNotFound:
		base = ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		base = ErrValidation
	default:
		return fmt.Errorf("%s %s: unexpected status %d: %s", method, path, resp.StatusCode, msg)
	}
	return fmt.Errorf("%s %s: %w: %s", method, path, base, msg)
}

func serverMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return ""
	}
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return string(bytes.TrimSpace(raw))
}
