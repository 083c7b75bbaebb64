package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tramflux/internal/session"
)

// NetworkError is a transport failure or non-success HTTP status from the
// portal. It aborts the current poll cycle; the loop retries on the next
// interval, never within the cycle.
type NetworkError struct {
	URL    string
	Status int
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("feed: %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("feed: HTTP %d from %s", e.Status, e.URL)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Client talks to the vehicle position portal.
type Client struct {
	baseURL    string
	dataURL    string
	httpClient *http.Client
}

func NewClient(baseURL, dataURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		dataURL:    dataURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Landing fetches the portal landing page whose body embeds the session
// token assignments.
func (c *Client) Landing(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return "", err
	}
	return c.do(req)
}

// Data performs the token-authenticated fetch against the data endpoint and
// returns the raw payload text. The payload format depends on the pinned
// feed version, not on anything in the response itself.
func (c *Client) Data(ctx context.Context, t session.Tokens) (string, error) {
	form := url.Values{}
	form.Set("request", t.Request)
	form.Set("state", t.State)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.dataURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

// Get fetches the data endpoint without a session handshake; used by feed
// versions that serve an unauthenticated payload.
func (c *Client) Get(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.dataURL, nil)
	if err != nil {
		return "", err
	}
	return c.do(req)
}

func (c *Client) do(req *http.Request) (string, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &NetworkError{URL: req.URL.String(), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &NetworkError{URL: req.URL.String(), Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &NetworkError{URL: req.URL.String(), Err: err}
	}
	return string(body), nil
}
