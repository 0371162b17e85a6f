package iiko

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/pizzayolo/backoffice-go/internal/config"
	"github.com/pizzayolo/backoffice-go/internal/domain/settlement"
)

// Client talks to the iiko Resto server API. All report fetches are plain
// GETs authenticated by a key token; repeating a fetch with the same range is
// safe and returns equivalent data barring upstream changes.
type Client struct {
	baseURL      string
	login        string
	passwordSHA1 string
	httpClient   *http.Client

	mu    sync.Mutex
	token string
}

func NewClient(cfg config.IikoConfig) *Client {
	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		login:        cfg.Login,
		passwordSHA1: cfg.PasswordSHA1,
		httpClient:   &http.Client{Timeout: cfg.Timeout},
	}
}

// Token returns a cached auth key, acquiring one from /resto/api/auth when
// none is held. The Resto server answers the auth call with the bare token in
// the response body.
func (c *Client) Token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" {
		return c.token, nil
	}

	form := url.Values{}
	form.Set("login", c.login)
	form.Set("pass", c.passwordSHA1)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/resto/api/auth", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: build auth request: %v", settlement.ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: auth call failed: %v", settlement.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: auth returned HTTP %d", settlement.ErrUpstreamUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read auth response: %v", settlement.ErrUpstreamUnavailable, err)
	}

	token := strings.TrimSpace(string(body))
	if token == "" {
		return "", fmt.Errorf("%w: empty auth token", settlement.ErrDataFormat)
	}

	c.token = token
	return token, nil
}

// dropToken forgets the cached key so the next call re-authenticates.
func (c *Client) dropToken() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
}

// get performs an authenticated GET and returns the body and content type.
// A 401 invalidates the cached token and is retried once with a fresh one.
func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, string, error) {
	for attempt := 0; attempt < 2; attempt++ {
		token, err := c.Token(ctx)
		if err != nil {
			return nil, "", err
		}

		q := url.Values{}
		for k, vs := range params {
			for _, v := range vs {
				q.Add(k, v)
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
		if err != nil {
			return nil, "", fmt.Errorf("%w: build request: %v", settlement.ErrUpstreamUnavailable, err)
		}
		req.Header.Set("Cookie", "key="+token)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s: %v", settlement.ErrUpstreamUnavailable, path, err)
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusUnauthorized && attempt == 0 {
			c.dropToken()
			continue
		}
		if resp.StatusCode != http.StatusOK {
			return nil, "", fmt.Errorf("%w: %s returned HTTP %d", settlement.ErrUpstreamUnavailable, path, resp.StatusCode)
		}
		if readErr != nil {
			return nil, "", fmt.Errorf("%w: read %s response: %v", settlement.ErrUpstreamUnavailable, path, readErr)
		}

		return body, resp.Header.Get("Content-Type"), nil
	}
	return nil, "", fmt.Errorf("%w: %s: token rejected twice", settlement.ErrUpstreamUnavailable, path)
}

// parseErpTime reads the timestamp forms the Resto server emits: RFC3339,
// RFC3339 without zone, or a bare date.
func parseErpTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05.999",
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
