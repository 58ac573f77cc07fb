// Package providers holds thin HTTP clients for the third-party venue
// search APIs. A client constructed without an API key serves bundled
// sample data instead of calling out, so the rest of the system behaves
// the same with or without credentials.
package providers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Config is passed in at construction time; clients never read the
// environment themselves.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

func (c Config) live() bool {
	return c.APIKey != ""
}

func newHTTPClient(cfg Config) *http.Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

func doGet(ctx context.Context, client *http.Client, cfg Config, path string, query url.Values) ([]byte, error) {
	endpoint := cfg.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("provider error (%d): %s", resp.StatusCode, string(body))
	}
	return body, nil
}
