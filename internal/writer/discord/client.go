// internal/writer/discord/client.go
package discord

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	DefaultEndpoint  = "https://discord.com/api/v8/users/@me/settings"
	DefaultUserAgent = "presence-rotator (https://github.com/tamzrod/presence-rotator, 1.0)"

	// responses larger than this are truncated; we only ever read retry_after
	maxBodySize = 1 << 20
)

// Client implements writer.Client against the user settings endpoint.
// One http.Client is created here and reused for every request.
type Client struct {
	endpoint  string
	userAgent string
	http      *http.Client
}

// Config is minimal transport config.
type Config struct {
	Endpoint  string
	UserAgent string
	Timeout   time.Duration
}

func New(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	u, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("discord client: endpoint: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.New("discord client: endpoint must be an absolute URL")
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	return &Client{
		endpoint:  cfg.Endpoint,
		userAgent: cfg.UserAgent,
		http:      &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// Patch sends body as a PATCH with the raw token in Authorization.
// Any completed exchange returns its status and body with a nil error,
// whatever the status code.
func (c *Client) Patch(ctx context.Context, token string, body []byte) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("discord client: build request: %w", err)
	}
	req.Header.Set("Authorization", token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("discord client: %w", err)
	}
	defer resp.Body.Close()

	out, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return 0, nil, fmt.Errorf("discord client: read body: %w", err)
	}

	return resp.StatusCode, out, nil
}
