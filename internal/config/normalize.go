// internal/config/normalize.go
package config

import (
	"strings"
	"time"

	"github.com/tamzrod/presence-rotator/internal/status"
)

const (
	DefaultDelay          = 1 * time.Second
	DefaultRequestTimeout = 30 * time.Second
	DefaultRateLimit      = 5 * time.Second

	DefaultEndpoint = "https://discord.com/api/v8/users/@me/settings"
	DefaultLogLevel = "info"

	DefaultMetricsListen = ":9090"
	DefaultMetricsPath   = "/metrics"
)

// Normalize applies defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	cfg.Token = strings.TrimSpace(cfg.Token)

	if cfg.Delay == nil {
		d := Seconds(DefaultDelay.Seconds())
		cfg.Delay = &d
	}
	if cfg.RequestTimeout == nil {
		d := Seconds(DefaultRequestTimeout.Seconds())
		cfg.RequestTimeout = &d
	}
	if cfg.RateLimitDefault == nil {
		d := Seconds(DefaultRateLimit.Seconds())
		cfg.RateLimitDefault = &d
	}

	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if cfg.Metrics.Listen == "" {
		cfg.Metrics.Listen = DefaultMetricsListen
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = DefaultMetricsPath
	}

	// "activity": {} means no activity at all.
	for i := range cfg.Statuses {
		if cfg.Statuses[i].Activity.IsEmpty() {
			cfg.Statuses[i].Activity = nil
		}
	}
}

// Entries converts the configured statuses into encoder input, in order.
func (c *Config) Entries() []status.Entry {
	out := make([]status.Entry, 0, len(c.Statuses))
	for _, s := range c.Statuses {
		e := status.Entry{
			Text:           s.Status,
			EmojiID:        s.EmojiID,
			EmojiName:      s.EmojiName,
			UseCustomEmoji: s.NitroEmoji,
		}
		if !s.Activity.IsEmpty() {
			e.Activity = &status.Activity{
				Type: status.ActivityType(s.Activity.Type),
				Name: s.Activity.Name,
				URL:  s.Activity.URL,
			}
		}
		out = append(out, e)
	}
	return out
}
